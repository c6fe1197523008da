// Package metadata stamps generated report files with a provenance footer
// (run ID, generation time, content hash) and verifies it on re-read, so a
// report can be traced back to the pipeline run that produced it.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// TagStart opens the provenance footer.
	TagStart = "---- REPORT_META_START ----"
	// TagEnd closes the provenance footer.
	TagEnd = "---- REPORT_META_END ----"
)

// Provenance verification errors.
var (
	ErrNoFooter     = errors.New("no provenance footer found")
	ErrNoHash       = errors.New("no hash found in provenance footer")
	ErrHashMismatch = errors.New("report content does not match its hash")
)

// Provenance describes when and by which run a report was generated.
type Provenance struct {
	RunID       string
	GeneratedAt time.Time
	Hash        string
}

var footerRegex = regexp.MustCompile(`(?s)\n*---- REPORT_META_START ----\n(.*?)\n---- REPORT_META_END ----\s*$`)

// Extract splits a report into its provenance footer (nil when absent) and
// the body that is covered by the hash.
func Extract(content string) (*Provenance, string) {
	match := footerRegex.FindStringSubmatch(content)
	body := footerRegex.ReplaceAllString(content, "")
	body = strings.TrimRight(body, "\n")

	if len(match) < 2 {
		return nil, body
	}

	prov := &Provenance{}

	for _, line := range strings.Split(match[1], "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "RUN_ID":
			prov.RunID = val
		case "GENERATED_AT":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				prov.GeneratedAt = t
			}
		case "HASH":
			prov.Hash = val
		}
	}

	return prov, body
}

// Hash computes the SHA-256 hash of the report body, footer excluded.
func Hash(content string) string {
	_, body := Extract(content)
	sum := sha256.Sum256([]byte(body))

	return hex.EncodeToString(sum[:])
}

// Sign appends a fresh provenance footer for the given run ID, replacing any
// existing footer.
func Sign(content, runID string) string {
	_, body := Extract(content)

	footer := fmt.Sprintf("\n\n%s\nRUN_ID: %s\nGENERATED_AT: %s\nHASH: %s\n%s\n",
		TagStart,
		runID,
		time.Now().UTC().Format(time.RFC3339),
		Hash(body),
		TagEnd,
	)

	return body + footer
}

// Verify checks that the report body still matches the hash in its footer.
func Verify(content string) (*Provenance, error) {
	prov, body := Extract(content)
	if prov == nil {
		return nil, ErrNoFooter
	}

	if prov.Hash == "" {
		return nil, ErrNoHash
	}

	sum := sha256.Sum256([]byte(body))
	if hex.EncodeToString(sum[:]) != prov.Hash {
		return prov, ErrHashMismatch
	}

	return prov, nil
}
