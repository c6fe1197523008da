package metadata

import (
	"errors"
	"strings"
	"testing"
)

const reportBody = "ACADEMIC PULSE DASHBOARD SUMMARY\nTotal Feedback Records: 42\n"

func TestSignAndVerify(t *testing.T) {
	signed := Sign(reportBody, "run-123")

	if !strings.Contains(signed, TagStart) || !strings.Contains(signed, TagEnd) {
		t.Fatal("Signed report missing footer tags")
	}

	prov, err := Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	if prov.RunID != "run-123" {
		t.Errorf("RunID = %q, want run-123", prov.RunID)
	}

	if prov.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not parsed")
	}
}

func TestSign_ReplacesExistingFooter(t *testing.T) {
	first := Sign(reportBody, "run-1")
	second := Sign(first, "run-2")

	if strings.Count(second, TagStart) != 1 {
		t.Error("Re-signing must not stack footers")
	}

	prov, err := Verify(second)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	if prov.RunID != "run-2" {
		t.Errorf("RunID = %q, want run-2", prov.RunID)
	}
}

func TestVerify_TamperedBody(t *testing.T) {
	signed := Sign(reportBody, "run-123")
	tampered := strings.Replace(signed, "42", "43", 1)

	if _, err := Verify(tampered); !errors.Is(err, ErrHashMismatch) {
		t.Errorf("Expected ErrHashMismatch, got %v", err)
	}
}

func TestVerify_NoFooter(t *testing.T) {
	if _, err := Verify(reportBody); !errors.Is(err, ErrNoFooter) {
		t.Errorf("Expected ErrNoFooter, got %v", err)
	}
}

func TestExtract_SplitsFooterFromBody(t *testing.T) {
	signed := Sign(reportBody, "run-123")

	prov, body := Extract(signed)
	if prov == nil {
		t.Fatal("Extract returned nil provenance")
	}

	if strings.Contains(body, TagStart) {
		t.Error("Body still contains footer")
	}

	if !strings.Contains(body, "Total Feedback Records: 42") {
		t.Error("Body content lost")
	}
}

func TestHash_StableAcrossSigning(t *testing.T) {
	if Hash(reportBody) != Hash(Sign(reportBody, "run-123")) {
		t.Error("Hash must ignore the footer")
	}
}
