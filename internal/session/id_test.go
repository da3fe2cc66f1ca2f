package session

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var intakeIDPattern = regexp.MustCompile(`^intake_\d{8}_\d{6}_[0-9a-f]{6}$`)

func TestGenerateIntakeIDFormat(t *testing.T) {
	id, err := GenerateIntakeID()
	if err != nil {
		t.Fatalf("generate intake id: %v", err)
	}
	if !intakeIDPattern.MatchString(id) {
		t.Fatalf("id %q does not match %s", id, intakeIDPattern)
	}
	// The id doubles as a folder name; it must stay path-safe.
	if strings.ContainsAny(id, "/\\ ") {
		t.Fatalf("id %q contains path-unsafe characters", id)
	}
}

func TestGenerateIntakeIDTimestampPortion(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 5, 42, 0, time.UTC)
	id, err := generateIntakeIDAt(now)
	if err != nil {
		t.Fatalf("generate intake id: %v", err)
	}
	if !strings.HasPrefix(id, "intake_20260830_090542_") {
		t.Fatalf("id = %q, want prefix %q", id, "intake_20260830_090542_")
	}
}

func TestGenerateIntakeIDBulkDistinct(t *testing.T) {
	// 24 bits of suffix entropy per wall-clock second means a handful of
	// birthday collisions are expected at this volume (~3 at 10k draws in
	// one second). Uniqueness is probabilistic, so the check is a floor on
	// distinct ids, not an exact no-duplicates assertion.
	const n = 10000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id, err := GenerateIntakeID()
		if err != nil {
			t.Fatalf("generate intake id: %v", err)
		}
		if !intakeIDPattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, intakeIDPattern)
		}
		seen[id] = true
	}
	if len(seen) < n-50 {
		t.Fatalf("distinct ids = %d of %d, far more collisions than 24-bit entropy predicts", len(seen), n)
	}
}
