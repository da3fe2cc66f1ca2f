package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrSnapshotNotFound reports a missing session snapshot file.
var ErrSnapshotNotFound = errors.New("session snapshot not found")

// Load reads a session snapshot from disk. Unknown fields and trailing data
// are errors so a corrupted or foreign file never half-loads. The loaded
// session uses the wall clock until SetClock is called.
func Load(path string) (*IntakeSession, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("read session snapshot %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var s IntakeSession
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse session snapshot %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse session snapshot %s: trailing JSON values", path)
		}
		return nil, fmt.Errorf("parse session snapshot %s: trailing data: %w", path, err)
	}

	if strings.TrimSpace(s.Metadata.IntakeID) == "" {
		return nil, fmt.Errorf("parse session snapshot %s: metadata.intake_id is required", path)
	}

	return &s, nil
}

// Save writes a session snapshot atomically, creating the session folder if
// needed. Persistence policy (when to save, where the root lives) belongs to
// the caller; this is only the codec.
func Save(path string, s *IntakeSession) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	if err := atomicWriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write session snapshot %s: %w", path, err)
	}
	return nil
}
