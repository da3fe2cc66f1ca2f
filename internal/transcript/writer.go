// Package transcript appends conversation turns to a session's
// transcript.jsonl, one JSON object per line, in turn order. The rendered
// task document points downstream consumers at this file.
package transcript

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/quillback/intake/internal/session"
)

// Writer appends turns to a transcript file. Safe for concurrent appends;
// every append is flushed so a crash loses at most the OS buffer.
type Writer struct {
	mu   sync.Mutex
	path string
	file *os.File
	buf  *bufio.Writer
}

// NewWriter opens (or creates) a transcript for appending.
func NewWriter(path string) (*Writer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("transcript path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create transcript dir: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open transcript %s: %w", path, err)
	}

	return &Writer{
		path: path,
		file: file,
		buf:  bufio.NewWriter(file),
	}, nil
}

// Append writes one turn as a JSONL record.
func (w *Writer) Append(turn session.ConversationTurn) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return errors.New("transcript writer is closed")
	}

	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("encode turn: %w", err)
	}
	payload = append(payload, '\n')

	if _, err := w.buf.Write(payload); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flush transcript: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Further appends fail.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	w.file = nil
	w.buf = nil

	if flushErr != nil {
		return fmt.Errorf("flush transcript: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close transcript: %w", closeErr)
	}
	return nil
}
