package transcript

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/quillback/intake/internal/session"
)

// Read loads every turn from a transcript file, in file order. Blank lines
// are skipped; a malformed line fails with its line number so the offending
// record can be found.
func Read(path string) ([]session.ConversationTurn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript %s: %w", path, err)
	}
	defer f.Close()

	var turns []session.ConversationTurn
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var turn session.ConversationTurn
		if err := json.Unmarshal(line, &turn); err != nil {
			return nil, fmt.Errorf("parse transcript %s line %d: %w", path, lineNo, err)
		}
		turns = append(turns, turn)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}

	return turns, nil
}
