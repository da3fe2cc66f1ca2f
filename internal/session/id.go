package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const intakeIDTimeLayout = "20060102_150405"

// GenerateIntakeID mints a session identifier of the form
// intake_YYYYMMDD_HHMMSS_xxxxxx. The suffix is 3 bytes from crypto/rand:
// the id doubles as an unguessable session folder name, so a predictable
// generator is not acceptable. Uniqueness is probabilistic (24 bits per
// second of wall clock), which is enough for this domain.
func GenerateIntakeID() (string, error) {
	return generateIntakeIDAt(time.Now())
}

func generateIntakeIDAt(now time.Time) (string, error) {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate intake id: %w", err)
	}
	stamp := now.UTC().Format(intakeIDTimeLayout)
	return fmt.Sprintf("intake_%s_%s", stamp, hex.EncodeToString(suffix)), nil
}
