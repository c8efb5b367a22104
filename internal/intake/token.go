package intake

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// generateToken returns a 256-bit random token in URL-safe base64 without
// padding, suitable for embedding directly in a link path.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
