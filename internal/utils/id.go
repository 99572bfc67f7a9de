package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateShareHash creates a cryptographically random opaque hash for public
// share links. length is the number of random bytes before encoding.
func GenerateShareHash(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
