package oramacore

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// apiKeyLength is the length of generated collection API keys.
const apiKeyLength = 32

// KeyGenerator produces a random key of the given length. The Manager calls
// it when collection params omit an API key. Replace it in tests via
// WithKeyGenerator for deterministic keys.
type KeyGenerator func(length int) (string, error)

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomKey draws length alphanumeric characters from crypto/rand.
func randomKey(length int) (string, error) {
	out := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(keyAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		out[i] = keyAlphabet[n.Int64()]
	}
	return string(out), nil
}
