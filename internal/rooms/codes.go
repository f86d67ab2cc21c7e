package rooms

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Alphabet excludes ambiguous characters: 0, O, 1, I, L
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 4

// GenerateCode produces a short random code for create requests that
// arrive without one.
func GenerateCode() (string, error) {
	code := make([]byte, codeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code), nil
}

// NormalizeCode canonicalizes an externally supplied room code. Codes are
// opaque keys; only casing and surrounding whitespace are ignored.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
