package generate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
)

const (
	CharsetAlphaNumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	CharsetNumbers      = "0123456789"
)

// PasswordLength gives initial passwords roughly 142 bits of entropy,
// comfortably above the 128-bit floor required for issued credentials.
const PasswordLength = 24

// CryptoRandom generates a cryptographically-safe random string from charset.
func CryptoRandom(n int, charset string) (string, error) {
	if n <= 0 {
		return "", nil
	}

	bytes := make([]byte, n)
	for i := range bytes {
		bigint, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("couldn't generate random string of len %d: %w", n, err)
		}

		bytes[i] = charset[bigint.Int64()]
	}

	return string(bytes), nil
}

// MathRandom generates a random string that does not need to be
// cryptographically secure. Preferred over CryptoRandom when security is not
// required, as it is not a drain on the entropy pool.
func MathRandom(n int, charset string) string {
	if n <= 0 {
		return ""
	}

	bytes := make([]byte, n)
	for i := range bytes {
		//nolint:gosec // mathrand on purpose, see doc comment
		j := mathrand.Int31n(int32(len(charset)))
		bytes[i] = charset[j]
	}

	return string(bytes)
}

// Password generates an initial credential password.
func Password() (string, error) {
	return CryptoRandom(PasswordLength, CharsetAlphaNumeric)
}
