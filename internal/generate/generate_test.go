package generate

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestCryptoRandom(t *testing.T) {
	for _, n := range []int{0, 1, 10, 64} {
		s, err := CryptoRandom(n, CharsetAlphaNumeric)
		assert.NilError(t, err)
		assert.Equal(t, len(s), n)
		for _, c := range s {
			assert.Assert(t, strings.ContainsRune(CharsetAlphaNumeric, c))
		}
	}
}

func TestPasswordNoCollisions(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		p, err := Password()
		assert.NilError(t, err)
		assert.Equal(t, len(p), PasswordLength)
		_, ok := seen[p]
		assert.Assert(t, !ok, "password collision after %d samples", i)
		seen[p] = struct{}{}
	}
}

func TestMathRandom(t *testing.T) {
	s := MathRandom(12, CharsetNumbers)
	assert.Equal(t, len(s), 12)
	for _, c := range s {
		assert.Assert(t, c >= '0' && c <= '9')
	}
}
