package loginid

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestIdentity_WithSerial(t *testing.T) {
	type testCase struct {
		name     string
		identity Identity
		serial   int
		expected string
	}

	run := func(t *testing.T, tc testCase) {
		assert.Equal(t, tc.identity.WithSerial(tc.serial), tc.expected)
		assert.Equal(t, len([]rune(tc.identity.WithSerial(tc.serial))), Length)
	}

	testCases := []testCase{
		{
			name:     "typical",
			identity: New("Acme Corp", "John", "Doe", 2023),
			serial:   1,
			expected: "ACJODO20230001",
		},
		{
			name:     "short names padded",
			identity: New("Acme Corp", "Al", "O", 2023),
			serial:   12,
			expected: "ACALOX20230012",
		},
		{
			name:     "single letter company",
			identity: New("X", "Jane", "Smith", 2024),
			serial:   9999,
			expected: "XXJASM20249999",
		},
		{
			name:     "empty company falls back",
			identity: New("", "Jane", "Smith", 2024),
			serial:   3,
			expected: "COJASM20240003",
		},
		{
			name:     "whitespace stripped before truncation",
			identity: New("  a b c  ", "John", "Doe", 2023),
			serial:   1,
			expected: "ABJODO20230001",
		},
		{
			name:     "lowercase input uppercased",
			identity: New("acme", "john", "doe", 2023),
			serial:   42,
			expected: "ACJODO20230042",
		},
		{
			name:     "non-ascii names",
			identity: New("Müller GmbH", "Åsa", "Öberg", 2023),
			serial:   7,
			expected: "MÜÅSÖB20230007",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

func TestIdentity_Bucket(t *testing.T) {
	id := New("Acme Corp", "John", "Doe", 2023)
	assert.Equal(t, id.Bucket(), "ACJODO2023")
}

func TestParseSerial(t *testing.T) {
	serial, err := ParseSerial("ACJODO20230917")
	assert.NilError(t, err)
	assert.Equal(t, serial, 917)

	_, err = ParseSerial("ACJODO2023000x")
	assert.ErrorContains(t, err, "no serial suffix")

	_, err = ParseSerial("x")
	assert.ErrorContains(t, err, "too short")
}
