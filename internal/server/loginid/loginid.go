// Package loginid builds the structured login identifiers issued to
// employees. An identifier is a fixed 14 character string:
//
//	CCNNNNYYYYSSSS
//
// where CC is a 2 character company prefix, NNNN is a 4 character name
// prefix, YYYY is the hire year, and SSSS is a zero padded serial that
// is unique within the CCNNNNYYYY bucket.
package loginid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	// SerialMax is the largest serial that fits the fixed width format.
	SerialMax = 9999

	// Length of a complete login ID.
	Length = 14

	padRune         = 'X'
	fallbackCompany = "CO"
)

// Identity is the bucket portion of a login ID, before the serial is
// allocated.
type Identity struct {
	Company string // 2 characters
	Name    string // 4 characters
	Year    int
}

// New derives the identity for an employee. Company and name prefixes
// are uppercased and padded with 'X' so the result is always fixed
// width.
func New(companyName, firstName, lastName string, year int) Identity {
	return Identity{
		Company: CompanyPrefix(companyName),
		Name:    NamePrefix(firstName, lastName),
		Year:    year,
	}
}

// Bucket returns the 10 character prefix shared by every login ID
// issued to this company, name, and year combination.
func (i Identity) Bucket() string {
	return fmt.Sprintf("%s%s%04d", i.Company, i.Name, i.Year)
}

// WithSerial returns the complete login ID for the given serial.
func (i Identity) WithSerial(serial int) string {
	return fmt.Sprintf("%s%04d", i.Bucket(), serial)
}

// CompanyPrefix returns the first 2 letters of the company name with
// whitespace removed, uppercased and padded with 'X'. An empty name
// falls back to "CO".
func CompanyPrefix(companyName string) string {
	s := firstRunes(companyName, 2)
	if len(s) == 0 {
		return fallbackCompany
	}
	return pad(s, 2)
}

// NamePrefix returns the first 2 characters of the first name followed
// by the first 2 characters of the last name, uppercased and padded
// with 'X'.
func NamePrefix(firstName, lastName string) string {
	return pad(firstRunes(firstName, 2), 2) + pad(firstRunes(lastName, 2), 2)
}

// ParseSerial extracts the numeric serial from the trailing 4
// characters of a login ID.
func ParseSerial(loginID string) (int, error) {
	if len(loginID) < 4 {
		return 0, fmt.Errorf("login ID %q too short", loginID)
	}
	serial, err := strconv.Atoi(loginID[len(loginID)-4:])
	if err != nil {
		return 0, fmt.Errorf("login ID %q has no serial suffix", loginID)
	}
	return serial, nil
}

func firstRunes(s string, n int) []rune {
	var out []rune
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == n {
			break
		}
	}
	return out
}

func pad(s []rune, n int) string {
	for len(s) < n {
		s = append(s, padRune)
	}
	return string(s[:n])
}
