package domain

import (
	"errors"
	"strings"
)

var ErrInvalidZipCode = errors.New("invalid zip code")

// NormalizeZip converts a raw user- or dataset-supplied value into the
// canonical 5-digit key used for all comparisons:
//
//   - surrounding whitespace is trimmed
//   - a trailing ".<digits>" decimal suffix is dropped (spreadsheet exports
//     routinely turn 79936 into "79936.0")
//   - a ZIP+4 suffix is dropped ("90210-1234" → "90210")
//   - 1–5 digit values are zero-padded to 5 ("123" → "00123")
//
// Anything else (empty input, more than 5 digits, any remaining non-digit)
// fails with ErrInvalidZipCode. The result is a fixed point: normalizing an
// already-normalized zip returns it unchanged.
func NormalizeZip(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if i := strings.IndexByte(s, '.'); i >= 0 {
		if !allDigits(s[i+1:]) {
			return "", ErrInvalidZipCode
		}
		s = s[:i]
	}

	if i := strings.IndexByte(s, '-'); i >= 0 {
		plus4 := s[i+1:]
		if len(plus4) != 4 || !allDigits(plus4) {
			return "", ErrInvalidZipCode
		}
		s = s[:i]
	}

	if s == "" || len(s) > 5 || !allDigits(s) {
		return "", ErrInvalidZipCode
	}

	if len(s) < 5 {
		s = strings.Repeat("0", 5-len(s)) + s
	}
	return s, nil
}

// allDigits reports whether s is non-empty and consists only of ASCII digits.
// Unicode digit classes are deliberately excluded: a zip key is ASCII or invalid.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
