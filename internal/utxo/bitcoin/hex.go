package bitcoin

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// ParseHex decodes a hex string after dropping every whitespace character,
// so "4f 4f" and "4f4f" decode to the same bytes.
func ParseHex(s string) ([]byte, error) {
	filtered := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(filtered)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return b, nil
}

// SplitCommaHex parses a comma separated list of hex strings and returns
// them normalized, one element per comma separated field.
func SplitCommaHex(s string) ([]string, error) {
	fields := strings.Split(s, ",")
	result := make([]string, 0, len(fields))
	for idx, field := range fields {
		b, err := ParseHex(field)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", idx, err)
		}
		result = append(result, hex.EncodeToString(b))
	}
	return result, nil
}
