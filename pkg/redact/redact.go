// Package redact provides partial masking of secret values for display.
package redact

import (
	"fmt"
	"strings"
)

// DefaultKeep is how many leading characters Mask leaves visible by default.
const DefaultKeep = 3

// Mask redacts value for display, keeping the first keep characters
// visible and replacing the rest with maskRune. Non-string values are
// coerced with fmt.Sprint first. The function is total:
//
//   - keep <= 0 masks the whole string
//   - strings no longer than keep are returned unmodified (too short to
//     mask safely; favors usability over redaction for tiny inputs)
//
// Masking operates on runes, so multibyte input keeps its character count.
func Mask(value interface{}, keep int, maskRune rune) string {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}

	runes := []rune(s)
	if keep <= 0 {
		return strings.Repeat(string(maskRune), len(runes))
	}
	if len(runes) <= keep {
		return s
	}
	return string(runes[:keep]) + strings.Repeat(string(maskRune), len(runes)-keep)
}

// MaskDefault masks value with the default policy: keep three characters,
// fill with '*'.
func MaskDefault(value interface{}) string {
	return Mask(value, DefaultKeep, '*')
}
