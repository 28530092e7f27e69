// Package format provides pure string formatting helpers shared by the
// presentation layers.
package format

import "strings"

// GroupDigits inserts thousands separators into a decimal string.
// Non-numeric input is returned unchanged.
//
// Parameters:
//   - s: A decimal integer string, e.g. "664579".
//
// Returns:
//   - string: The grouped form, e.g. "664,579".
func GroupDigits(s string) string {
	if s == "" {
		return s
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return s
		}
	}

	var sb strings.Builder
	sb.Grow(len(s) + len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
