// Package strutil provides small string helpers used across layers.
package strutil

import "strconv"

// ConvertToInt parses s and falls back to 0 when s is not a number.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}

// Truncate shortens s to keep characters followed by "..." when s has more than limit characters.
func Truncate(s string, limit, keep int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:keep]) + "..."
}
