package testutils

import "strings"

// GenerateOverBytesUnderRunes builds a string whose rune count is always
// smaller than its byte count.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 bytes, 1 rune
	return strings.Repeat(symbol, count)
}
