package lsp

import (
	"strings"
	"unicode/utf16"
)

// sourceLines splits a document the way the lexer counts lines
func sourceLines(source string) []string {
	return strings.Split(source, "\n")
}

// utf16Column converts a 1-based rune column on the given 1-based line into
// the 0-based UTF-16 offset protocol positions use. Columns past the end of
// the line stop at its length.
func utf16Column(lines []string, line, column int) int {
	if line < 1 || line > len(lines) {
		return max(column-1, 0)
	}

	units := 0
	for _, r := range lines[line-1] {
		if column <= 1 {
			break
		}
		units += len(utf16.Encode([]rune{r}))
		column--
	}
	return units
}
