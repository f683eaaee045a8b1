package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Unquote strips the surrounding quote marks from a raw string token and
// resolves its escape sequences. It returns the text and the quote mark used.
func Unquote(raw string) (string, string, error) {
	if len(raw) < 2 {
		return "", "", fmt.Errorf("string literal %q is too short", raw)
	}

	mark := raw[:1]
	if !strings.ContainsAny(mark, "\"'`") || raw[len(raw)-1:] != mark {
		return "", "", fmt.Errorf("string literal %s is not quoted", raw)
	}

	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, mark, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}

		i++
		if i >= len(body) {
			return "", "", fmt.Errorf("string literal %s ends with a lone backslash", raw)
		}

		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case 'u':
			if i+4 >= len(body) {
				return "", "", fmt.Errorf("string literal %s has a truncated \\u escape", raw)
			}
			code, err := strconv.ParseUint(body[i+1:i+5], 16, 32)
			if err != nil {
				return "", "", fmt.Errorf("string literal %s has an invalid \\u escape: %w", raw, err)
			}
			b.WriteRune(rune(code))
			i += 4
		default:
			// \\, \", \', \` and any other escaped character stand for themselves
			b.WriteByte(body[i])
		}
	}

	return b.String(), mark, nil
}

// Quote is the inverse of Unquote for the given mark.
func Quote(text, mark string) string {
	if mark == "" {
		mark = `"`
	}

	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteString(mark)
	for _, r := range text {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case string(r) == mark:
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(mark)
	return b.String()
}
