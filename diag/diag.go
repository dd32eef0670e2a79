// Package diag renders the context windows attached to lexer and parser
// errors. It is pure formatting; callers pass in whatever source text or
// token stream they have.
package diag

import "strings"

// contextRadius is the number of characters shown either side of the
// offending column.
const contextRadius = 20

// Source renders the source line containing the failure, windowed to
// contextRadius characters either side of col, with a caret underneath the
// exact column. Truncated ends are marked with an ellipsis. Line and col
// are 0-based codepoint positions.
func Source(src string, line, col int) string {
	runes := []rune(lineAt(src, line))

	lo := col - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := col + contextRadius + 1
	if hi > len(runes) {
		hi = len(runes)
	}
	if lo > len(runes) {
		lo = len(runes)
	}

	var sb strings.Builder
	pad := col - lo
	if lo > 0 {
		sb.WriteString("...")
		pad += 3
	}
	sb.WriteString(string(runes[lo:hi]))
	if hi < len(runes) {
		sb.WriteString("...")
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteByte('^')
	return sb.String()
}

// Tokens renders a window of two tokens either side of the offending token,
// which is shown bracketed.
func Tokens(contents []string, idx int) string {
	if len(contents) == 0 {
		return ""
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(contents) {
		idx = len(contents) - 1
	}

	lo := idx - 2
	if lo < 0 {
		lo = 0
	}
	hi := idx + 3
	if hi > len(contents) {
		hi = len(contents)
	}

	parts := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if i == idx {
			parts = append(parts, "["+contents[i]+"]")
		} else {
			parts = append(parts, contents[i])
		}
	}
	return strings.Join(parts, " ")
}

// lineAt returns the line-th line of src, without its terminator. Lines are
// separated by CR, LF or CRLF. Out-of-range lines come back empty.
func lineAt(src string, line int) string {
	start, current := 0, 0
	for i := 0; i < len(src); {
		c := src[i]
		if c != '\r' && c != '\n' {
			i++
			continue
		}
		if current == line {
			return src[start:i]
		}
		i++
		if c == '\r' && i < len(src) && src[i] == '\n' {
			i++
		}
		current++
		start = i
	}
	if current == line {
		return src[start:]
	}
	return ""
}
