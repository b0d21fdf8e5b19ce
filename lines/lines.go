// Package lines provides the line-level text helpers used while rewriting
// docstrings: indentation measurement and adjustment, blank-line tests,
// fixed-position overwrites for table layout, and escaping of identifiers
// that would otherwise collide with reStructuredText inline markup.
//
// All widths and columns are measured in runes.
package lines

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultIndent is the indentation width used by [AddIndent] callers that
// have no layout-specific requirement.
const DefaultIndent = 4

// IndentOf returns the leading whitespace of line.
func IndentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
}

// IsBlank reports whether line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// StripCommonIndent removes the indentation of the first non-blank line from
// every line. Blank lines become empty. Non-blank lines that do not start
// with that indentation are returned unchanged.
func StripCommonIndent(ls []string) []string {
	indent := ""
	for _, l := range ls {
		if !IsBlank(l) {
			indent = IndentOf(l)

			break
		}
	}

	out := make([]string, 0, len(ls))
	for _, l := range ls {
		switch {
		case IsBlank(l):
			out = append(out, "")
		case strings.HasPrefix(l, indent):
			out = append(out, l[len(indent):])
		default:
			out = append(out, l)
		}
	}

	return out
}

// AddIndent prefixes every non-blank line with n spaces. Blank lines become
// empty.
func AddIndent(ls []string, n int) []string {
	pad := strings.Repeat(" ", max(n, 0))

	out := make([]string, 0, len(ls))
	for _, l := range ls {
		if IsBlank(l) {
			out = append(out, "")

			continue
		}

		out = append(out, pad+l)
	}

	return out
}

// ReplaceAt overwrites line with text starting at rune column. The result is
// max(Width(line), column+Width(text)) runes long. A column beyond the end
// of line is reached by padding with spaces.
func ReplaceAt(text, line string, column int) string {
	column = max(column, 0)

	rs := []rune(line)
	for len(rs) < column {
		rs = append(rs, ' ')
	}

	ts := []rune(text)
	end := column + len(ts)

	out := make([]rune, 0, max(len(rs), end))
	out = append(out, rs[:column]...)
	out = append(out, ts...)

	if end < len(rs) {
		out = append(out, rs[end:]...)
	}

	return string(out)
}

// EscapeLeadingStars escapes each leading '*' of name, so that variadic
// markers such as *args and **kwargs are not read as emphasis.
func EscapeLeadingStars(name string) string {
	rest := strings.TrimLeft(name, "*")
	stars := len(name) - len(rest)

	return strings.Repeat(`\*`, stars) + rest
}

// EscapeTrailingUnderscore escapes a trailing '_' of name, so that names
// like from_ are not read as hyperlink references.
func EscapeTrailingUnderscore(name string) string {
	if !strings.HasSuffix(name, "_") || strings.HasSuffix(name, `\_`) {
		return name
	}

	return name[:len(name)-1] + `\_`
}

// EscapeBackslashes doubles every backslash in s.
func EscapeBackslashes(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// Reflow joins the trimmed non-blank lines of ls with single spaces.
func Reflow(ls []string) string {
	parts := make([]string, 0, len(ls))
	for _, l := range ls {
		l = strings.TrimSpace(l)
		if l != "" {
			parts = append(parts, l)
		}
	}

	return strings.Join(parts, " ")
}

// TrimRight removes trailing whitespace from every line.
func TrimRight(ls []string) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}

	return out
}

// Width returns the number of runes in s.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// Clip truncates s to at most w runes.
func Clip(s string, w int) string {
	if w <= 0 {
		return ""
	}

	if Width(s) <= w {
		return s
	}

	return string([]rune(s)[:w])
}

// Pad right-pads s with spaces to w runes. Longer strings are returned
// unchanged.
func Pad(s string, w int) string {
	n := Width(s)
	if n >= w {
		return s
	}

	return s + strings.Repeat(" ", w-n)
}
