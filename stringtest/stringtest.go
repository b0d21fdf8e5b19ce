// Package stringtest builds docstring test inputs and expected outputs.
package stringtest

import "strings"

// JoinLF joins lines with "\n". No newline is added after the last line, so
// pass a final "" to end the text with one.
//
//	want := stringtest.JoinLF(":returns:", "    **int** -- The count.", "")
func JoinLF(ls ...string) string {
	return strings.Join(ls, "\n")
}

// JoinCRLF is [JoinLF] with "\r\n" line endings, for inputs written on
// Windows.
func JoinCRLF(ls ...string) string {
	return strings.Join(ls, "\r\n")
}

// Input dedents a multi-line raw string literal for use as test input.
//
// A leading newline and a trailing whitespace-only line are dropped, so the
// literal can start and end on its own lines. The smallest indentation of
// the remaining non-blank lines is removed from every line, and
// whitespace-only lines become empty.
//
// Example:
//
//	input := stringtest.Input(`
//		Arguments
//		---------
//		count : int
//		    Number of repetitions.
//	`)
func Input(s string) string {
	ls := strings.Split(s, "\n")

	if len(ls) > 0 && ls[0] == "" {
		ls = ls[1:]
	}

	if len(ls) > 0 && strings.TrimSpace(ls[len(ls)-1]) == "" {
		ls = ls[:len(ls)-1]
	}

	indent := -1
	for _, l := range ls {
		if strings.TrimSpace(l) == "" {
			continue
		}

		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, l := range ls {
		switch {
		case strings.TrimSpace(l) == "":
			ls[i] = ""
		case indent > 0:
			ls[i] = l[indent:]
		}
	}

	return strings.Join(ls, "\n")
}

// Lines returns the lines of [Input](s).
func Lines(s string) []string {
	in := Input(s)
	if in == "" {
		return nil
	}

	return strings.Split(in, "\n")
}
