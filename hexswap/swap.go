package main

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const marker = "0x"

// Swap strips trailing whitespace from line and reverses the three
// 2-character groups that follow the first "0x" marker, so 0xRRGGBB becomes
// 0xBBGGRR. Offsets count characters and are clamped to the line, so short
// literals are reordered partially rather than rejected.
func Swap(line string) string {
	line = strings.TrimRightFunc(line, isSpace)

	i := strings.Index(line, marker)
	if i < 0 {
		return line
	}

	p2 := advance(line, i, 2)
	p4 := advance(line, p2, 2)
	p6 := advance(line, p4, 2)
	p8 := advance(line, p6, 2)

	var b strings.Builder
	b.Grow(len(line))
	b.WriteString(line[:i])
	b.WriteString(marker)
	b.WriteString(line[p6:p8])
	b.WriteString(line[p4:p6])
	b.WriteString(line[p2:p4])
	b.WriteString(line[p8:])

	return b.String()
}

// advance returns the byte offset n characters after from, or len(s) if the
// string ends first. Invalid UTF-8 bytes count as one character each.
func advance(s string, from, n int) int {
	for ; n > 0 && from < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[from:])
		from += size
	}

	return from
}

// isSpace also treats the ASCII file, group, record and unit separators as
// whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
