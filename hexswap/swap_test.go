package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSwap(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "no marker", line: "hello", expected: "hello"},
		{name: "no marker trailing whitespace", line: "hello   \t", expected: "hello"},
		{name: "leading whitespace kept", line: "  hello\r\n", expected: "  hello"},
		{name: "empty", line: "", expected: ""},
		{name: "whitespace only", line: " \t \v\f", expected: ""},
		{name: "ascii separators stripped", line: "x\x1c\x1d\x1e\x1f", expected: "x"},
		{name: "rgb color", line: "color: 0xff8800,", expected: "color: 0x0088ff,"},
		{name: "eight digits", line: "foo 0x12345678 bar", expected: "foo 0x56341278 bar"},
		{name: "deadbeef", line: "val=0xDEADBEEF end", expected: "val=0xBEADDEEF end"},
		{name: "six digits then whitespace", line: "0x123456  ", expected: "0x563412"},
		{name: "two digits", line: "0xFF", expected: "0xFF"},
		{name: "two digits again", line: "0x12", expected: "0x12"},
		{name: "four digits", line: "0x1234", expected: "0x3412"},
		{name: "five digits", line: "0x12345", expected: "0x53412"},
		{name: "three digits", line: "0x123", expected: "0x312"},
		{name: "bare marker", line: "0x", expected: "0x"},
		{name: "marker at end", line: "value 0x", expected: "value 0x"},
		{name: "first match only", line: "a 0x112233 b 0x445566", expected: "a 0x332211 b 0x445566"},
		{name: "uppercase prefix ignored", line: "0X112233", expected: "0X112233"},
		{name: "not hex", line: "0xzzyyxx!", expected: "0xxxyyzz!"},
		{name: "marker inside word", line: "abc0x010203def", expected: "abc0x030201def"},
		{name: "multibyte characters count once", line: "0xé1ü2ö3", expected: "0xö3ü2é1"},
		{name: "multibyte prefix", line: "ñ 0x112233", expected: "ñ 0x332211"},
		{name: "invalid utf8 copied through", line: "0x\xff\xfe\x01\x02ab", expected: "0xab\x01\x02\xff\xfe"},
		{name: "short literal with trailing whitespace", line: "0x12 \t", expected: "0x12"},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Swap(tc.line)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSwap_twiceRestoresFullLiterals(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"0x123456",
		"0x12345678",
		"foo 0xDEADBEEF bar",
		"x=0xaabbcc; y=0x001122",
	} {
		got := Swap(Swap(line))
		if diff := cmp.Diff(line, got); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", line, diff)
		}
	}
}

func TestSwap_twiceOnShortLiteral(t *testing.T) {
	t.Parallel()

	once := Swap("0x12345")
	twice := Swap(once)

	if diff := cmp.Diff([]string{"0x53412", "0x24153"}, []string{once, twice}); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSwap_linesWithoutMarker(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"plain text",
		"0X00FF00",
		"x0 0 x",
		"trailing\t\t",
		strings.Repeat("a", 1024) + " ",
	} {
		expected := strings.TrimRight(line, " \t")
		if diff := cmp.Diff(expected, Swap(line)); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", line, diff)
		}
	}
}
