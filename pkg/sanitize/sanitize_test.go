package sanitize

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain_text", input: "hello world", expected: "hello world"},
		{name: "trims_whitespace", input: "  hello  ", expected: "hello"},
		{name: "removes_null", input: "he\x00llo", expected: "hello"},
		{name: "removes_newlines", input: "line1\nline2", expected: "line1line2"},
		{name: "removes_tabs_and_cr", input: "a\tb\rc", expected: "abc"},
		{name: "removes_escape", input: "a\x1b[31mb", expected: "a[31mb"},
		{name: "empty", input: "", expected: ""},
		{name: "only_control", input: "\x00\x01\x02\n\t", expected: ""},
		{name: "unicode_preserved", input: "Привет, мир! 你好", expected: "Привет, мир! 你好"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clean(tc.input))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"hello world",
		"  padded  ",
		"con\x00trol\nchars\t",
		"",
		"\x1f\x7f",
		"multi\r\nline\r\nmessage",
	}

	for _, s := range inputs {
		once := Clean(s)
		assert.Equal(t, once, Clean(once), "Clean must be idempotent for %q", s)
	}
}

func TestClean_NoControlCharsInOutput(t *testing.T) {
	inputs := []string{
		"a\x00b\x01c\x02d",
		"tabs\tand\nnewlines\r",
		"\x7fdelete\x7f",
		"mixed \x1b content \v here",
	}

	for _, s := range inputs {
		for _, r := range Clean(s) {
			assert.False(t, unicode.IsControl(r), "output of Clean(%q) contains control char %U", s, r)
		}
	}
}
