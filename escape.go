package main

import "strings"

// Markers produced by the escape table. The classifier and the Telegram
// formatter key off these exact strings.
const (
	markBold       = "**"
	markUnderline  = "*"
	markReverse    = "[rev]"
	markReset      = "[reset]"
	markResetShort = "[reset-short]"
)

// escapeCode is one entry of the translation table.
type escapeCode struct {
	seq         string
	replacement string
}

// escapeCodes is the complete set of sequences the relay understands.
// Anything else the interpreter emits passes through untouched.
var escapeCodes = []escapeCode{
	// Foreground colors
	{"\x1B[30m", ""},
	{"\x1B[31m", ""},
	{"\x1B[32m", ""},
	{"\x1B[33m", ""},
	{"\x1B[34m", ""},
	{"\x1B[35m", ""},
	{"\x1B[36m", ""},
	{"\x1B[37m", ""},

	// Bright foreground colors
	{"\x1B[30;1m", ""},
	{"\x1B[31;1m", ""},
	{"\x1B[32;1m", ""},
	{"\x1B[33;1m", ""},
	{"\x1B[34;1m", ""},
	{"\x1B[35;1m", ""},
	{"\x1B[36;1m", ""},
	{"\x1B[37;1m", ""},

	// Background colors
	{"\x1B[40m", ""},
	{"\x1B[41m", ""},
	{"\x1B[42m", ""},
	{"\x1B[43m", ""},
	{"\x1B[44m", ""},
	{"\x1B[45m", ""},
	{"\x1B[46m", ""},
	{"\x1B[47m", ""},

	{"\x1B[39m", ""}, // default foreground
	{"\x1B[49m", ""}, // default background
	{"\x1B[0K", ""},  // clear to end of line

	{"\x1B[1m", markBold},
	{"\x1B[22m", markBold},
	{"\x1B[4m", markUnderline},
	{"\x1B[24m", markUnderline},
	{"\x1B[7m", markReverse},
	{"\x1B[27m", ""}, // positive (not inverse)

	{"\x1B[0m", markReset},
	{"\x1B[m", markResetShort},
}

// escapeReplacer does literal matching only; no sequence is ever compiled
// into a pattern.
var escapeReplacer = newEscapeReplacer(escapeCodes)

func newEscapeReplacer(codes []escapeCode) *strings.Replacer {
	pairs := make([]string, 0, len(codes)*2)
	for _, c := range codes {
		pairs = append(pairs, c.seq, c.replacement)
	}
	return strings.NewReplacer(pairs...)
}

// TranslateEscapes replaces every known escape sequence in line with its
// plain-text equivalent.
func TranslateEscapes(line string) string {
	if !strings.Contains(line, "\x1B") {
		return line
	}
	return escapeReplacer.Replace(line)
}
