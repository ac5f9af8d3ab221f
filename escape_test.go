package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain_text",
			input: "West of House",
			want:  "West of House",
		},
		{
			name:  "foreground_color_and_default",
			input: "\x1B[31mRed\x1B[39m",
			want:  "Red",
		},
		{
			name:  "bright_foreground",
			input: "\x1B[33;1mGold\x1B[39m",
			want:  "Gold",
		},
		{
			name:  "background_color",
			input: "\x1B[44mBlue sky\x1B[49m",
			want:  "Blue sky",
		},
		{
			name:  "clear_to_end_of_line",
			input: "Score: 0\x1B[0K",
			want:  "Score: 0",
		},
		{
			name:  "bold_set_and_reset",
			input: "\x1B[1mbrass lantern\x1B[22m",
			want:  "**brass lantern**",
		},
		{
			name:  "underline_set_and_reset",
			input: "\x1B[4mZORK\x1B[24m",
			want:  "*ZORK*",
		},
		{
			name:  "reverse_video",
			input: "\x1B[7m West of House \x1B[27m",
			want:  "[rev] West of House ",
		},
		{
			name:  "full_reset",
			input: "text\x1B[0m",
			want:  "text[reset]",
		},
		{
			name:  "short_reset",
			input: "text\x1B[m",
			want:  "text[reset-short]",
		},
		{
			name:  "unknown_sequence_untouched",
			input: "\x1B[2J\x1B[1;1Hhello",
			want:  "\x1B[2J\x1B[1;1Hhello",
		},
		{
			name:  "bracket_text_not_a_pattern",
			input: "[0m and [31m are just text",
			want:  "[0m and [31m are just text",
		},
		{
			name:  "multibyte_around_codes",
			input: "\x1B[32mÉtagère ☕\x1B[39m",
			want:  "Étagère ☕",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateEscapes(tt.input))
		})
	}
}

func TestTranslateEscapesIdempotentOnCleanText(t *testing.T) {
	inputs := []string{
		"",
		"You are standing in an open field.",
		"**bold** and *underlined*",
		"[rev] Status line [reset]",
		"Punctuation: ()[]{}.*+?^$|\\",
	}
	for _, s := range inputs {
		once := TranslateEscapes(s)
		assert.Equal(t, once, TranslateEscapes(once), "input %q", s)
		assert.Equal(t, s, once)
	}
}

func TestEscapeTableCoversEveryColor(t *testing.T) {
	table := make(map[string]string, len(escapeCodes))
	for _, c := range escapeCodes {
		assert.True(t, strings.HasPrefix(c.seq, "\x1B["), "sequence %q", c.seq)
		_, dup := table[c.seq]
		assert.False(t, dup, "duplicate sequence %q", c.seq)
		table[c.seq] = c.replacement
	}

	for _, base := range []string{"3", "4"} {
		for digit := '0'; digit <= '7'; digit++ {
			seq := "\x1B[" + base + string(digit) + "m"
			replacement, ok := table[seq]
			assert.True(t, ok, "missing %q", seq)
			assert.Empty(t, replacement)
		}
	}
	for digit := '0'; digit <= '7'; digit++ {
		seq := "\x1B[3" + string(digit) + ";1m"
		_, ok := table[seq]
		assert.True(t, ok, "missing %q", seq)
	}
	assert.Len(t, table, 35)
}
