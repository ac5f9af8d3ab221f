package main

import "strings"

// LineKind tags a translated interpreter line.
type LineKind int

const (
	LineNoise LineKind = iota
	LineHeader
	LineBlank
	LineContent
)

func (k LineKind) String() string {
	switch k {
	case LineNoise:
		return "noise"
	case LineHeader:
		return "header"
	case LineBlank:
		return "blank"
	case LineContent:
		return "content"
	}
	return "unknown"
}

// ParsedLine is a trimmed, translated line and its classification.
type ParsedLine struct {
	Text string
	Kind LineKind
}

// filePromptPrefix starts dfrotz's "Please enter a filename [x.qzl]: " prompt.
const filePromptPrefix = "Please enter a filename"

// Interpreter banners that carry nothing for the player.
var noiseBanners = map[string]bool{
	"Using normal formatting.": true,
	"Using ANSI formatting.":   true,
	">":                        true,
}

// Classifier sorts lines into noise, header, blank and content.
type Classifier struct {
	// GamePath filters the interpreter's "Loading <path>." echo.
	GamePath string

	// LegacyBlankNoise treats an empty line as noise, so it does not end a
	// paragraph. Only whitespace-only lines count as blank in that mode.
	LegacyBlankNoise bool
}

// Classify categorizes a line that has already been through TranslateEscapes.
func (c *Classifier) Classify(line string) ParsedLine {
	trimmed := strings.TrimSpace(line)

	if c.isNoise(line, trimmed) {
		return ParsedLine{Kind: LineNoise}
	}
	if trimmed == "" {
		return ParsedLine{Kind: LineBlank}
	}
	if strings.HasPrefix(trimmed, markReverse) {
		return ParsedLine{Text: headerText(trimmed), Kind: LineHeader}
	}
	return ParsedLine{Text: trimmed, Kind: LineContent}
}

func (c *Classifier) isNoise(line, trimmed string) bool {
	if line == "" {
		return c.LegacyBlankNoise
	}
	if noiseBanners[trimmed] {
		return true
	}
	if c.GamePath != "" && trimmed == "Loading "+c.GamePath+"." {
		return true
	}
	return strings.HasPrefix(trimmed, filePromptPrefix)
}

// headerText strips the reverse-video marker and any reset placeholders
// around the status line text.
func headerText(trimmed string) string {
	text := strings.TrimPrefix(trimmed, markReverse)
	for {
		before := text
		text = strings.TrimSpace(text)
		text = strings.TrimSuffix(text, markReset)
		text = strings.TrimSuffix(text, markResetShort)
		if text == before {
			return text
		}
	}
}
