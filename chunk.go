package main

import (
	"strings"
	"unicode/utf8"
)

const (
	paragraphSep = "\n\n"
	lineSep      = "\n"
)

// messageChunk is one transport-sized piece of a message. lead is the
// separator text that sat between the previous chunk and this one.
type messageChunk struct {
	lead string
	text string
}

// chunkLayout is the full decomposition of a message: joining every
// chunk's lead and text, then trailing, gives back the original.
type chunkLayout struct {
	chunks   []messageChunk
	trailing string
}

// ChunkMessage splits text into non-empty pieces of at most maxSize runes.
// Paragraph boundaries are preferred, then line boundaries; a single line
// longer than maxSize is cut at rune offsets, which may split a word.
func ChunkMessage(text string, maxSize int) []string {
	layout := layoutChunks(text, maxSize)
	out := make([]string, 0, len(layout.chunks))
	for _, c := range layout.chunks {
		out = append(out, c.text)
	}
	return out
}

func layoutChunks(text string, maxSize int) chunkLayout {
	if maxSize <= 0 {
		maxSize = defaultMaxMessageSize
	}
	if text == "" {
		return chunkLayout{}
	}
	if utf8.RuneCountInString(text) <= maxSize {
		return chunkLayout{chunks: []messageChunk{{text: text}}}
	}

	p := &chunkPacker{max: maxSize}
	for i, para := range strings.Split(text, paragraphSep) {
		sep := ""
		if i > 0 {
			sep = paragraphSep
		}
		if utf8.RuneCountInString(para) <= maxSize {
			p.add(sep, para)
			continue
		}

		// Oversized paragraph: pack it line by line
		for j, line := range strings.Split(para, lineSep) {
			lsep := lineSep
			if j == 0 {
				lsep = sep
			}
			if utf8.RuneCountInString(line) <= maxSize {
				p.add(lsep, line)
				continue
			}
			for k, piece := range hardCut(line, maxSize) {
				if k == 0 {
					p.add(lsep, piece)
				} else {
					p.add("", piece)
				}
			}
		}
	}
	return p.finish()
}

// chunkPacker greedily fills chunks in input order.
type chunkPacker struct {
	max     int
	out     []messageChunk
	cur     strings.Builder
	curLen  int
	lead    string
	pending string // separators seen since the last non-empty piece
}

func (p *chunkPacker) add(sep, text string) {
	gap := p.pending + sep
	if text == "" {
		p.pending = gap
		return
	}
	p.pending = ""

	gapLen := utf8.RuneCountInString(gap)
	textLen := utf8.RuneCountInString(text)
	if p.curLen > 0 && p.curLen+gapLen+textLen <= p.max {
		p.cur.WriteString(gap)
		p.cur.WriteString(text)
		p.curLen += gapLen + textLen
		return
	}

	p.flush()
	p.lead = gap
	p.cur.WriteString(text)
	p.curLen = textLen
}

func (p *chunkPacker) flush() {
	if p.curLen == 0 {
		return
	}
	p.out = append(p.out, messageChunk{lead: p.lead, text: p.cur.String()})
	p.cur.Reset()
	p.curLen = 0
	p.lead = ""
}

func (p *chunkPacker) finish() chunkLayout {
	// Keep trailing separators with the last chunk when they fit
	if p.pending != "" && p.curLen > 0 && p.curLen+utf8.RuneCountInString(p.pending) <= p.max {
		p.cur.WriteString(p.pending)
		p.curLen += utf8.RuneCountInString(p.pending)
		p.pending = ""
	}
	p.flush()
	return chunkLayout{chunks: p.out, trailing: p.pending}
}

// join reassembles the text a layout was built from.
func (l chunkLayout) join() string {
	var b strings.Builder
	for _, c := range l.chunks {
		b.WriteString(c.lead)
		b.WriteString(c.text)
	}
	b.WriteString(l.trailing)
	return b.String()
}

// hardCut slices s into pieces of at most maxSize runes.
func hardCut(s string, maxSize int) []string {
	var parts []string
	for utf8.RuneCountInString(s) > maxSize {
		end := 0
		for n := 0; n < maxSize; n++ {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
		}
		parts = append(parts, s[:end])
		s = s[end:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
