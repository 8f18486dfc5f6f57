// Package chat formats chat bubble text.
//
// The grammar is intentionally narrower than lesson Markdown: fenced code
// blocks, **bold**, `inline code` and line breaks. There are no links,
// headings, lists or tables, and nothing in a message can produce markup
// other than those four elements.
package chat

import (
	"regexp"
	"strings"
)

// Kind identifies what a Segment represents.
type Kind int

const (
	Text Kind = iota
	Bold
	Code
	CodeBlock
	LineBreak
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Bold:
		return "bold"
	case Code:
		return "code"
	case CodeBlock:
		return "code_block"
	case LineBreak:
		return "line_break"
	}
	return "unknown"
}

// Segment is a run of message text with a single presentation.
// Text is empty for LineBreak.
type Segment struct {
	Kind Kind
	Text string
}

var (
	fenceRe     = regexp.MustCompile("(?s)```.*?```")
	fenceLangRe = regexp.MustCompile("^```\\w*\n?")
	inlineRe    = regexp.MustCompile("\\*\\*[^*]+\\*\\*|`[^`]+`")
)

// Parse splits a message into segments. Fenced blocks are cut out first,
// non-greedily and across lines; the remaining text is split on newlines
// and each line is scanned once for bold and inline code.
func Parse(text string) []Segment {
	if text == "" {
		return nil
	}
	var segs []Segment
	last := 0
	for _, loc := range fenceRe.FindAllStringIndex(text, -1) {
		segs = appendLines(segs, text[last:loc[0]])
		segs = append(segs, Segment{Kind: CodeBlock, Text: stripFence(text[loc[0]:loc[1]])})
		last = loc[1]
	}
	return appendLines(segs, text[last:])
}

// stripFence removes the fence markers. A word directly after the opening
// fence is a language tag and is discarded, as is one newline after it.
func stripFence(block string) string {
	block = fenceLangRe.ReplaceAllString(block, "")
	return strings.TrimSuffix(block, "```")
}

func appendLines(segs []Segment, s string) []Segment {
	if s == "" {
		return segs
	}
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			segs = append(segs, Segment{Kind: LineBreak})
		}
		segs = appendInline(segs, line)
	}
	return segs
}

func appendInline(segs []Segment, line string) []Segment {
	last := 0
	for _, loc := range inlineRe.FindAllStringIndex(line, -1) {
		if loc[0] > last {
			segs = append(segs, Segment{Kind: Text, Text: line[last:loc[0]]})
		}
		m := line[loc[0]:loc[1]]
		if strings.HasPrefix(m, "**") {
			segs = append(segs, Segment{Kind: Bold, Text: m[2 : len(m)-2]})
		} else {
			segs = append(segs, Segment{Kind: Code, Text: m[1 : len(m)-1]})
		}
		last = loc[1]
	}
	if last < len(line) {
		segs = append(segs, Segment{Kind: Text, Text: line[last:]})
	}
	return segs
}
