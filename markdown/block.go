package markdown

import (
	"regexp"
	"strings"
)

var (
	fenceOpenRe    = regexp.MustCompile("^```([\\w+#-]*)[ \\t]*$")
	tableRowRe     = regexp.MustCompile(`^\|.+\|\s*$`)
	tableSepRe     = regexp.MustCompile(`^\|[-:| \t]+\|\s*$`)
	unorderedRe    = regexp.MustCompile(`^\s*[-*] (.+)$`)
	orderedRe      = regexp.MustCompile(`^\s*\d+\. (.+)$`)
	rawHTMLStartRe = regexp.MustCompile(`^(<[a-z]|</)`)
)

// parse scans lines once and groups them into blocks. At each line the
// constructs are tried in a fixed order: fence, table, blockquote, heading,
// list, paragraph.
func parse(source string) []block {
	lines := strings.Split(source, "\n")
	var blocks []block
	for i := 0; i < len(lines); {
		line := lines[i]
		if isBlank(line) {
			i++
			continue
		}
		if b, next, ok := parseFence(lines, i); ok {
			blocks = append(blocks, b)
			i = next
			continue
		}
		if b, next, ok := parseTable(lines, i); ok {
			blocks = append(blocks, b)
			i = next
			continue
		}
		if b, ok := parseBlockquote(line); ok {
			blocks = append(blocks, b)
			i++
			continue
		}
		if b, ok := parseHeading(line); ok {
			blocks = append(blocks, b)
			i++
			continue
		}
		if b, next, ok := parseList(lines, i); ok {
			blocks = append(blocks, b)
			i = next
			continue
		}
		blocks = append(blocks, paragraph{text: line})
		i++
	}
	return blocks
}

// parseFence recognizes a ``` line with an optional language tag and
// consumes everything up to the next ```, which may sit anywhere on a later
// line. Text after the closing fence is scanned again as its own line. An
// unterminated fence is not a code block.
func parseFence(lines []string, start int) (codeBlock, int, bool) {
	m := fenceOpenRe.FindStringSubmatch(lines[start])
	if m == nil {
		return codeBlock{}, start, false
	}
	for j := start + 1; j < len(lines); j++ {
		idx := strings.Index(lines[j], "```")
		if idx < 0 {
			continue
		}
		body := append(append([]string{}, lines[start+1:j]...), lines[j][:idx])
		b := codeBlock{
			lang: m[1],
			code: strings.TrimSpace(strings.Join(body, "\n")),
		}
		if rest := lines[j][idx+3:]; !isBlank(rest) {
			lines[j] = rest
			return b, j, true
		}
		return b, j + 1, true
	}
	return codeBlock{}, start, false
}

// parseTable recognizes a header row, a separator row and the contiguous
// data rows after them.
func parseTable(lines []string, start int) (table, int, bool) {
	if start+1 >= len(lines) {
		return table{}, start, false
	}
	if !tableRowRe.MatchString(lines[start]) || !tableSepRe.MatchString(lines[start+1]) {
		return table{}, start, false
	}
	t := table{header: splitRow(lines[start])}
	i := start + 2
	for i < len(lines) && tableRowRe.MatchString(lines[i]) {
		t.rows = append(t.rows, splitRow(lines[i]))
		i++
	}
	return t, i, true
}

// splitRow splits a |-delimited row into trimmed cells. Only the empty cells
// produced by the outer pipes are discarded.
func splitRow(line string) []string {
	line = strings.TrimRightFunc(line, isSpace)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func parseBlockquote(line string) (blockquote, bool) {
	rest, ok := strings.CutPrefix(line, "> ")
	if !ok || rest == "" {
		return blockquote{}, false
	}
	return blockquote{text: rest}, true
}

// parseHeading checks the longest marker first so that "### x" never
// becomes a level one heading.
func parseHeading(line string) (heading, bool) {
	for level := 3; level >= 1; level-- {
		marker := strings.Repeat("#", level) + " "
		if rest, ok := strings.CutPrefix(line, marker); ok && rest != "" {
			return heading{level: level, text: rest}, true
		}
	}
	return heading{}, false
}

// parseList collects consecutive items of one kind. Blank lines between
// items do not end the list; an item of the other kind does.
func parseList(lines []string, start int) (list, int, bool) {
	first, ordered, ok := parseListItem(lines[start])
	if !ok {
		return list{}, start, false
	}
	l := list{ordered: ordered, items: []string{first}}
	i := start + 1
	for i < len(lines) {
		j := i
		for j < len(lines) && isBlank(lines[j]) {
			j++
		}
		if j == len(lines) {
			break
		}
		item, itemOrdered, ok := parseListItem(lines[j])
		if !ok || itemOrdered != ordered {
			break
		}
		l.items = append(l.items, item)
		i = j + 1
	}
	return l, i, true
}

func parseListItem(line string) (text string, ordered bool, ok bool) {
	if m := unorderedRe.FindStringSubmatch(line); m != nil {
		return m[1], false, true
	}
	if m := orderedRe.FindStringSubmatch(line); m != nil {
		return m[1], true, true
	}
	return "", false, false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
