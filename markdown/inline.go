package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	codeSpanRe    = regexp.MustCompile("`([^`]+)`")
	linkRe        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	strongRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emRe          = regexp.MustCompile(`\*(.+?)\*`)
	placeholderRe = regexp.MustCompile("\x00([0-9]+)\x00")
)

// inliner applies the inline transforms to a single line of prose.
type inliner struct {
	escape bool
}

// render runs the inline stages in order: code spans, escaping, links,
// strong, em. Code spans and the generated link tags are parked behind
// NUL-delimited placeholders while emphasis runs, so emphasis never reaches
// into code or URLs but may still wrap a whole link.
func (in inliner) render(text string) string {
	var held []string
	hold := func(html string) string {
		held = append(held, html)
		return "\x00" + strconv.Itoa(len(held)-1) + "\x00"
	}
	restore := func(s string) string {
		if len(held) == 0 {
			return s
		}
		return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
			i, err := strconv.Atoi(m[1 : len(m)-1])
			if err != nil || i >= len(held) {
				return m
			}
			return held[i]
		})
	}

	text = codeSpanRe.ReplaceAllStringFunc(text, func(m string) string {
		code := m[1 : len(m)-1]
		if in.escape {
			code = escapeText(code)
		}
		return hold("<code>" + code + "</code>")
	})
	if in.escape {
		text = escapeText(text)
	}
	text = linkRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := linkRe.FindStringSubmatch(m)
		href := restore(sub[2])
		if in.escape {
			href = strings.ReplaceAll(href, `"`, "&quot;")
		}
		return hold(`<a href="`+href+`" target="_blank" rel="noopener">`) + sub[1] + hold("</a>")
	})
	text = strongRe.ReplaceAllString(text, "<strong>${1}</strong>")
	text = emRe.ReplaceAllString(text, "<em>${1}</em>")
	return restore(text)
}
