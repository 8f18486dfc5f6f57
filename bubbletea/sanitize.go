package bubbletea

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// terminalSafe strips escape sequences and control characters from message
// text before it reaches the terminal. CRLF and lone CR become LF and tabs
// become four spaces so the viewport measures lines correctly.
func terminalSafe(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteString("    ")
		case r < 0x20, r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
