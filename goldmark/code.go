package goldmark

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	codeFormatter = "terminal16"
	codeStyle     = "monokai"
)

// writeCode writes a code block behind a muted gutter. Blocks with a known
// language are highlighted; anything chroma cannot lex is written as is.
func (r *ansiRenderer) writeCode(buf *bytes.Buffer, lang, code string) {
	code = strings.TrimRight(code, "\n")
	if lang != "" {
		var hl bytes.Buffer
		if err := quick.Highlight(&hl, code, lang, codeFormatter, codeStyle); err == nil {
			code = strings.TrimRight(hl.String(), "\n")
		}
	}
	gutter := r.muted.Render("│") + " "
	for _, line := range strings.Split(code, "\n") {
		buf.WriteString(gutter + line + "\n")
	}
}
