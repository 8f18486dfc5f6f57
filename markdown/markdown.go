// Package markdown renders lesson and code-task Markdown to HTML.
//
// The accepted grammar is a deliberately small subset: fenced code blocks,
// pipe tables, single-line blockquotes, three heading levels, flat ordered
// and unordered lists, paragraphs, and the inline spans strong, em, code and
// link. Rendering is a two-stage pipeline. A line scanner first splits the
// source into block tokens; inline transforms then run only inside the
// prose-bearing blocks, so fenced code content is never touched by them.
//
// Unrecognized or malformed syntax is never an error: it falls through as
// paragraph text. Rendering the output a second time is not meaningful and
// mangles it.
package markdown

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Options controls how prose is treated.
type Options struct {
	// EscapeProseText HTML-escapes &, < and > in text outside fenced code
	// before inline transforms run. When false, raw HTML in lesson content
	// reaches the output verbatim, which is only safe for trusted authors.
	EscapeProseText bool

	// Sanitize runs the rendered fragment through a user-generated-content
	// policy that keeps everything this package emits and strips the rest.
	Sanitize bool
}

// Renderer converts Markdown to an HTML fragment. A Renderer is immutable
// and safe for concurrent use.
type Renderer struct {
	opts   Options
	inline inliner
	policy *bluemonday.Policy
}

// New creates a Renderer with the given options.
func New(opts Options) *Renderer {
	r := &Renderer{
		opts:   opts,
		inline: inliner{escape: opts.EscapeProseText},
	}
	if opts.Sanitize {
		r.policy = newPolicy()
	}
	return r
}

// Options returns the options the Renderer was created with.
func (r *Renderer) Options() Options { return r.opts }

// Render converts source to HTML. Empty source renders to the empty string,
// meaning there is nothing to display.
func (r *Renderer) Render(source string) string {
	if source == "" {
		return ""
	}
	blocks := parse(normalize(source))
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if html := b.html(r.inline); html != "" {
			parts = append(parts, html)
		}
	}
	out := strings.Join(parts, "\n")
	if r.policy != nil {
		out = r.policy.Sanitize(out)
	}
	return out
}

var defaultRenderer = New(Options{})

// Render converts source to HTML with the default options: prose is emitted
// unescaped and the output is not sanitized.
func Render(source string) string {
	return defaultRenderer.Render(source)
}

// normalize converts line endings to \n and replaces NUL, which the inline
// stage reserves for its placeholders.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\x00", "\uFFFD")
}
