package chat_test

import (
	"testing"

	"github.com/fwojciec/lessonmark/chat"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []chat.Segment
	}{
		{"empty", "", nil},
		{"plain", "hello", []chat.Segment{{Kind: chat.Text, Text: "hello"}}},
		{
			"bold and code",
			"Use `x=1` then **done**",
			[]chat.Segment{
				{Kind: chat.Text, Text: "Use "},
				{Kind: chat.Code, Text: "x=1"},
				{Kind: chat.Text, Text: " then "},
				{Kind: chat.Bold, Text: "done"},
			},
		},
		{
			"line breaks",
			"a\nb",
			[]chat.Segment{
				{Kind: chat.Text, Text: "a"},
				{Kind: chat.LineBreak},
				{Kind: chat.Text, Text: "b"},
			},
		},
		{
			"fenced block with language",
			"see\n```go\nfmt.Println()\n```",
			[]chat.Segment{
				{Kind: chat.Text, Text: "see"},
				{Kind: chat.LineBreak},
				{Kind: chat.CodeBlock, Text: "fmt.Println()\n"},
			},
		},
		{
			"fenced block on one line",
			"``` x```",
			[]chat.Segment{{Kind: chat.CodeBlock, Text: " x"}},
		},
		{
			"one line fence drops its language word",
			"```py print(1)```",
			[]chat.Segment{{Kind: chat.CodeBlock, Text: " print(1)"}},
		},
		{
			"word right after a one line fence is a language tag",
			"```x```",
			[]chat.Segment{{Kind: chat.CodeBlock, Text: ""}},
		},
		{
			"text after fence keeps its line break",
			"```\nx\n```\nafter",
			[]chat.Segment{
				{Kind: chat.CodeBlock, Text: "x\n"},
				{Kind: chat.LineBreak},
				{Kind: chat.Text, Text: "after"},
			},
		},
		{
			"unterminated fence is text",
			"```py",
			[]chat.Segment{{Kind: chat.Text, Text: "```py"}},
		},
		{
			"bold cannot contain asterisks",
			"**a*b**",
			[]chat.Segment{{Kind: chat.Text, Text: "**a*b**"}},
		},
		{
			"markup inside code is literal",
			"`**x**`",
			[]chat.Segment{{Kind: chat.Code, Text: "**x**"}},
		},
		{
			"lone markers are text",
			"** and `",
			[]chat.Segment{{Kind: chat.Text, Text: "** and `"}},
		},
		{
			"headings are not recognized",
			"# title",
			[]chat.Segment{{Kind: chat.Text, Text: "# title"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, chat.Parse(tt.input))
		})
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"inline", "Use `x=1` then **done**", "Use <code>x=1</code> then <strong>done</strong>"},
		{"line break", "a\nb", "a<br>b"},
		{"code block", "```js\nlet a = 1;\n```", "<pre><code>let a = 1;\n</code></pre>"},
		{"escapes text", "<b>hi</b> & bye", "&lt;b&gt;hi&lt;/b&gt; &amp; bye"},
		{"escapes code", "`<div>`", "<code>&lt;div&gt;</code>"},
		{"one line tagged code block", "```py print(1)```", "<pre><code> print(1)</code></pre>"},
		{"escapes code block", "```\n<script>\n```", "<pre><code>&lt;script&gt;\n</code></pre>"},
		{"links are not recognized", "[a](b)", "[a](b)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, chat.HTML(tt.input))
		})
	}
}

func TestHTML_NoParagraphWrapper(t *testing.T) {
	t.Parallel()

	out := chat.HTML("Use `x=1` then **done**")

	assert.Contains(t, out, "<code>x=1</code>")
	assert.Contains(t, out, "<strong>done</strong>")
	assert.NotContains(t, out, "<p>")
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bold", chat.Bold.String())
	assert.Equal(t, "code_block", chat.CodeBlock.String())
	assert.Equal(t, "unknown", chat.Kind(99).String())
}
