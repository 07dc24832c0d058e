package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Span is a run of text sharing one inline style
type Span struct {
	Text   string
	Strong bool
	Emph   bool
	Code   bool
	Link   string
}

func (s Span) sameStyle(o Span) bool {
	return s.Strong == o.Strong && s.Emph == o.Emph && s.Code == o.Code && s.Link == o.Link
}

var markdown = goldmark.New()

// Inline parses CommonMark inline markup into styled spans. Block structure
// is flattened: separate blocks and line breaks become single spaces.
func Inline(s string) []Span {
	src := []byte(s)
	doc := markdown.Parser().Parse(text.NewReader(src))

	var (
		spans              []Span
		strong, emph, code int
		link               string
	)
	push := func(t string) {
		if t == "" {
			return
		}
		sp := Span{Text: t, Strong: strong > 0, Emph: emph > 0, Code: code > 0, Link: link}
		if n := len(spans); n > 0 && spans[n-1].sameStyle(sp) {
			spans[n-1].Text += t
			return
		}
		spans = append(spans, sp)
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Type() == ast.TypeBlock && n.PreviousSibling() != nil {
			push(" ")
		}
		switch node := n.(type) {
		case *ast.Emphasis:
			d := 1
			if !entering {
				d = -1
			}
			if node.Level >= 2 {
				strong += d
			} else {
				emph += d
			}
		case *ast.CodeSpan:
			if entering {
				code++
			} else {
				code--
			}
		case *ast.Link:
			if entering {
				link = string(node.Destination)
			} else {
				link = ""
			}
		case *ast.AutoLink:
			if entering {
				link = string(node.URL(src))
				push(string(node.Label(src)))
				link = ""
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				push(string(node.Segment.Value(src)))
				if node.SoftLineBreak() || node.HardLineBreak() {
					push(" ")
				}
			}
		case *ast.String:
			if entering {
				push(string(node.Value))
			}
		}
		return ast.WalkContinue, nil
	})
	return spans
}

// Plain returns text with inline markup removed
func Plain(s string) string {
	var b strings.Builder
	for _, sp := range Inline(s) {
		b.WriteString(sp.Text)
	}
	return b.String()
}
