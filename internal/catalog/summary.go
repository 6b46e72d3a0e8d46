package catalog

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Summary extracts the first paragraph of a markdown document as a
// single plain-text line. Headings, lists and code blocks before the
// first paragraph are skipped.
func Summary(doc string) string {
	source := []byte(doc)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var summary string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.Paragraph); !ok {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		collectText(n, source, &buf)
		summary = strings.Join(strings.Fields(buf.String()), " ")
		return ast.WalkStop, nil
	})
	return summary
}

func collectText(n ast.Node, source []byte, buf *bytes.Buffer) {
	switch t := n.(type) {
	case *ast.Text:
		buf.Write(t.Segment.Value(source))
		if t.SoftLineBreak() || t.HardLineBreak() {
			buf.WriteByte(' ')
		}
	case *ast.String:
		buf.Write(t.Value)
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			collectText(c, source, buf)
		}
	}
}
