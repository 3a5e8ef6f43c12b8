package ast

import (
	"fmt"
	"html"
	"sort"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/pkg/errors"
)

// HTML renders nodes as an HTML fragment.
// Segment data becomes data-* attributes, tags become the class attribute and
// styles are written inline with sorted, kebab-cased property names.
func HTML(nodes []*Node) string {
	var b strings.Builder
	r := htmlRenderer{b: &b}
	for _, n := range nodes {
		r.node(n)
	}
	return b.String()
}

// Markdown renders nodes as Markdown by converting their HTML form.
// Speaker badges are emphasised and block metadata is listed above the block.
func Markdown(nodes []*Node) (string, error) {
	var b strings.Builder
	r := htmlRenderer{b: &b, markdown: true}
	for _, n := range nodes {
		r.node(n)
	}
	md, err := htmltomarkdown.ConvertString(b.String())
	if err != nil {
		return "", errors.Wrap(err, "failed to convert HTML to Markdown")
	}
	return md, nil
}

type htmlRenderer struct {
	b        *strings.Builder
	markdown bool
}

func (r htmlRenderer) node(n *Node) {
	if n == nil {
		return
	}
	switch n.Type {
	case TypeText:
		r.b.WriteString(strings.ReplaceAll(html.EscapeString(n.Value), "\n", "<br>"))
	case TypeParagraph:
		r.paragraph(n)
	case TypeSpan:
		r.span(n)
	case TypeBlock:
		r.block(n)
	default:
		r.children(n.Children)
	}
}

func (r htmlRenderer) children(nodes []*Node) {
	for _, c := range nodes {
		r.node(c)
	}
}

func (r htmlRenderer) block(n *Node) {
	md := n.Metadata
	if md == nil {
		md = &BlockMetadata{}
	}
	fields := [][2]string{
		{"file", md.File},
		{"project", md.Project},
		{"interviewee", md.Interviewee},
		{"date", md.Date},
	}
	if r.markdown {
		r.b.WriteString("<ul>")
		for _, f := range fields {
			if f[1] != "" {
				fmt.Fprintf(r.b, "<li>%s: <code>%s</code></li>", f[0], html.EscapeString(f[1]))
			}
		}
		r.b.WriteString("</ul>")
		r.children(n.Children)
		return
	}
	r.b.WriteString(`<div class="block"`)
	for _, f := range fields {
		if f[1] != "" {
			fmt.Fprintf(r.b, ` data-%s="%s"`, f[0], html.EscapeString(f[1]))
		}
	}
	r.b.WriteString(">")
	r.children(n.Children)
	r.b.WriteString("</div>")
}

func (r htmlRenderer) paragraph(n *Node) {
	seg, ok := n.Segment()
	if !ok {
		r.b.WriteString("<p>")
		r.children(n.Children)
		r.b.WriteString("</p>")
		return
	}
	fmt.Fprintf(r.b, `<p data-start-time="%s" data-end-time="%s" data-speaker="%s">`,
		html.EscapeString(seg.StartTime), html.EscapeString(seg.EndTime), html.EscapeString(seg.Speaker))
	children := n.Children
	if r.markdown && len(children) > 0 && children[0].Type == TypeSpan {
		r.b.WriteString("<strong>")
		r.children(children[0].Children)
		r.b.WriteString("</strong>: ")
		children = children[1:]
	}
	r.children(children)
	r.b.WriteString("</p>")
}

func (r htmlRenderer) span(n *Node) {
	r.b.WriteString("<span")
	if tags := n.Tags(); len(tags) > 0 {
		fmt.Fprintf(r.b, ` class="%s"`, html.EscapeString(strings.Join(tags, " ")))
	}
	if len(n.Style) > 0 && !r.markdown {
		fmt.Fprintf(r.b, ` style="%s"`, html.EscapeString(n.Style.CSS()))
	}
	r.b.WriteString(">")
	r.children(n.Children)
	r.b.WriteString("</span>")
}

// CSS formats the style as an inline CSS declaration list
func (s Style) CSS() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	decls := make([]string, 0, len(keys))
	for _, k := range keys {
		decls = append(decls, kebab(k)+": "+s[k])
	}
	return strings.Join(decls, "; ")
}

func kebab(name string) string {
	var b strings.Builder
	for i, c := range name {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(c + ('a' - 'A'))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
