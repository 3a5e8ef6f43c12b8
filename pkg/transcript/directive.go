// Package transcript implements the interview transcript directive.
//
// Every top-level paragraph that opens with a segment marker such as
//
//	00:01.500 --> 00:03.200
//	[Alice]: Hello there
//
// gets the timing and speaker attached as segment data, loses the marker
// text, and gains a speaker badge as its first child. The processed
// paragraphs are wrapped in a single block carrying file and header metadata.
package transcript

import (
	"github.com/athapong/vtt-mcp/pkg/ast"
)

// Options are the declared options of the directive
type Options struct {
	Project     string `json:"project,omitempty" yaml:"project"`
	Interviewee string `json:"interviewee,omitempty" yaml:"interviewee"`
	Date        string `json:"date,omitempty" yaml:"date"`
}

// Merge returns o with empty fields filled from defaults
func (o Options) Merge(defaults Options) Options {
	if o.Project == "" {
		o.Project = defaults.Project
	}
	if o.Interviewee == "" {
		o.Interviewee = defaults.Interviewee
	}
	if o.Date == "" {
		o.Date = defaults.Date
	}
	return o
}

// Stats counts what a single run did
type Stats struct {
	Paragraphs int // top-level paragraphs inspected
	Segments   int // paragraphs rewritten as segments
	Skipped    int // paragraphs left untouched
}

// badgeStyle renders the speaker as a small round label floated before the text
var badgeStyle = ast.Style{
	"backgroundColor": "blue",
	"display":         "inline-block",
	"borderRadius":    "4px",
	"width":           "25px",
	"height":          "25px",
	"textAlign":       "center",
	"fontSize":        "0.5em",
	"fontWeight":      "bold",
	"color":           "white",
	"marginRight":     "0.5em",
	"float":           "left",
}

// Run applies the directive to body and returns the single wrapping block.
// filePath is carried as metadata only.
func Run(filePath string, opts Options, body []*ast.Node) []*ast.Node {
	out, _ := Apply(filePath, opts, body)
	return out
}

// Apply is Run with statistics.
// The caller's nodes are never modified: rewritten paragraphs are copies,
// all other nodes are shared with the output.
func Apply(filePath string, opts Options, body []*ast.Node) ([]*ast.Node, Stats) {
	var stats Stats
	children := make([]*ast.Node, len(body))
	for i, node := range body {
		children[i] = node
		if node == nil || node.Type != ast.TypeParagraph {
			continue
		}
		stats.Paragraphs++
		if p, ok := rewriteParagraph(node); ok {
			children[i] = p
			stats.Segments++
			continue
		}
		stats.Skipped++
	}

	block := &ast.Node{
		Type: ast.TypeBlock,
		Metadata: &ast.BlockMetadata{
			File:        filePath,
			Project:     opts.Project,
			Interviewee: opts.Interviewee,
			Date:        opts.Date,
		},
		Children: children,
	}
	return []*ast.Node{block}, stats
}

func rewriteParagraph(p *ast.Node) (*ast.Node, bool) {
	first := p.FirstChild()
	if first == nil || first.Type != ast.TypeText {
		return nil, false
	}
	seg, rest, ok := MatchMarker(first.Value)
	if !ok {
		return nil, false
	}

	text := *first
	text.Value = rest

	out := *p
	out.Data = &ast.Data{Segment: &seg}
	out.Children = make([]*ast.Node, 0, len(p.Children)+1)
	out.Children = append(out.Children, Badge(seg.Speaker), &text)
	out.Children = append(out.Children, p.Children[1:]...)
	return &out, true
}

// Badge builds the inline speaker label placed in front of a segment
func Badge(speaker string) *ast.Node {
	style := make(ast.Style, len(badgeStyle))
	for k, v := range badgeStyle {
		style[k] = v
	}
	badge := ast.NewSpan(ast.NewText(speaker))
	badge.Style = style
	return badge
}
