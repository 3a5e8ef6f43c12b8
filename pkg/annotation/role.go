// Package annotation implements the tagging role: inline content wrapped in
// a highlighted span that carries class-like tags.
package annotation

import (
	"strings"

	"github.com/athapong/vtt-mcp/pkg/ast"
)

// Options are the declared options of the role
type Options struct {
	// Class is a whitespace separated list of tags
	Class string `json:"class,omitempty"`
}

// HighlightColor is the background of every annotation span
const HighlightColor = "red"

// Run wraps body in a single tagged span. body is not modified.
func Run(opts Options, body []*ast.Node) []*ast.Node {
	span := &ast.Node{
		Type:     ast.TypeSpan,
		Data:     &ast.Data{Tags: SplitTags(opts.Class)},
		Style:    ast.Style{"backgroundColor": HighlightColor},
		Children: body,
	}
	return []*ast.Node{span}
}

// SplitTags splits class on runs of whitespace. Order and duplicates are kept;
// an empty or blank class yields an empty, non-nil slice.
func SplitTags(class string) []string {
	tags := strings.Fields(class)
	if tags == nil {
		return []string{}
	}
	return tags
}
