package adf

import (
	"strings"

	"github.com/athapong/vtt-mcp/pkg/ast"
)

// ToAST converts an ADF document into content nodes.
// Paragraphs keep their inline text (hard breaks become newlines) so that a
// transcript pasted into Confluence or Jira can be fed to the directives.
// Headings, list items, quotes and panels are flattened into paragraphs.
func ToAST(node *Node) []*ast.Node {
	if node == nil {
		return []*ast.Node{}
	}

	result := []*ast.Node{}
	convertNode(node, &result)
	return result
}

func convertNode(node *Node, result *[]*ast.Node) {
	switch node.Type {
	case "paragraph", "heading":
		convertParagraph(node, result)
	case "codeBlock":
		convertCodeBlock(node, result)
	case "rule", "mediaSingle", "media":
		// no textual content
	default:
		convertChildren(node, result)
	}
}

func convertParagraph(node *Node, result *[]*ast.Node) {
	var text strings.Builder
	convertInline(node, &text)
	if text.Len() == 0 {
		return
	}
	*result = append(*result, ast.NewParagraph(ast.NewText(text.String())))
}

func convertCodeBlock(node *Node, result *[]*ast.Node) {
	var text strings.Builder
	convertInline(node, &text)
	*result = append(*result, ast.ParagraphsFromText(text.String())...)
}

func convertInline(node *Node, text *strings.Builder) {
	for _, child := range node.Content {
		switch child.Type {
		case "text":
			text.WriteString(child.Text)
		case "hardBreak":
			text.WriteString("\n")
		case "mention":
			if label, ok := child.Attrs["text"].(string); ok {
				text.WriteString(label)
			}
		default:
			convertInline(child, text)
		}
	}
}

func convertChildren(node *Node, result *[]*ast.Node) {
	for _, child := range node.Content {
		convertNode(child, result)
	}
}
