package ast

import (
	"strings"
)

// Text renders nodes as plain text.
// Speaker badges are written as "[speaker] " in front of the paragraph text.
func Text(nodes []*Node) string {
	var result strings.Builder
	for _, node := range nodes {
		convertNode(node, &result)
	}
	return strings.TrimRight(result.String(), "\n") + "\n"
}

func convertNode(node *Node, result *strings.Builder) {
	if node == nil {
		return
	}
	switch node.Type {
	case TypeBlock:
		convertBlock(node, result)
	case TypeParagraph:
		convertParagraph(node, result)
	case TypeText:
		result.WriteString(node.Value)
	default:
		convertChildren(node, result)
	}
}

func convertBlock(node *Node, result *strings.Builder) {
	if md := node.Metadata; md != nil {
		header := []string{}
		for _, kv := range [][2]string{
			{"file", md.File},
			{"project", md.Project},
			{"interviewee", md.Interviewee},
			{"date", md.Date},
		} {
			if kv[1] != "" {
				header = append(header, kv[0]+": "+kv[1])
			}
		}
		if len(header) > 0 {
			result.WriteString(strings.Join(header, "\n"))
			result.WriteString("\n\n")
		}
	}
	convertChildren(node, result)
}

func convertParagraph(node *Node, result *strings.Builder) {
	children := node.Children
	if _, ok := node.Segment(); ok && len(children) > 0 && children[0].Type == TypeSpan {
		result.WriteString("[")
		convertChildren(children[0], result)
		result.WriteString("] ")
		children = children[1:]
	}
	for _, child := range children {
		convertNode(child, result)
	}
	result.WriteString("\n\n")
}

func convertChildren(node *Node, result *strings.Builder) {
	for _, child := range node.Children {
		convertNode(child, result)
	}
}
