package ast

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Output formats understood by Render
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatText     = "text"
)

// Formats lists the output formats in order of preference
var Formats = []string{FormatJSON, FormatMarkdown, FormatHTML, FormatText}

// Render formats nodes in one of Formats. An empty format means JSON.
func Render(nodes []*Node, format string) (string, error) {
	switch format {
	case "", FormatJSON:
		b, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "failed to encode content")
		}
		return string(b), nil
	case FormatMarkdown:
		return Markdown(nodes)
	case FormatHTML:
		return HTML(nodes), nil
	case FormatText:
		return Text(nodes), nil
	default:
		return "", errors.Errorf("unsupported format %q, use one of %s", format, strings.Join(Formats, ", "))
	}
}

// Diff renders a line-prefixed semantic diff between the plain text of two trees
func Diff(before, after []*Node) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(Text(before), Text(after), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var result strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			result.WriteString("- " + strings.ReplaceAll(diff.Text, "\n", "\n- ") + "\n")
		case diffmatchpatch.DiffInsert:
			result.WriteString("+ " + strings.ReplaceAll(diff.Text, "\n", "\n+ ") + "\n")
		case diffmatchpatch.DiffEqual:
			result.WriteString("  " + strings.ReplaceAll(diff.Text, "\n", "\n  ") + "\n")
		}
	}

	return result.String()
}
