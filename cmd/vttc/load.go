package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/athapong/vtt-mcp/pkg/adf"
	"github.com/athapong/vtt-mcp/pkg/ast"
	"github.com/athapong/vtt-mcp/pkg/extension"
	"github.com/athapong/vtt-mcp/pkg/pipeline"
	"github.com/athapong/vtt-mcp/pkg/transcript"
)

// LoadDocument reads a file into a pipeline document.
//
// A JSON file with a "name" field is an invocation document. Any other file
// is a transcript: a JSON node array, an ADF document, HTML, or text with
// optional YAML front matter. Transcripts are run through the vtt directive with the file path
// as argument; flag values win over front-matter values.
func LoadDocument(path string, defaults transcript.Options) (*pipeline.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" && gjson.GetBytes(raw, "name").Exists() {
		inv, err := extension.DecodeInvocation(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load invocation %s", path)
		}
		return pipeline.NewDocument(path, inv), nil
	}

	header, body, err := transcript.ParseHeader(string(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read header of %s", path)
	}

	var nodes []*ast.Node
	switch ext {
	case ".json":
		if adf.IsDocument([]byte(body)) {
			var doc *adf.Node
			if doc, err = adf.Decode([]byte(body)); err == nil {
				nodes = adf.ToAST(doc)
			}
			break
		}
		nodes, err = ast.DecodeNodes([]byte(body))
	case ".html", ".htm":
		nodes, err = ast.FromHTML(strings.NewReader(body))
	default:
		nodes = ast.ParagraphsFromText(body)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	inv := extension.Invocation{
		Name:    "vtt",
		Arg:     path,
		Options: extension.TranscriptOptions(defaults.Merge(header)),
		Body:    nodes,
	}
	return pipeline.NewDocument(path, inv), nil
}
