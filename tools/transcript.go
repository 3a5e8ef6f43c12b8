package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/athapong/vtt-mcp/pkg/adf"
	"github.com/athapong/vtt-mcp/pkg/ast"
	"github.com/athapong/vtt-mcp/pkg/extension"
	"github.com/athapong/vtt-mcp/pkg/transcript"
	"github.com/athapong/vtt-mcp/services"
	"github.com/athapong/vtt-mcp/util"
)

const bodyDescription = "Content to transform: a JSON node array, an HTML fragment, or plain text with paragraphs separated by blank lines"

// RegisterTranscriptTool registers the transcript directive under its name and aliases
func RegisterTranscriptTool(s *server.MCPServer) {
	spec := extension.TranscriptDirective{}.Spec()
	for _, name := range spec.Names() {
		tool := mcp.NewTool(name,
			mcp.WithDescription(spec.Doc+" Paragraphs starting with \"MM:SS.mmm --> MM:SS.mmm\" followed by a \"[speaker]:\" line become speaker segments."),
			mcp.WithString("path", mcp.Required(), mcp.Description(spec.Arg.Doc)),
			mcp.WithString("project", mcp.Description(spec.Options["project"].Doc)),
			mcp.WithString("interviewee", mcp.Description(spec.Options["interviewee"].Doc)),
			mcp.WithString("date", mcp.Description(spec.Options["date"].Doc)),
			mcp.WithString("body", mcp.Required(), mcp.Description(bodyDescription+"; text may start with a YAML front matter header holding project, interviewee and date")),
			withFormat(),
			mcp.WithBoolean("diff", mcp.Description("Append a diff between the input and output text")),
		)
		s.AddTool(tool, util.ErrorGuard(transcriptHandler))
	}
}

func transcriptHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := request.RequireString("body")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	header, rest, err := transcript.ParseHeader(body)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid header: %v", err)), nil
	}
	nodes, err := decodeBody(rest)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid body: %v", err)), nil
	}

	opts := transcript.Options{
		Project:     request.GetString("project", ""),
		Interviewee: request.GetString("interviewee", ""),
		Date:        request.GetString("date", ""),
	}.Merge(header)

	inv := extension.Invocation{
		Name:    request.Params.Name,
		Arg:     path,
		Options: extension.TranscriptOptions(opts),
		Body:    nodes,
	}
	if inv.Name == "" {
		inv.Name = "vtt"
	}

	result, err := invoke(ctx, inv)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return renderResult(nodes, result.Nodes, request.GetString("format", ast.FormatJSON), request.GetBool("diff", false))
}

func invoke(ctx context.Context, inv extension.Invocation) (extension.Result, error) {
	log := services.Logger().WithFields(logrus.Fields{
		"invocation_id": uuid.New().String(),
		"extension":     inv.Name,
	})

	result, err := extension.Default().Invoke(ctx, inv)
	if err != nil {
		log.WithError(err).Warn("Invocation rejected")
		return extension.Result{}, err
	}
	log.WithField("counters", result.Counters).Debug("Invocation completed")
	return result, nil
}

// decodeBody reads a directive body, accepting ADF documents besides the
// formats understood by ast.DecodeBody
func decodeBody(body string) ([]*ast.Node, error) {
	if trimmed := strings.TrimSpace(body); adf.IsDocument([]byte(trimmed)) {
		doc, err := adf.Decode([]byte(trimmed))
		if err != nil {
			return nil, err
		}
		return adf.ToAST(doc), nil
	}
	return ast.DecodeBody(body)
}
