package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func RegisterInterviewPrompts(s *server.MCPServer) {
	prompt := mcp.NewPrompt("interview_summary",
		mcp.WithPromptDescription("Summarize an interview transcript by speaker"),
		mcp.WithArgument("path", mcp.ArgumentDescription("Path of the interview file"), mcp.RequiredArgument()),
		mcp.WithArgument("speaker", mcp.ArgumentDescription("Only summarize what this speaker said")),
	)
	s.AddPrompt(prompt, interviewSummaryHandler)
}

func interviewSummaryHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	path := request.Params.Arguments["path"]
	speaker := request.Params.Arguments["speaker"]

	focus := "each speaker"
	if speaker != "" {
		focus = fmt.Sprintf("the speaker %q", speaker)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Summary of interview %s", path),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf("Read the interview transcript at %s, run the vtt tool on it with path %q and format \"json\", "+
						"then summarize what %s said, citing the startTime of each segment you rely on.", path, path, focus),
				},
			},
		},
	}, nil
}
