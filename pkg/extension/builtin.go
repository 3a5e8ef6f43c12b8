package extension

import (
	"github.com/athapong/vtt-mcp/pkg/annotation"
	"github.com/athapong/vtt-mcp/pkg/transcript"
)

// Counter names reported in Result.Counters
const (
	CounterParagraphs = "paragraphs"
	CounterSegments   = "segments"
	CounterSkipped    = "skipped"
	CounterTags       = "tags"
)

// TranscriptDirective exposes transcript.Run as the "vtt" directive
type TranscriptDirective struct{}

func (TranscriptDirective) Spec() Spec {
	return Spec{
		Name:    "vtt",
		Aliases: []string{"interview"},
		Kind:    KindDirective,
		Doc:     "A directive for parsing VTT-formatted interview transcripts with metadata and speaker segments.",
		Arg: &ArgSpec{
			Type:     "string",
			Doc:      "The path to the interview file, e.g. interview.md",
			Required: true,
		},
		Options: map[string]OptionSpec{
			"project":     {Type: "string", Doc: "Project name."},
			"interviewee": {Type: "string", Doc: "Interviewee name."},
			"date":        {Type: "string", Doc: "Date of the interview."},
		},
		Body: BodySpec{Type: "myst", Required: true},
	}
}

func (TranscriptDirective) Run(inv Invocation) Result {
	opts := transcript.Options{
		Project:     stringOption(inv, "project"),
		Interviewee: stringOption(inv, "interviewee"),
		Date:        stringOption(inv, "date"),
	}
	nodes, stats := transcript.Apply(inv.Arg, opts, inv.Body)
	return Result{
		Nodes: nodes,
		Counters: map[string]int{
			CounterParagraphs: stats.Paragraphs,
			CounterSegments:   stats.Segments,
			CounterSkipped:    stats.Skipped,
		},
	}
}

// AnnotationRole exposes annotation.Run as the "annotation" role
type AnnotationRole struct{}

func (AnnotationRole) Spec() Spec {
	return Spec{
		Name:    "annotation",
		Aliases: []string{"tag"},
		Kind:    KindRole,
		Doc:     "A role annotating text with a class.",
		Options: map[string]OptionSpec{
			"class": {Type: "string", Doc: "Classes to apply to the annotation."},
		},
		Body: BodySpec{Type: "myst", Required: true},
	}
}

func (AnnotationRole) Run(inv Invocation) Result {
	nodes := annotation.Run(annotation.Options{Class: stringOption(inv, "class")}, inv.Body)
	return Result{
		Nodes:    nodes,
		Counters: map[string]int{CounterTags: len(nodes[0].Tags())},
	}
}

// TranscriptOptions converts typed directive options into invocation
// options, leaving out empty fields
func TranscriptOptions(opts transcript.Options) map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range map[string]string{
		"project":     opts.Project,
		"interviewee": opts.Interviewee,
		"date":        opts.Date,
	} {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
