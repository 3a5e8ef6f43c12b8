// Command vttc runs the transcript and annotation extensions over files.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/athapong/vtt-mcp/pkg/ast"
	"github.com/athapong/vtt-mcp/pkg/extension"
	"github.com/athapong/vtt-mcp/pkg/pipeline"
	"github.com/athapong/vtt-mcp/pkg/transcript"
)

// CLI defines the command-line interface for vttc.
var CLI struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Logging level (debug, info, warn, error)"`

	Transform  TransformCmd  `cmd:"" help:"Run invocation files or transcript files through the extensions"`
	Extensions ExtensionsCmd `cmd:"" help:"List registered extensions"`
}

// TransformCmd runs every input file through the pipeline.
type TransformCmd struct {
	Files       []string `arg:"" type:"existingfile" help:"Invocation JSON files, or transcript text, markdown or HTML files"`
	Format      string   `default:"json" enum:"json,markdown,html,text" help:"Output format"`
	OutDir      string   `name:"out-dir" type:"path" help:"Write one output file per input instead of printing"`
	Diff        bool     `help:"Print the text diff between input and output"`
	BatchSize   int      `name:"batch-size" default:"10" help:"Number of files processed concurrently"`
	Project     string   `help:"Project name for transcript files"`
	Interviewee string   `help:"Interviewee name for transcript files"`
	Date        string   `help:"Interview date for transcript files"`
}

func (c *TransformCmd) Run(logger *logrus.Logger) error {
	defaults := transcript.Options{
		Project:     c.Project,
		Interviewee: c.Interviewee,
		Date:        c.Date,
	}

	docs := make([]*pipeline.Document, 0, len(c.Files))
	for _, file := range c.Files {
		doc, err := LoadDocument(file, defaults)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	p := pipeline.NewPipeline(extension.Default(), logger)
	p.SetBatchSize(c.BatchSize)
	batchErr := p.BatchProcess(context.Background(), docs)

	if c.OutDir != "" {
		if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, doc := range docs {
		if doc.Err != nil {
			logger.WithError(doc.Err).WithField("source", doc.Source).Error("Skipping failed document")
			continue
		}
		out, err := ast.Render(doc.Output, c.Format)
		if err != nil {
			return err
		}
		if c.Diff {
			out += "\n--- diff ---\n" + ast.Diff(doc.Invocation.Body, doc.Output)
		}

		if c.OutDir == "" {
			fmt.Println(out)
			continue
		}
		target := OutputPath(c.OutDir, doc.Source, c.Format)
		if err := os.WriteFile(target, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		logger.WithFields(logrus.Fields{
			"source":   doc.Source,
			"output":   target,
			"counters": doc.Counters,
		}).Info("Wrote output")
	}
	return batchErr
}

// ExtensionsCmd prints the extension catalog.
type ExtensionsCmd struct{}

func (c *ExtensionsCmd) Run() error {
	body, err := json.MarshalIndent(extension.Default().Specs(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(body))
	return nil
}

// OutputPath names the output file for source inside dir
func OutputPath(dir, source, format string) string {
	ext := map[string]string{
		ast.FormatJSON:     ".json",
		ast.FormatMarkdown: ".md",
		ast.FormatHTML:     ".html",
		ast.FormatText:     ".txt",
	}[format]
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(dir, base+".out"+ext)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("vttc"),
		kong.Description("Transform interview transcripts and annotations into content trees."),
		kong.UsageOnError(),
	)

	logger := logrus.New()
	level, err := logrus.ParseLevel(CLI.LogLevel)
	if err != nil {
		logger.Fatalf("Invalid log level: %v", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ctx.FatalIfErrorf(ctx.Run(logger))
}
