package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/athapong/vtt-mcp/pkg/ast"
	"github.com/athapong/vtt-mcp/pkg/transcript"
)

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func TestLoadDocumentText(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "interview.md",
		"---\nproject: Header\ninterviewee: Jane\n---\n00:01.500 --> 00:03.200\n[Alice]: Hello there\n\nA note.\n")

	doc, err := LoadDocument(path, transcript.Options{Project: "Flag"})
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if doc.ID == "" || doc.Source != path {
		t.Errorf("unexpected document identity: %+v", doc)
	}
	inv := doc.Invocation
	if inv.Name != "vtt" || inv.Arg != path {
		t.Errorf("invocation = %s(%s), want vtt(%s)", inv.Name, inv.Arg, path)
	}
	wantOpts := map[string]interface{}{"project": "Flag", "interviewee": "Jane"}
	if diff := cmp.Diff(wantOpts, inv.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	wantBody := []*ast.Node{
		ast.NewParagraph(ast.NewText("00:01.500 --> 00:03.200\n[Alice]: Hello there")),
		ast.NewParagraph(ast.NewText("A note.")),
	}
	if diff := cmp.Diff(wantBody, inv.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDocumentFormats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		wantName string
		wantBody int
		wantErr  bool
	}{
		{
			name:     "invocation",
			file:     "tag.json",
			content:  `{"name":"tag","options":{"class":"warning"},"body":"careful"}`,
			wantName: "tag",
			wantBody: 1,
		},
		{
			name:     "node array",
			file:     "nodes.json",
			content:  `[{"type":"paragraph","children":[{"type":"text","value":"x"}]}]`,
			wantName: "vtt",
			wantBody: 1,
		},
		{
			name:     "adf",
			file:     "page.json",
			content:  `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"a"}]},{"type":"paragraph","content":[{"type":"text","text":"b"}]}]}`,
			wantName: "vtt",
			wantBody: 2,
		},
		{
			name:     "html",
			file:     "notes.html",
			content:  "<p>00:01.500 --> 00:03.200<br>[Alice]: Hi</p><p>note</p>",
			wantName: "vtt",
			wantBody: 2,
		},
		{name: "broken invocation", file: "bad.json", content: `{"name":3}`, wantErr: true},
		{name: "broken nodes", file: "broken.json", content: `[{"type":`, wantErr: true},
		{name: "unterminated header", file: "open.md", content: "---\nproject: x\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTestFile(t, dir, tt.file, tt.content)
			doc, err := LoadDocument(path, transcript.Options{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadDocument() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if doc.Invocation.Name != tt.wantName {
				t.Errorf("name = %q, want %q", doc.Invocation.Name, tt.wantName)
			}
			if len(doc.Invocation.Body) != tt.wantBody {
				t.Errorf("len(body) = %d, want %d", len(doc.Invocation.Body), tt.wantBody)
			}
		})
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "nope.md"), transcript.Options{}); err == nil {
		t.Error("LoadDocument() succeeded for a missing file")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		source string
		format string
		want   string
	}{
		{source: "in/interview.md", format: "json", want: filepath.Join("out", "interview.out.json")},
		{source: "interview.md", format: "markdown", want: filepath.Join("out", "interview.out.md")},
		{source: "/tmp/page.html", format: "html", want: filepath.Join("out", "page.out.html")},
		{source: "notes", format: "text", want: filepath.Join("out", "notes.out.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := OutputPath("out", tt.source, tt.format); got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformCmdWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	in := createTestFile(t, dir, "interview.md", "00:01.500 --> 00:03.200\n[Alice]: Hello there")
	outDir := filepath.Join(dir, "out")

	cmd := &TransformCmd{Files: []string{in}, Format: "text", OutDir: outDir, BatchSize: 2}
	if err := cmd.Run(quietLogger()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(outDir, "interview.out.txt"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	want := "file: " + in + "\n\n[Alice] Hello there\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
