package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/athapong/vtt-mcp/pkg/ast"
	"github.com/athapong/vtt-mcp/pkg/extension"
)

// quietLogger discards pipeline logs in tests
func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type countingInvoker struct {
	calls atomic.Int32
	fail  string
}

func (c *countingInvoker) Invoke(ctx context.Context, inv extension.Invocation) (extension.Result, error) {
	c.calls.Add(1)
	if inv.Arg == c.fail {
		return extension.Result{}, errors.New("boom")
	}
	return extension.Result{Nodes: inv.Body, Counters: map[string]int{"seen": 1}}, nil
}

func makeDocs(n int) []*Document {
	docs := make([]*Document, n)
	for i := range docs {
		docs[i] = NewDocument(fmt.Sprintf("doc-%d.md", i), extension.Invocation{
			Name: "vtt",
			Arg:  fmt.Sprintf("doc-%d.md", i),
			Body: []*ast.Node{ast.NewParagraph(ast.NewText("x"))},
		})
	}
	return docs
}

func TestBatchProcess(t *testing.T) {
	invoker := &countingInvoker{}
	p := NewPipeline(invoker, quietLogger())
	p.SetBatchSize(4)

	docs := makeDocs(10)
	if err := p.BatchProcess(context.Background(), docs); err != nil {
		t.Fatalf("BatchProcess() error = %v", err)
	}

	if got := invoker.calls.Load(); got != 10 {
		t.Errorf("invoker called %d times, want 10", got)
	}
	ids := map[string]bool{}
	for _, doc := range docs {
		if doc.Err != nil || len(doc.Output) != 1 || doc.Counters["seen"] != 1 {
			t.Errorf("document %s not processed: %+v", doc.Source, doc)
		}
		if ids[doc.ID] {
			t.Errorf("duplicate document ID %s", doc.ID)
		}
		ids[doc.ID] = true
	}
}

func TestBatchProcessRecordsFailures(t *testing.T) {
	invoker := &countingInvoker{fail: "doc-2.md"}
	p := NewPipeline(invoker, quietLogger())

	docs := makeDocs(5)
	err := p.BatchProcess(context.Background(), docs)
	if err == nil {
		t.Fatal("BatchProcess() succeeded, want error")
	}
	if !strings.Contains(err.Error(), "1 of 5") {
		t.Errorf("error = %q, want failure count", err)
	}
	if invoker.calls.Load() != 5 {
		t.Errorf("invoker called %d times, want every document attempted", invoker.calls.Load())
	}
	for _, doc := range docs {
		failed := doc.Source == "doc-2.md"
		if (doc.Err != nil) != failed {
			t.Errorf("%s: Err = %v", doc.Source, doc.Err)
		}
	}
}

func TestBatchProcessCancelled(t *testing.T) {
	invoker := &countingInvoker{}
	p := NewPipeline(invoker, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.BatchProcess(ctx, makeDocs(3)); !errors.Is(err, context.Canceled) {
		t.Errorf("BatchProcess() error = %v, want context.Canceled", err)
	}
	if invoker.calls.Load() != 0 {
		t.Errorf("invoker called %d times after cancellation", invoker.calls.Load())
	}
}

func TestProcessWithRegistry(t *testing.T) {
	p := NewPipeline(extension.Default(), quietLogger())
	doc := NewDocument("interview.md", extension.Invocation{
		Name: "vtt",
		Arg:  "interview.md",
		Body: []*ast.Node{ast.NewParagraph(ast.NewText("00:01.500 --> 00:03.200\n[Alice]: Hello there"))},
	})

	if err := p.Process(context.Background(), doc); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if doc.Counters[extension.CounterSegments] != 1 {
		t.Errorf("segments = %d, want 1", doc.Counters[extension.CounterSegments])
	}
	seg, ok := doc.Output[0].Children[0].Segment()
	if !ok || seg.Speaker != "Alice" {
		t.Errorf("segment = %+v, %v", seg, ok)
	}

	if err := p.Process(context.Background(), nil); err == nil {
		t.Error("Process(nil) succeeded, want error")
	}
}
