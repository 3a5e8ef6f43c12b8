package extension

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/athapong/vtt-mcp/pkg/ast"
	"github.com/athapong/vtt-mcp/pkg/transcript"
)

func TestDecodeInvocation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Invocation
		wantErr bool
	}{
		{
			name: "node body",
			raw:  `{"name":"vtt","arg":"a.md","options":{"project":"Atlas"},"body":[{"type":"paragraph","children":[{"type":"text","value":"x"}]}]}`,
			want: Invocation{
				Name:    "vtt",
				Arg:     "a.md",
				Options: map[string]interface{}{"project": "Atlas"},
				Body:    []*ast.Node{ast.NewParagraph(ast.NewText("x"))},
			},
		},
		{
			name: "text body",
			raw:  `{"name":"interview","arg":"a.md","body":"one\n\ntwo"}`,
			want: Invocation{
				Name: "interview",
				Arg:  "a.md",
				Body: []*ast.Node{ast.NewParagraph(ast.NewText("one")), ast.NewParagraph(ast.NewText("two"))},
			},
		},
		{
			name: "single node body",
			raw:  `{"name":"tag","body":{"type":"text","value":"careful"}}`,
			want: Invocation{Name: "tag", Body: []*ast.Node{ast.NewText("careful")}},
		},
		{
			name: "no body",
			raw:  `{"name":"tag","body":null}`,
			want: Invocation{Name: "tag"},
		},
		{
			name: "options keep their JSON types",
			raw:  `{"name":"vtt","options":{"date":20240501,"draft":true}}`,
			want: Invocation{Name: "vtt", Options: map[string]interface{}{"date": float64(20240501), "draft": true}},
		},
		{name: "not json", raw: `{"name":`, wantErr: true},
		{name: "array", raw: `[]`, wantErr: true},
		{name: "missing name", raw: `{"arg":"a.md"}`, wantErr: true},
		{name: "numeric arg", raw: `{"name":"vtt","arg":3}`, wantErr: true},
		{name: "options not an object", raw: `{"name":"vtt","options":["a"]}`, wantErr: true},
		{name: "bad body", raw: `{"name":"vtt","body":42}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInvocation([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeInvocation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeInvocation() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodedInvocationTypeErrorsSurfaceOnInvoke(t *testing.T) {
	inv, err := DecodeInvocation([]byte(`{"name":"vtt","arg":"a.md","options":{"date":20240501},"body":"x"}`))
	if err != nil {
		t.Fatalf("DecodeInvocation() error = %v", err)
	}
	_, err = Default().Invoke(context.Background(), inv)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) || schemaErr.Field != "options.date" {
		t.Errorf("Invoke() error = %v, want schema error on options.date", err)
	}
}

func TestTranscriptOptions(t *testing.T) {
	got := TranscriptOptions(transcript.Options{Project: "Atlas", Date: "2024-05-01"})
	want := map[string]interface{}{"project": "Atlas", "date": "2024-05-01"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TranscriptOptions() mismatch (-want +got):\n%s", diff)
	}
}
