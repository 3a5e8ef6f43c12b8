package transcript

import (
	"testing"

	"github.com/athapong/vtt-mcp/pkg/ast"
)

func TestMatchMarker(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantOK   bool
		wantSeg  ast.Segment
		wantRest string
	}{
		{
			name:     "basic",
			text:     "00:01.500 --> 00:03.200\n[Alice]: Hello there",
			wantOK:   true,
			wantSeg:  ast.Segment{StartTime: "00:01.500", EndTime: "00:03.200", Speaker: "Alice"},
			wantRest: "Hello there",
		},
		{
			name:     "extra spacing",
			text:     "00:01.500   -->   00:03.200  \n   [Bob]:    Hi",
			wantOK:   true,
			wantSeg:  ast.Segment{StartTime: "00:01.500", EndTime: "00:03.200", Speaker: "Bob"},
			wantRest: "Hi",
		},
		{
			name:     "no spacing around arrow",
			text:     "10:00.000-->10:02.250\n[Interviewer]:Why?",
			wantOK:   true,
			wantSeg:  ast.Segment{StartTime: "10:00.000", EndTime: "10:02.250", Speaker: "Interviewer"},
			wantRest: "Why?",
		},
		{
			name:     "crlf line ending",
			text:     "00:01.500 --> 00:03.200\r\n[Bob]: Hi",
			wantOK:   true,
			wantSeg:  ast.Segment{StartTime: "00:01.500", EndTime: "00:03.200", Speaker: "Bob"},
			wantRest: "Hi",
		},
		{
			name:     "speaker with spaces",
			text:     "00:01.500 --> 00:03.200\n[Dr. Jane Smith]: Thanks",
			wantOK:   true,
			wantSeg:  ast.Segment{StartTime: "00:01.500", EndTime: "00:03.200", Speaker: "Dr. Jane Smith"},
			wantRest: "Thanks",
		},
		{
			name:     "only the leading marker is removed",
			text:     "00:01.500 --> 00:03.200\n[A]: x 00:04.000 --> 00:05.000\n[B]: y",
			wantOK:   true,
			wantSeg:  ast.Segment{StartTime: "00:01.500", EndTime: "00:03.200", Speaker: "A"},
			wantRest: "x 00:04.000 --> 00:05.000\n[B]: y",
		},
		{
			name:     "empty remainder",
			text:     "00:01.500 --> 00:03.200\n[A]: ",
			wantOK:   true,
			wantSeg:  ast.Segment{StartTime: "00:01.500", EndTime: "00:03.200", Speaker: "A"},
			wantRest: "",
		},
		{name: "plain note", text: "This is a plain note."},
		{name: "empty", text: ""},
		{name: "marker on one line", text: "00:01.500 --> 00:03.200 [Alice]: Hello"},
		{name: "short minutes", text: "0:01.500 --> 00:03.200\n[Alice]: Hello"},
		{name: "missing millis", text: "00:01 --> 00:03.200\n[Alice]: Hello"},
		{name: "hour component", text: "01:00:01.500 --> 01:00:03.200\n[Alice]: Hello"},
		{name: "empty speaker", text: "00:01.500 --> 00:03.200\n[]: Hello"},
		{name: "bracket in speaker", text: "00:01.500 --> 00:03.200\n[Al]ice]: Hello"},
		{name: "missing colon", text: "00:01.500 --> 00:03.200\n[Alice] Hello"},
		{name: "leading whitespace", text: " 00:01.500 --> 00:03.200\n[Alice]: Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, rest, ok := MatchMarker(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("MatchMarker(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				if rest != tt.text {
					t.Errorf("rest = %q, want input unchanged", rest)
				}
				return
			}
			if seg != tt.wantSeg {
				t.Errorf("segment = %+v, want %+v", seg, tt.wantSeg)
			}
			if rest != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}
