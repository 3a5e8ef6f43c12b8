package transcript

import (
	"regexp"

	"github.com/athapong/vtt-mcp/pkg/ast"
)

// markerPattern matches the leading "start --> end\n[speaker]:" of a segment
var markerPattern = regexp.MustCompile(`^(\d{2}:\d{2}\.\d{3})\s*-->\s*(\d{2}:\d{2}\.\d{3})\s*\n\s*\[([^\]]+)\]:\s*`)

// MatchMarker reports whether text starts with a segment marker. On a match
// it returns the captured segment and the text that follows the marker.
func MatchMarker(text string) (ast.Segment, string, bool) {
	m := markerPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return ast.Segment{}, text, false
	}
	seg := ast.Segment{
		StartTime: text[m[2]:m[3]],
		EndTime:   text[m[4]:m[5]],
		Speaker:   text[m[6]:m[7]],
	}
	return seg, text[m[1]:], true
}
