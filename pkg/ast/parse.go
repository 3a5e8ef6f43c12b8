package ast

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var blankLines = regexp.MustCompile(`\n[ \t]*\n\s*`)

// DecodeNodes decodes a JSON node array, or a single JSON node, into a node sequence
func DecodeNodes(raw []byte) ([]*Node, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("content is not valid JSON")
	}
	parsed := gjson.ParseBytes(raw)
	switch {
	case parsed.IsArray():
		var nodes []*Node
		if err := json.Unmarshal(raw, &nodes); err != nil {
			return nil, errors.Wrap(err, "failed to decode node array")
		}
		if nodes == nil {
			nodes = []*Node{}
		}
		return nodes, nil
	case parsed.IsObject():
		var node Node
		if err := json.Unmarshal(raw, &node); err != nil {
			return nil, errors.Wrap(err, "failed to decode node")
		}
		return []*Node{&node}, nil
	default:
		return nil, errors.Errorf("expected a node or node array, got %s", parsed.Type)
	}
}

// ParagraphsFromText splits text on blank lines into paragraphs,
// each holding a single text node. CRLF line endings are normalized.
func ParagraphsFromText(text string) []*Node {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	nodes := []*Node{}
	for _, chunk := range blankLines.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		nodes = append(nodes, NewParagraph(NewText(chunk)))
	}
	return nodes
}

// FromHTML reads an HTML document and turns every <p> element into a
// paragraph with a single text node. <br> elements become newlines.
func FromHTML(r io.Reader) ([]*Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create document from HTML content")
	}
	doc.Find("br").ReplaceWithHtml("\n")

	nodes := []*Node{}
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		nodes = append(nodes, NewParagraph(NewText(text)))
	})
	return nodes, nil
}

// DecodeBody interprets a body string as a JSON node tree, an HTML fragment,
// or plain text, in that order of preference.
func DecodeBody(body string) ([]*Node, error) {
	trimmed := strings.TrimSpace(body)
	switch {
	case strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{"):
		return DecodeNodes([]byte(trimmed))
	case strings.HasPrefix(trimmed, "<"):
		return FromHTML(strings.NewReader(trimmed))
	default:
		return ParagraphsFromText(body), nil
	}
}
