package adf

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Node represents an Atlassian Document Format node
type Node struct {
	Type    string                 `json:"type"`
	Text    string                 `json:"text,omitempty"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Marks   []*Mark                `json:"marks,omitempty"`
	Content []*Node                `json:"content,omitempty"`
}

// Mark represents formatting marks in ADF
type Mark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// Decode parses an ADF document from JSON
func Decode(raw []byte) (*Node, error) {
	node := &Node{}
	if err := json.Unmarshal(raw, node); err != nil {
		return nil, errors.Wrap(err, "failed to decode ADF document")
	}
	if node.Type == "" {
		return nil, errors.New("ADF document has no type")
	}
	return node, nil
}

// IsDocument reports whether raw looks like an ADF document root
func IsDocument(raw []byte) bool {
	if !gjson.ValidBytes(raw) {
		return false
	}
	root := gjson.ParseBytes(raw)
	return root.Get("type").String() == "doc" && root.Get("content").IsArray()
}
