package ast

// NodeType is the variant tag of a content node
type NodeType string

const (
	TypeText      NodeType = "text"
	TypeParagraph NodeType = "paragraph"
	TypeSpan      NodeType = "span"
	TypeBlock     NodeType = "block"
)

// Node represents a content node in a parsed document tree
type Node struct {
	Type     NodeType       `json:"type"`
	Value    string         `json:"value,omitempty"`
	Data     *Data          `json:"data,omitempty"`
	Style    Style          `json:"style,omitempty"`
	Metadata *BlockMetadata `json:"metadata,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// Data is the typed payload attached to a node.
// Segment is set on transcript paragraphs, Tags on annotation spans.
type Data struct {
	*Segment
	Tags []string `json:"tags,omitempty"`
}

// Segment holds the timing and speaker of one transcript paragraph
type Segment struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Speaker   string `json:"speaker"`
}

// BlockMetadata is carried by the block produced by the transcript directive
type BlockMetadata struct {
	File        string `json:"file"`
	Project     string `json:"project,omitempty"`
	Interviewee string `json:"interviewee,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Style maps a presentation property name to its value
type Style map[string]string

// NewText creates a text node
func NewText(value string) *Node {
	return &Node{Type: TypeText, Value: value}
}

// NewParagraph creates a paragraph node holding children
func NewParagraph(children ...*Node) *Node {
	return &Node{Type: TypeParagraph, Children: children}
}

// NewSpan creates an inline container holding children
func NewSpan(children ...*Node) *Node {
	return &Node{Type: TypeSpan, Children: children}
}

// FirstChild returns the first child or nil
func (n *Node) FirstChild() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Segment returns the transcript segment attached to n, if any
func (n *Node) Segment() (Segment, bool) {
	if n == nil || n.Data == nil || n.Data.Segment == nil {
		return Segment{}, false
	}
	return *n.Data.Segment, true
}

// Tags returns the annotation tags attached to n
func (n *Node) Tags() []string {
	if n == nil || n.Data == nil {
		return nil
	}
	return n.Data.Tags
}

// Clone returns a deep copy of n
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Type: n.Type, Value: n.Value}
	if n.Data != nil {
		d := &Data{}
		if n.Data.Segment != nil {
			seg := *n.Data.Segment
			d.Segment = &seg
		}
		if n.Data.Tags != nil {
			d.Tags = append([]string{}, n.Data.Tags...)
		}
		c.Data = d
	}
	if n.Style != nil {
		c.Style = make(Style, len(n.Style))
		for k, v := range n.Style {
			c.Style[k] = v
		}
	}
	if n.Metadata != nil {
		md := *n.Metadata
		c.Metadata = &md
	}
	if n.Children != nil {
		c.Children = CloneAll(n.Children)
	}
	return c
}

// CloneAll deep copies a node sequence
func CloneAll(nodes []*Node) []*Node {
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
