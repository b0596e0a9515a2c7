package doctree

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Errors returned by FromJSON.
var (
	ErrInvalidJSON     = errors.New("invalid document json")
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrUnknownMarkType = errors.New("unknown mark type")
	ErrMissingText     = errors.New("text node without text")
	ErrInvalidAttr     = errors.New("invalid node attribute")
)

const docType = "doc"

// jsonNode is the wire form of a node: text is present iff the node is a
// text node, content iff it is a container.
type jsonNode struct {
	Type    string         `json:"type"`
	Text    *string        `json:"text,omitempty"`
	Content *[]jsonNode    `json:"content,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Marks   []jsonMark     `json:"marks,omitempty"`
}

type jsonMark struct {
	Type  string            `json:"type"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// ToJSON serializes the document as {"type":"doc","content":[...]}.
func (d *Doc) ToJSON() ([]byte, error) {
	return json.Marshal(d)
}

// MarshalJSON implements json.Marshaler.
func (d *Doc) MarshalJSON() ([]byte, error) {
	content := make([]jsonNode, len(d.content))
	for i, n := range d.content {
		content[i] = toJSONNode(n)
	}
	return json.Marshal(jsonNode{Type: docType, Content: &content})
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSONNode(n))
}

func toJSONNode(n *Node) jsonNode {
	out := jsonNode{Type: n.Kind.String()}
	switch {
	case n.Kind == KindText:
		text := n.Text
		out.Text = &text
	case n.Kind.IsContainer():
		content := make([]jsonNode, len(n.Children))
		for i, c := range n.Children {
			content[i] = toJSONNode(c)
		}
		out.Content = &content
	}
	if len(n.Attrs) > 0 {
		out.Attrs = n.Attrs
	}
	for _, m := range n.Marks {
		out.Marks = append(out.Marks, jsonMark{Type: string(m.Type), Attrs: m.Attrs})
	}
	return out
}

// FromJSON decodes a document produced by ToJSON.
func FromJSON(data []byte) (*Doc, error) {
	var root jsonNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if root.Type != docType {
		return nil, fmt.Errorf("%w: root type %q", ErrInvalidJSON, root.Type)
	}

	var blocks []*Node
	if root.Content != nil {
		blocks = make([]*Node, 0, len(*root.Content))
		for i, jn := range *root.Content {
			n, err := fromJSONNode(jn, Path{i})
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, n)
		}
	}
	return adopt(blocks), nil
}

func fromJSONNode(jn jsonNode, path Path) (*Node, error) {
	kind, ok := ParseKind(jn.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q at %s", ErrUnknownNodeType, jn.Type, path)
	}

	n := &Node{Kind: kind}
	if kind == KindText {
		if jn.Text == nil {
			return nil, fmt.Errorf("%w at %s", ErrMissingText, path)
		}
		n.Text = *jn.Text
		for _, jm := range jn.Marks {
			typ := MarkType(jm.Type)
			if !typ.IsValid() {
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownMarkType, jm.Type, path)
			}
			n.Marks = append(n.Marks, NewMark(typ, jm.Attrs))
		}
		n.Marks = NewMarkSet(n.Marks...).Marks()
		if len(n.Marks) == 0 {
			n.Marks = nil
		}
	}

	if kind.IsContainer() && jn.Content != nil {
		n.Children = make([]*Node, 0, len(*jn.Content))
		for i, child := range *jn.Content {
			c, err := fromJSONNode(child, path.Child(i))
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, c)
		}
	}

	attrs, err := decodeAttrs(kind, jn.Attrs)
	if err != nil {
		return nil, fmt.Errorf("%w at %s", err, path)
	}
	n.Attrs = attrs
	return n, nil
}

// decodeAttrs validates the attributes of the built-in kinds and folds JSON
// numbers back onto ints.
func decodeAttrs(kind Kind, attrs map[string]any) (map[string]any, error) {
	switch kind {
	case KindHeading:
		level, ok := attrs[AttrLevel].(float64)
		if !ok || level < 1 || level > 6 || level != float64(int(level)) {
			return nil, fmt.Errorf("%w: heading level %v", ErrInvalidAttr, attrs[AttrLevel])
		}
		out := copyAttrs(attrs)
		out[AttrLevel] = int(level)
		return out, nil
	case KindImage:
		src, ok := attrs[AttrSrc].(string)
		if !ok {
			return nil, fmt.Errorf("%w: image without src", ErrInvalidAttr)
		}
		alt, _ := attrs[AttrAlt].(string)
		title, _ := attrs[AttrTitle].(string)
		return map[string]any{AttrSrc: src, AttrAlt: alt, AttrTitle: title}, nil
	default:
		if len(attrs) == 0 {
			return nil, nil
		}
		return copyAttrs(attrs), nil
	}
}

func copyAttrs(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = normalizeAttr(v)
	}
	return out
}
