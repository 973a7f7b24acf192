package newick

import (
	"bytes"
	"encoding/json"
)

type jsonTree struct {
	Name string    `json:"name"`
	Root *jsonNode `json:"root"`
}

type jsonNode struct {
	Label    string      `json:"label"`
	Metadata Metadata    `json:"metadata"`
	Children []*jsonNode `json:"children"`
}

func toJSONNode(n *Node) *jsonNode {
	jn := &jsonNode{
		Label:    n.Label,
		Metadata: n.Metadata,
		Children: make([]*jsonNode, len(n.Children)),
	}
	if jn.Metadata == nil {
		jn.Metadata = Metadata{}
	}
	for i, child := range n.Children {
		jn.Children[i] = toJSONNode(child)
	}
	return jn
}

// JSON returns t as a single line of JSON:
//
//	{"name": ..., "root": {"label": ..., "metadata": {...}, "children": [...]}}
//
// Metadata keys are sorted. Numbers are written bare and strings quoted.
func (t *Tree) JSON() ([]byte, error) {
	bs, err := t.encodeJSON("")
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(bs, "\n"), nil
}

// JSONIndent is like JSON, but indented with tabs and ending in a newline.
func (t *Tree) JSONIndent() ([]byte, error) {
	return t.encodeJSON("\t")
}

func (t *Tree) encodeJSON(indent string) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(jsonTree{Name: t.Name, Root: toJSONNode(t.Root)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
