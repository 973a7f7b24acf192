package newick

import (
	"bytes"
	"strconv"
	"strings"
)

// labelSpecial lists the characters that force a label to be quoted when it
// is written.
const labelSpecial = " \t\n\r\v\f()[]:;,'\""

// Newick returns t in Newick format, terminated by ";\n". Metadata other than
// the branch length is not written.
func (t *Tree) Newick() string {
	buf := new(bytes.Buffer)
	t.Root.writeNewick(buf, false)
	buf.WriteString(";\n")
	return buf.String()
}

// NewickWithMetadata is like Newick, but every node with metadata besides its
// branch length gets a comment of the form [&key=value,...] after the branch
// length. Keys are sorted and string values are quoted.
func (t *Tree) NewickWithMetadata() string {
	buf := new(bytes.Buffer)
	t.Root.writeNewick(buf, true)
	buf.WriteString(";\n")
	return buf.String()
}

// Newick returns the subtree at n in Newick format, without the terminal.
func (n *Node) Newick() string {
	buf := new(bytes.Buffer)
	n.writeNewick(buf, false)
	return buf.String()
}

func (n *Node) writeNewick(buf *bytes.Buffer, comments bool) {
	if n.HasChildren() {
		buf.WriteByte(descStart)
		for i, child := range n.Children {
			if i > 0 {
				buf.WriteByte(descDelimiter)
			}
			child.writeNewick(buf, comments)
		}
		buf.WriteByte(descEnd)
	}
	buf.WriteString(quoteLabel(n.Label))
	if length, ok := n.BranchLength(); ok {
		buf.WriteByte(lengthStart)
		buf.WriteString(length.String())
	}
	if comments {
		n.writeComment(buf)
	}
}

func (n *Node) writeComment(buf *bytes.Buffer) {
	first := true
	for _, key := range n.Metadata.Keys() {
		if key == BranchLengthKey {
			continue
		}
		if first {
			buf.WriteString("[&")
			first = false
		} else {
			buf.WriteByte(',')
		}
		v := n.Metadata[key]
		buf.WriteString(key)
		buf.WriteByte('=')
		if s, ok := v.Str(); ok {
			buf.WriteString(strconv.Quote(s))
		} else {
			buf.WriteString(v.String())
		}
	}
	if !first {
		buf.WriteByte(commentEnd)
	}
}

// quoteLabel quotes a label that would not survive being read back unquoted.
// Single quotes are preferred; labels containing one get double quotes. A
// label with both kinds of quote cannot be represented and is written in
// double quotes anyway.
func quoteLabel(label string) string {
	if !strings.ContainsAny(label, labelSpecial) {
		return label
	}
	if strings.ContainsRune(label, singleQuote) {
		return string(doubleQuote) + label + string(doubleQuote)
	}
	return string(singleQuote) + label + string(singleQuote)
}

// ReplaceBranchLengths sets the branch length of every node that has a value
// under key to that value. Other nodes keep their branch length.
func (t *Tree) ReplaceBranchLengths(key string) {
	for w := t.Walk(); ; {
		n, ok := w.Next()
		if !ok {
			return
		}
		if v, ok := n.Metadata.Get(key); ok {
			n.SetBranchLength(v)
		}
	}
}

// ReplaceInternalLabels sets the label of every internal node that has a
// value under key to the textual form of that value. Leaves are untouched.
func (t *Tree) ReplaceInternalLabels(key string) {
	for w := t.Walk(); ; {
		n, ok := w.Next()
		if !ok {
			return
		}
		if n.IsLeaf() {
			continue
		}
		if v, ok := n.Metadata.Get(key); ok {
			n.Label = v.String()
		}
	}
}
