package newick

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ResiliencyKey is the metadata key under which taxa resiliency scores are
// stored.
const ResiliencyKey = "taxa-resiliency"

// ASCII draws t with one line per node:
//
//	F
//	|-- A
//	|-- B
//	'-- E
//	    |-- C
//	    '-- D
func (t *Tree) ASCII() string {
	return t.Root.ASCII("", "")
}

// ASCII draws the subtree at n. prefix is written before the label of n and
// childrenPrefix before the lines of its descendents.
func (n *Node) ASCII(prefix, childrenPrefix string) string {
	buf := new(bytes.Buffer)
	n.writeASCII(buf, prefix, childrenPrefix)
	return buf.String()
}

func (n *Node) writeASCII(buf *bytes.Buffer, prefix, childrenPrefix string) {
	buf.WriteString(prefix)
	buf.WriteString(n.Label)
	buf.WriteByte('\n')
	for i, child := range n.Children {
		if i < len(n.Children)-1 {
			child.writeASCII(buf, childrenPrefix+"|-- ", childrenPrefix+"|   ")
		} else {
			child.writeASCII(buf, childrenPrefix+"'-- ", childrenPrefix+"    ")
		}
	}
}

// Mermaid returns t as a Mermaid flowchart. Nodes are numbered in post-order;
// leaves are drawn as boxes and internal nodes as circles. When
// replaceInternal is set, internal nodes show their resiliency score instead
// of their label.
func (t *Tree) Mermaid(replaceInternal bool) string {
	var (
		nodes, edges strings.Builder
		leafIDs      []string
		allIDs       []string
	)
	ids := make(map[*Node]int)
	for i, n := range t.Nodes() {
		ids[n] = i
		id := strconv.Itoa(i)
		allIDs = append(allIDs, id)

		label := n.Label
		if n.IsLeaf() {
			if label == "" {
				label = " "
			}
			fmt.Fprintf(&nodes, "\t%s[%s]\n", id, label)
			leafIDs = append(leafIDs, id)
			continue
		}
		if v, ok := n.Metadata.Get(ResiliencyKey); replaceInternal && ok {
			label = v.String()
		}
		if label == "" {
			label = " "
		}
		fmt.Fprintf(&nodes, "\t%s((%s))\n", id, label)
		for _, child := range n.Children {
			fmt.Fprintf(&edges, "\t%s --- %d\n", id, ids[child])
		}
	}

	var out strings.Builder
	out.WriteString("graph LR\n")
	out.WriteString(nodes.String())
	out.WriteString(edges.String())
	out.WriteString("\tclassDef nodes fill:#eee,stroke:#fff,stroke-width:0px,color:black;\n")
	out.WriteString("\tclassDef leaf-nodes fill:#fff;\n")
	fmt.Fprintf(&out, "\tclass %s nodes;\n", strings.Join(allIDs, ","))
	fmt.Fprintf(&out, "\tclass %s leaf-nodes;\n", strings.Join(leafIDs, ","))
	return out.String()
}
