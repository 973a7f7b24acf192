package newick

import (
	"fmt"
	"io"
	"os"
)

// Parse reads a single tree from input. The tree must end with a ';', and
// only whitespace may follow it. Any error returned is a *ParseError.
func Parse(name, input string) (*Tree, error) {
	src, err := stripComments(input)
	if err != nil {
		return nil, err
	}
	root, pos, err := src.parseNode(0)
	if err != nil {
		return nil, err
	}

	// parseNode only returns once it is sitting on ')', ',' or ';'.
	if c := src.text[pos]; c != terminal {
		return nil, src.errorf(pos, ErrUnexpectedChar,
			"Expected ';' at the end of the tree, but got '%s' instead.",
			escapeSpecial(c))
	}
	for pos++; pos < len(src.text); pos++ {
		if !isSpace(src.text[pos]) {
			return nil, src.errorf(pos, ErrTrailingContent,
				"Found '%s' after the terminal ';'; only whitespace may "+
					"follow a tree.", escapeSpecial(src.text[pos]))
		}
	}
	return &Tree{Name: name, Root: root}, nil
}

// Read reads all of r and parses it as a single tree.
func Read(r io.Reader, name string) (*Tree, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(name, string(bs))
}

// ReadFile parses the file at path as a single tree. Parse errors are
// prefixed with the path.
func ReadFile(path, name string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// parseNode builds the node starting at pos along with all of its
// descendents. It returns the new node and the position of the byte that
// ended it, which is always one of ')', ',' or ';'.
func (src *source) parseNode(pos int) (*Node, int, error) {
	node := &Node{}
	pos = src.skipSpace(pos)

	if c, ok := src.at(pos); ok && c == descStart {
		var err error
		if pos, err = src.parseDescendents(node, pos+1); err != nil {
			return nil, 0, err
		}
		pos = src.skipSpace(pos)
	}

	c, ok := src.at(pos)
	if !ok {
		return nil, 0, src.errorf(pos, ErrMissingTerminator,
			"Reached the end of the tree while looking for a label, "+
				"without finding a ';'.")
	}
	switch {
	case isQuote(c):
		var err error
		if node.Label, pos, err = src.quotedLabel(pos); err != nil {
			return nil, 0, err
		}
	case c == descStart:
		return nil, 0, src.errorf(pos, ErrUnexpectedChar,
			"Found '(' after a subtree; expected a label, a branch length "+
				"or the end of the subtree.")
	case !isNodeEnd(c):
		start := pos
		for pos < len(src.text) && !isSpace(src.text[pos]) && !isNodeEnd(src.text[pos]) {
			pos++
		}
		node.Label = string(src.text[start:pos])
	}
	pos = src.skipSpace(pos)

	if c, ok := src.at(pos); ok && c == lengthStart {
		var err error
		if pos, err = src.branchLength(node, pos+1); err != nil {
			return nil, 0, err
		}
		pos = src.skipSpace(pos)
	}

	c, ok = src.at(pos)
	if !ok {
		return nil, 0, src.errorf(pos, ErrMissingTerminator,
			"Reached the end of the tree while expecting ')', ',' or ';'.")
	}
	if !isSubtreeEnd(c) {
		return nil, 0, src.errorf(pos, ErrUnexpectedChar,
			"Expected end of subtree (',', ')' or ';') but got '%s' "+
				"instead.", escapeSpecial(c))
	}
	return node, pos, nil
}

// parseDescendents reads children into parent starting just after a '('. It
// returns the position just after the matching ')'.
func (src *source) parseDescendents(parent *Node, pos int) (int, error) {
	for {
		child, next, err := src.parseNode(pos)
		if err != nil {
			return 0, err
		}
		parent.Children = append(parent.Children, child)

		switch c := src.text[next]; c {
		case descDelimiter:
			pos = next + 1
		case descEnd:
			return next + 1, nil
		default:
			return 0, src.errorf(next, ErrUnexpectedChar,
				"Found '%s' inside a descendent list; expected ',' or ')'.",
				escapeSpecial(c))
		}
	}
}

// quotedLabel returns the text between the quote at pos and its partner,
// along with the position just past the closing quote.
func (src *source) quotedLabel(pos int) (string, int, error) {
	q := src.text[pos]
	for end := pos + 1; end < len(src.text); end++ {
		if src.text[end] == q {
			return string(src.text[pos+1 : end]), end + 1, nil
		}
	}
	return "", 0, src.errorf(pos, ErrUnterminatedQuote,
		"Quoted label starting here has no closing %s.", escapeSpecial(q))
}

// branchLength reads the number following a ':' and stores it on node.
func (src *source) branchLength(node *Node, pos int) (int, error) {
	pos = src.skipSpace(pos)
	start := pos
	for pos < len(src.text) && !isSpace(src.text[pos]) && !isSubtreeEnd(src.text[pos]) {
		pos++
	}
	lit := string(src.text[start:pos])
	if len(lit) == 0 {
		if pos >= len(src.text) {
			return 0, src.errorf(pos, ErrMissingTerminator,
				"Reached the end of the tree while looking for a branch "+
					"length, without finding a ';'.")
		}
		return 0, src.errorf(pos, ErrBadBranchLength,
			"Expected a branch length after ':'.")
	}
	length, err := parseLength(lit)
	if err != nil {
		return 0, src.errorf(start, ErrBadBranchLength,
			"Branch length '%s' is not an integer or a real number.", lit)
	}
	node.SetBranchLength(length)
	return pos, nil
}
