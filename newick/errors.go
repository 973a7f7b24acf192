package newick

import (
	"errors"
	"fmt"
	"strings"
)

// These errors classify every way a Newick string can be malformed. A
// *ParseError always wraps exactly one of them, so callers can test for a
// particular kind with errors.Is.
var (
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrUnterminatedQuote   = errors.New("unterminated quoted label")
	ErrUnexpectedChar      = errors.New("unexpected character")
	ErrMissingTerminator   = errors.New("missing terminal ';'")
	ErrTrailingContent     = errors.New("trailing content after ';'")
	ErrBadBranchLength     = errors.New("invalid branch length")
)

// ParseError describes a malformed Newick string. Line and Offset refer to the
// original input (before comments were removed). Offset is a byte offset.
type ParseError struct {
	Line   int
	Offset int
	Err    error
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error on line %d (offset %d): %s", e.Line, e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DuplicateLeafError is returned by CheckUniqueLeaves when two leaves of the
// same tree share a label.
type DuplicateLeafError struct {
	Tree   string
	Labels []string
}

func (e *DuplicateLeafError) Error() string {
	return fmt.Sprintf("Tree '%s' has duplicate leaf labels: %s.",
		e.Tree, strings.Join(e.Labels, ", "))
}

func escapeSpecial(c byte) string {
	switch c {
	case '\n':
		return "\\n"
	case '\r':
		return "\\r"
	case '\t':
		return "\\t"
	}
	return string(c)
}
