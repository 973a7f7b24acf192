package newick

import (
	"fmt"
	"strings"
)

const (
	terminal      = ';'
	descDelimiter = ','
	descStart     = '('
	descEnd       = ')'
	lengthStart   = ':'
	commentStart  = '['
	commentEnd    = ']'
	singleQuote   = '\''
	doubleQuote   = '"'
)

// source is the comment free text of a single Newick tree. offsets[i] is the
// position of text[i] in the original input, which keeps error positions
// meaningful after comments have been cut out.
type source struct {
	orig    string
	text    []byte
	offsets []int
}

// stripComments removes every '[...]' span from the input. Quoted labels are
// copied verbatim (quotes included), so brackets inside them survive.
func stripComments(input string) (*source, error) {
	src := &source{
		orig:    input,
		text:    make([]byte, 0, len(input)),
		offsets: make([]int, 0, len(input)),
	}
	keep := func(from, to int) {
		for i := from; i < to; i++ {
			src.text = append(src.text, input[i])
			src.offsets = append(src.offsets, i)
		}
	}
	for i := 0; i < len(input); i++ {
		switch c := input[i]; c {
		case commentStart:
			end := strings.IndexByte(input[i+1:], commentEnd)
			if end < 0 {
				return nil, src.errAt(i, ErrUnterminatedComment,
					"Comment starting here has no closing ']'.")
			}
			i += end + 1
		case singleQuote, doubleQuote:
			end := strings.IndexByte(input[i+1:], c)
			if end < 0 {
				return nil, src.errAt(i, ErrUnterminatedQuote,
					"Quoted label starting here has no closing %s.", escapeSpecial(c))
			}
			keep(i, i+end+2)
			i += end + 1
		default:
			keep(i, i+1)
		}
	}
	return src, nil
}

// at returns the byte at pos in the comment free text, if there is one.
func (src *source) at(pos int) (byte, bool) {
	if pos >= len(src.text) {
		return 0, false
	}
	return src.text[pos], true
}

// skipSpace returns the position of the first non-whitespace byte at or after
// pos.
func (src *source) skipSpace(pos int) int {
	for pos < len(src.text) && isSpace(src.text[pos]) {
		pos++
	}
	return pos
}

// errorf builds a *ParseError for a position in the comment free text.
func (src *source) errorf(pos int, kind error, format string, v ...interface{}) error {
	offset := len(src.orig)
	if pos < len(src.offsets) {
		offset = src.offsets[pos]
	}
	return src.errAt(offset, kind, format, v...)
}

// errAt builds a *ParseError for an offset into the original input.
func (src *source) errAt(offset int, kind error, format string, v ...interface{}) error {
	return &ParseError{
		Line:   1 + strings.Count(src.orig[:offset], "\n"),
		Offset: offset,
		Err:    kind,
		Msg:    fmt.Sprintf(format, v...),
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isQuote(c byte) bool {
	return c == singleQuote || c == doubleQuote
}

// isNodeEnd reports whether c stops an unquoted label.
func isNodeEnd(c byte) bool {
	return c == descEnd || c == descDelimiter || c == lengthStart || c == terminal
}

// isSubtreeEnd reports whether c ends a node entirely.
func isSubtreeEnd(c byte) bool {
	return c == descEnd || c == descDelimiter || c == terminal
}
