package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// An Entry corresponds to an entry in a FASTA file: a single line header and a
// sequence, which may span several lines in the file.
type Entry struct {
	Header   string
	Sequence []byte
}

// String returns the entry in FASTA format, with the sequence wrapped at 60
// columns.
func (e Entry) String() string {
	return e.StringCols(60)
}

// StringCols returns the entry in FASTA format with the sequence wrapped at
// the number of columns given. If cols is <= 0, then no wrapping is done.
func (e Entry) StringCols(cols int) string {
	if cols <= 0 || len(e.Sequence) <= cols {
		return fmt.Sprintf(">%s\n%s", e.Header, e.Sequence)
	}
	lines := make([]string, 0, 1+len(e.Sequence)/cols)
	for start := 0; start < len(e.Sequence); start += cols {
		end := start + cols
		if end > len(e.Sequence) {
			end = len(e.Sequence)
		}
		lines = append(lines, string(e.Sequence[start:end]))
	}
	return fmt.Sprintf(">%s\n%s", e.Header, strings.Join(lines, "\n"))
}

// A Reader reads entries from FASTA encoded input.
type Reader struct {
	// When set to true, sequences are not checked for invalid characters.
	TrustSequences bool

	buf        *bufio.Reader
	line       int
	nextHeader *string
}

// NewReader returns a reader ready for reading entries from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{buf: bufio.NewReader(r)}
}

// ReadAll returns all entries in the input. The first error is returned with
// no entries. The error is never io.EOF.
func (r *Reader) ReadAll() ([]Entry, error) {
	var entries []Entry
	for {
		entry, err := r.Read()
		if err == io.EOF {
			return entries, nil
		} else if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

// Read returns the next entry. At the end of the input it returns io.EOF.
// Blank lines and leading or trailing whitespace are ignored.
func (r *Reader) Read() (Entry, error) {
	var entry Entry
	seenHeader := false
	if r.nextHeader != nil {
		entry.Header, r.nextHeader = *r.nextHeader, nil
		seenHeader = true
	}
	for {
		raw, err := r.buf.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Entry{}, err
		}
		if len(raw) > 0 {
			r.line++
		}
		line := bytes.TrimSpace(raw)

		switch {
		case len(line) == 0:
		case line[0] == '>':
			header := string(bytes.TrimSpace(line[1:]))
			if seenHeader {
				r.nextHeader = &header
				return entry, nil
			}
			entry.Header, seenHeader = header, true
		case !seenHeader:
			return Entry{}, fmt.Errorf("Error on line %d: expected a "+
				"header starting with '>', but got '%s'.", r.line, line)
		default:
			if !r.TrustSequences {
				for _, b := range line {
					if !validResidue(b) {
						return Entry{}, fmt.Errorf("Error on line %d: "+
							"invalid character '%c' in sequence.", r.line, b)
					}
				}
			}
			entry.Sequence = append(entry.Sequence, line...)
		}

		if err == io.EOF {
			if seenHeader {
				return entry, nil
			}
			return Entry{}, io.EOF
		}
	}
}

func validResidue(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case b == '*', b == '-', b == '.', b == '?':
		return true
	}
	return false
}

// A Writer writes entries to a FASTA encoded file.
type Writer struct {
	// The number of columns to wrap a sequence at. By default, this
	// is set to 60. A value <= 0 will result in no wrapping.
	Columns int
	buf     *bufio.Writer
}

// NewWriter creates a new FASTA writer that writes entries to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Columns: 60,
		buf:     bufio.NewWriter(w),
	}
}

// Write writes a single entry. You may need to call Flush in order for the
// entry to reach the underlying io.Writer.
func (w *Writer) Write(entry Entry) error {
	_, err := w.buf.WriteString(entry.StringCols(w.Columns) + "\n")
	return err
}

// WriteAll writes every entry and calls Flush.
func (w *Writer) WriteAll(entries []Entry) error {
	for _, entry := range entries {
		if err := w.Write(entry); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
