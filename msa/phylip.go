package msa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/TuftsBCB/taxares/fasta"
)

// Alignment is a set of named rows that all have the same length.
type Alignment struct {
	Entries []fasta.Entry
}

// Len returns the number of columns in the alignment.
func (a Alignment) Len() int {
	if len(a.Entries) == 0 {
		return 0
	}
	return len(a.Entries[0].Sequence)
}

type lineReader struct {
	buf  *bufio.Reader
	line int
}

// next returns the next line without its line ending. ok is false at the end
// of the input.
func (lr *lineReader) next() (line string, ok bool, err error) {
	s, err := lr.buf.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if err == io.EOF && len(s) == 0 {
		return "", false, nil
	}
	lr.line++
	return strings.TrimRight(s, "\r\n"), true, nil
}

func (lr *lineReader) errorf(format string, v ...interface{}) error {
	return fmt.Errorf("Error on line %d: %s", lr.line, fmt.Sprintf(format, v...))
}

// ReadPhylip reads an interleaved PHYLIP alignment. It checks that the number
// of rows and the length of every row match the counts on the first line and
// that no two rows share a name.
func ReadPhylip(r io.Reader) (Alignment, error) {
	lr := &lineReader{buf: bufio.NewReader(r)}

	first, ok, err := lr.next()
	if err != nil {
		return Alignment{}, err
	}
	counts := strings.Fields(first)
	if !ok || len(counts) != 2 {
		return Alignment{}, lr.errorf("expected the number of taxa and " +
			"the number of positions.")
	}
	ntax, err1 := strconv.Atoi(counts[0])
	npos, err2 := strconv.Atoi(counts[1])
	if err1 != nil || err2 != nil || ntax <= 0 || npos < 0 {
		return Alignment{}, lr.errorf("invalid taxa or position count in "+
			"'%s'.", first)
	}

	names := make([]string, 0, ntax)
	rows := make([]strings.Builder, ntax)
	for len(names) < ntax {
		line, ok, err := lr.next()
		if err != nil {
			return Alignment{}, err
		}
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return Alignment{}, lr.errorf("expected a taxon name and "+
				"sequence, but the line is blank (%d of %d taxa read).",
				len(names), ntax)
		}
		rows[len(names)].WriteString(strings.Join(fields[1:], ""))
		names = append(names, fields[0])
	}
	if len(names) != ntax {
		return Alignment{}, fmt.Errorf("Expected %d taxa, but found %d.",
			ntax, len(names))
	}

	for {
		line, ok, err := lr.next()
		if err != nil {
			return Alignment{}, err
		}
		if !ok {
			break
		}
		if len(strings.TrimSpace(line)) > 0 {
			return Alignment{}, lr.errorf("expected a blank line between " +
				"blocks.")
		}
		for i := 0; i < ntax; i++ {
			line, ok, err := lr.next()
			if err != nil {
				return Alignment{}, err
			}
			if !ok {
				break
			}
			rows[i].WriteString(removeSpace(line))
		}
	}

	seen := make(map[string]bool, ntax)
	a := Alignment{Entries: make([]fasta.Entry, ntax)}
	for i, name := range names {
		if seen[name] {
			return Alignment{}, fmt.Errorf("Taxon name '%s' is used more "+
				"than once.", name)
		}
		seen[name] = true

		seq := rows[i].String()
		if len(seq) != npos {
			return Alignment{}, fmt.Errorf("Expected every sequence to have "+
				"%d positions, but '%s' has %d.", npos, name, len(seq))
		}
		a.Entries[i] = fasta.Entry{Header: name, Sequence: []byte(seq)}
	}
	return a, nil
}

func removeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
