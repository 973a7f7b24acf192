package newick

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BranchLengthKey is the metadata key holding a node's branch length.
const BranchLengthKey = "branch_length"

// Kind identifies which of the three representations a Value holds.
type Kind int

// The kinds of Value.
const (
	Int    Kind = iota // integer, such as a branch length written "2"
	Float              // real number, always written with a decimal point
	String             // free text
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	}
	panic(fmt.Sprintf("BUG: Unknown kind '%d'.", int(k)))
}

// Value is a single metadata value: an integer, a real number or a string.
// The kind is kept so that values are written back the way they were read.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntValue returns an integer Value.
func IntValue(i int64) Value { return Value{kind: Int, i: i} }

// FloatValue returns a real number Value.
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: String, s: s} }

// Kind returns which representation v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v is an Int or a Float.
func (v Value) IsNumber() bool { return v.kind != String }

// Int returns the value as an integer. ok is false unless the kind is Int.
func (v Value) Int() (i int64, ok bool) {
	return v.i, v.kind == Int
}

// Float returns the value as a real number. Integers are converted. ok is
// false for strings.
func (v Value) Float() (f float64, ok bool) {
	switch v.kind {
	case Int:
		return float64(v.i), true
	case Float:
		return v.f, true
	}
	return 0, false
}

// Str returns the value as a string. ok is false unless the kind is String.
func (v Value) Str() (s string, ok bool) {
	return v.s, v.kind == String
}

// String returns the textual form used in Newick output. Real numbers always
// carry a decimal point, so they read back as real numbers.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return formatFloat(v.f)
	}
	return v.s
}

// MarshalJSON writes numbers bare and strings quoted. Strings are not
// HTML-escaped, matching the rest of the JSON output.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Int:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case Float:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("Cannot represent %v in JSON.", v.f)
		}
		return []byte(formatFloat(v.f)), nil
	}
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v.s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

// parseLength reads a branch length literal. Literals containing a '.' are
// real numbers, everything else must be an integer.
func parseLength(lit string) (Value, error) {
	if strings.ContainsRune(lit, '.') {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return Value{}, err
	}
	return IntValue(i), nil
}

// Metadata maps names to values. A nil Metadata is empty and safe to read.
type Metadata map[string]Value

// Get returns the value stored under key, if any.
func (m Metadata) Get(key string) (Value, bool) {
	v, ok := m[key]
	return v, ok
}

// Has reports whether key is present.
func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Keys returns the keys in ascending order.
func (m Metadata) Keys() []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
