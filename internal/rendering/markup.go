package rendering

import "strings"

const indentUnit = "  "

// Value is a node of the Typst literal tree. Only Str leaves carry user text,
// and Print escapes them, so every string is escaped exactly once however
// deeply it is nested.
type Value interface {
	isValue()
}

// Str is a quoted string literal
type Str string

// None is the Typst none literal
type None struct{}

// Seq is an array literal
type Seq []Value

// Field is one key/value pair of a Record or Dict
type Field struct {
	Key   string
	Value Value
}

// Record is a dictionary literal with bare identifier keys
type Record []Field

// Dict is a dictionary literal with quoted string keys, for keys that come
// from user data (skill categories, letter recipient fields)
type Dict []Field

func (Str) isValue()    {}
func (None) isValue()   {}
func (Seq) isValue()    {}
func (Record) isValue() {}
func (Dict) isValue()   {}

// OptionalStr maps an absent value to None and a present one to Str.
// An empty but present string stays a Str.
func OptionalStr(s *string) Value {
	if s == nil {
		return None{}
	}
	return Str(*s)
}

// StrSeq builds a Seq of Str leaves.
func StrSeq(items []string) Seq {
	seq := make(Seq, len(items))
	for i, item := range items {
		seq[i] = Str(item)
	}
	return seq
}

// Print renders a value as Typst source starting at the given indent depth
func Print(v Value, depth int) string {
	var sb strings.Builder
	writeValue(&sb, v, depth)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, depth int) {
	switch val := v.(type) {
	case Str:
		writeString(sb, string(val))
	case None:
		sb.WriteString("none")
	case Seq:
		writeSeq(sb, val, depth)
	case Record:
		writeFields(sb, val, depth, false)
	case Dict:
		writeFields(sb, val, depth, true)
	case nil:
		sb.WriteString("none")
	}
}

func writeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	sb.WriteString(EscapeTypst(s))
	sb.WriteByte('"')
}

// writeSeq prints scalar sequences inline and nested ones one item per line.
// A single inline item keeps a trailing comma, otherwise Typst reads the
// parentheses as grouping instead of an array.
func writeSeq(sb *strings.Builder, seq Seq, depth int) {
	if len(seq) == 0 {
		sb.WriteString("()")
		return
	}

	if isScalarSeq(seq) {
		sb.WriteByte('(')
		for i, item := range seq {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, item, depth)
		}
		if len(seq) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(')')
		return
	}

	inner := strings.Repeat(indentUnit, depth+1)
	sb.WriteString("(\n")
	for _, item := range seq {
		sb.WriteString(inner)
		writeValue(sb, item, depth+1)
		sb.WriteString(",\n")
	}
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteByte(')')
}

func writeFields(sb *strings.Builder, fields []Field, depth int, quoteKeys bool) {
	if len(fields) == 0 {
		sb.WriteString("(:)")
		return
	}

	inner := strings.Repeat(indentUnit, depth+1)
	sb.WriteString("(\n")
	for _, f := range fields {
		sb.WriteString(inner)
		if quoteKeys {
			writeString(sb, f.Key)
		} else {
			sb.WriteString(f.Key)
		}
		sb.WriteString(": ")
		writeValue(sb, f.Value, depth+1)
		sb.WriteString(",\n")
	}
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteByte(')')
}

func isScalarSeq(seq Seq) bool {
	for _, item := range seq {
		switch item.(type) {
		case Str, None, nil:
		default:
			return false
		}
	}
	return true
}
