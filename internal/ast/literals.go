package ast

import (
	"fmt"
	"strings"
)

// NumberLiteral holds either an integer or a floating-point value; IsFloat
// distinguishes them because a single embedded '.' in the source promotes
// the literal to floating point (see the lexer's number-scanning rule).
type NumberLiteral struct {
	IntValue   int64
	FloatValue float64
	line       int
	IsFloat    bool
}

func NewNumberLiteral(line int, raw string, isFloat bool, i int64, f float64) *NumberLiteral {
	return &NumberLiteral{line: line, IsFloat: isFloat, IntValue: i, FloatValue: f}
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) Line() int            { return n.line }
func (n *NumberLiteral) TokenLiteral() string { return n.String() }
func (n *NumberLiteral) String() string {
	if n.IsFloat {
		return fmt.Sprintf("%g", n.FloatValue)
	}
	return fmt.Sprintf("%d", n.IntValue)
}

// StringLiteral is a double- or single-quoted string literal.
type StringLiteral struct {
	Value string
	line  int
}

func NewStringLiteral(line int, value string) *StringLiteral {
	return &StringLiteral{line: line, Value: value}
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) Line() int            { return s.line }
func (s *StringLiteral) TokenLiteral() string { return s.Value }
func (s *StringLiteral) String() string       { return `"` + s.Value + `"` }

// BoolLiteral is `sach` (true) or `jhoot` (false).
type BoolLiteral struct {
	Value bool
	line  int
}

func NewBoolLiteral(line int, value bool) *BoolLiteral {
	return &BoolLiteral{line: line, Value: value}
}

func (b *BoolLiteral) expressionNode() {}
func (b *BoolLiteral) Line() int       { return b.line }
func (b *BoolLiteral) TokenLiteral() string {
	if b.Value {
		return "sach"
	}
	return "jhoot"
}
func (b *BoolLiteral) String() string { return b.TokenLiteral() }

// NoneLiteral is `khaali`, the null value.
type NoneLiteral struct {
	line int
}

func NewNoneLiteral(line int) *NoneLiteral { return &NoneLiteral{line: line} }

func (n *NoneLiteral) expressionNode()      {}
func (n *NoneLiteral) Line() int            { return n.line }
func (n *NoneLiteral) TokenLiteral() string { return "khaali" }
func (n *NoneLiteral) String() string       { return "khaali" }

// ListLiteral is `[elem, elem, ...]`.
type ListLiteral struct {
	Elements []Expression
	line     int
}

func NewListLiteral(line int, elements []Expression) *ListLiteral {
	return &ListLiteral{line: line, Elements: elements}
}

func (l *ListLiteral) expressionNode()      {}
func (l *ListLiteral) Line() int            { return l.line }
func (l *ListLiteral) TokenLiteral() string { return "[" }
func (l *ListLiteral) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DictEntry is one key/value pair of a DictLiteral.
type DictEntry struct {
	Key   Expression
	Value Expression
}

// DictLiteral is `{key: value, key: value, ...}`.
type DictLiteral struct {
	Entries []DictEntry
	line    int
}

func NewDictLiteral(line int, entries []DictEntry) *DictLiteral {
	return &DictLiteral{line: line, Entries: entries}
}

func (d *DictLiteral) expressionNode()      {}
func (d *DictLiteral) Line() int            { return d.line }
func (d *DictLiteral) TokenLiteral() string { return "{" }
func (d *DictLiteral) String() string {
	parts := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		parts[i] = e.Key.String() + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Identifier is a reference to a variable, function, class, or parameter
// name.
type Identifier struct {
	Name string
	line int
}

func NewIdentifier(line int, name string) *Identifier {
	return &Identifier{line: line, Name: name}
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) Line() int            { return i.line }
func (i *Identifier) TokenLiteral() string { return i.Name }
func (i *Identifier) String() string       { return i.Name }
