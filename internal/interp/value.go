package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bhasha-lang/bhasha/internal/ast"
)

// Value is the runtime tagged union every bhasha value implements. Every
// operator dispatches on the concrete type at runtime, per the dynamic-
// typing design: static analysis is best-effort, runtime is authoritative.
type Value interface {
	Type() string
	String() string
}

// NumberValue holds either an integer or a float; arithmetic promotes to
// float as soon as either operand is float.
type NumberValue struct {
	Int     int64
	Float   float64
	IsFloat bool
}

func Int(v int64) NumberValue { return NumberValue{Int: v} }

func Float(v float64) NumberValue { return NumberValue{Float: v, IsFloat: true} }

func (n NumberValue) Type() string { return "NUMBER" }
func (n NumberValue) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}
func (n NumberValue) AsFloat() float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

// StringValue holds UTF-8 text.
type StringValue struct{ Value string }

func (s StringValue) Type() string   { return "STRING" }
func (s StringValue) String() string { return s.Value }

// BoolValue holds `sach`/`jhoot`.
type BoolValue struct{ Value bool }

func (b BoolValue) Type() string { return "BOOL" }
func (b BoolValue) String() string {
	if b.Value {
		return "sach"
	}
	return "jhoot"
}

// NoneValue is `khaali`, bhasha's null.
type NoneValue struct{}

func (NoneValue) Type() string   { return "NONE" }
func (NoneValue) String() string { return "khaali" }

// ListValue is a mutable, ordered sequence. Element storage is shared by
// reference like every other bhasha composite value.
type ListValue struct{ Elements []Value }

func (l *ListValue) Type() string { return "LIST" }
func (l *ListValue) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = displayString(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DictValue is an insertion-ordered string-keyed map. Keys are compared
// by their display string, which is sufficient for bhasha's key types
// (numbers, strings, bools).
type DictValue struct {
	Keys   []string
	Values map[string]Value
}

func NewDict() *DictValue {
	return &DictValue{Values: make(map[string]Value)}
}

func (d *DictValue) Set(key string, value Value) {
	if _, ok := d.Values[key]; !ok {
		d.Keys = append(d.Keys, key)
	}
	d.Values[key] = value
}

func (d *DictValue) Type() string { return "DICT" }
func (d *DictValue) String() string {
	parts := make([]string, len(d.Keys))
	for i, k := range d.Keys {
		parts[i] = k + ": " + displayString(d.Values[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FunctionValue is a named or lambda closure: params, a body, and the
// environment captured at definition time.
type FunctionValue struct {
	Name     string
	Params   []string
	Body     *ast.BlockStatement // nil for a lambda (ExprBody is used instead)
	ExprBody ast.Expression
	Closure  *Environment
}

func (f *FunctionValue) Type() string { return "FUNC" }
func (f *FunctionValue) String() string {
	if f.Name != "" {
		return "<kaam " + f.Name + ">"
	}
	return "<lambda>"
}

// NativeFunctionValue wraps one of the host-implemented builtins
// (length, append, str, range, ...) so the interpreter can dispatch a
// call uniformly regardless of whether the callee is user- or
// host-defined. Arity is the fixed argument count the dispatcher
// enforces before invoking Fn, or variadic.
type NativeFunctionValue struct {
	Name  string
	Fn    builtinFunc
	Arity int
}

func (n *NativeFunctionValue) Type() string   { return "FUNC" }
func (n *NativeFunctionValue) String() string { return "<builtin " + n.Name + ">" }

// ClassValue describes a class: its name, optional parent, and its own
// (non-inherited) methods.
type ClassValue struct {
	Name    string
	Parent  *ClassValue
	Methods map[string]*FunctionValue
}

func (c *ClassValue) Type() string   { return "CLASS" }
func (c *ClassValue) String() string { return "<class " + c.Name + ">" }

// InstanceValue is one object: a class reference plus its own fields.
type InstanceValue struct {
	Class  *ClassValue
	Fields map[string]Value
}

func NewInstance(class *ClassValue) *InstanceValue {
	return &InstanceValue{Class: class, Fields: make(map[string]Value)}
}

func (o *InstanceValue) Type() string   { return "INSTANCE" }
func (o *InstanceValue) String() string { return "<" + o.Class.Name + " instance>" }

// displayString renders a value the way it appears nested inside a list
// or dict (strings get no surrounding quotes in bhasha's own likho, but
// nested string elements do, for readability).
func displayString(v Value) string {
	if s, ok := v.(StringValue); ok {
		return fmt.Sprintf("%q", s.Value)
	}
	return v.String()
}

// Truthy implements bhasha's standard truthiness: 0, "", empty list/dict,
// none, and jhoot are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case BoolValue:
		return val.Value
	case NumberValue:
		if val.IsFloat {
			return val.Float != 0
		}
		return val.Int != 0
	case StringValue:
		return val.Value != ""
	case NoneValue:
		return false
	case *ListValue:
		return len(val.Elements) > 0
	case *DictValue:
		return len(val.Keys) > 0
	default:
		return true
	}
}
