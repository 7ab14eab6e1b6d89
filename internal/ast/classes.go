package ast

import "strings"

// ClassDef is `class IDENT (extends IDENT)? { method_def* }`.
type ClassDef struct {
	Parent  string // "" if no `extends` clause
	Name    string
	Methods []*FunctionDef
	line    int
}

func NewClassDef(line int, name, parent string, methods []*FunctionDef) *ClassDef {
	return &ClassDef{line: line, Name: name, Parent: parent, Methods: methods}
}

func (c *ClassDef) statementNode()       {}
func (c *ClassDef) Line() int            { return c.line }
func (c *ClassDef) TokenLiteral() string { return "class" }
func (c *ClassDef) String() string {
	var sb strings.Builder
	sb.WriteString("class " + c.Name)
	if c.Parent != "" {
		sb.WriteString(" extends " + c.Parent)
	}
	sb.WriteString(" { ")
	for _, m := range c.Methods {
		sb.WriteString(m.String() + " ")
	}
	sb.WriteString("}")
	return sb.String()
}

// NewObject is `naya ClassName(args...)`.
type NewObject struct {
	ClassName string
	Args      []Expression
	line      int
}

func NewNewObject(line int, className string, args []Expression) *NewObject {
	return &NewObject{line: line, ClassName: className, Args: args}
}

func (n *NewObject) expressionNode()      {}
func (n *NewObject) Line() int            { return n.line }
func (n *NewObject) TokenLiteral() string { return "naya" }
func (n *NewObject) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return "naya " + n.ClassName + "(" + strings.Join(parts, ", ") + ")"
}

// MethodCall is `target.name(args...)`.
type MethodCall struct {
	Target Expression
	Name   string
	Args   []Expression
	line   int
}

func NewMethodCall(line int, target Expression, name string, args []Expression) *MethodCall {
	return &MethodCall{line: line, Target: target, Name: name, Args: args}
}

func (m *MethodCall) expressionNode()      {}
func (m *MethodCall) Line() int            { return m.line }
func (m *MethodCall) TokenLiteral() string { return m.Name }
func (m *MethodCall) String() string {
	parts := make([]string, len(m.Args))
	for i, a := range m.Args {
		parts[i] = a.String()
	}
	return m.Target.String() + "." + m.Name + "(" + strings.Join(parts, ", ") + ")"
}

// PropertyAccess is `target.name` read as a value.
type PropertyAccess struct {
	Target Expression
	Name   string
	line   int
}

func NewPropertyAccess(line int, target Expression, name string) *PropertyAccess {
	return &PropertyAccess{line: line, Target: target, Name: name}
}

func (p *PropertyAccess) expressionNode()      {}
func (p *PropertyAccess) Line() int            { return p.line }
func (p *PropertyAccess) TokenLiteral() string { return p.Name }
func (p *PropertyAccess) String() string       { return p.Target.String() + "." + p.Name }

// PropertyAssignment is `target.name = value`; it always writes to the
// instance's own fields, never to an inherited method slot.
type PropertyAssignment struct {
	Target Expression
	Value  Expression
	Name   string
	line   int
}

func NewPropertyAssignment(line int, target Expression, name string, value Expression) *PropertyAssignment {
	return &PropertyAssignment{line: line, Target: target, Name: name, Value: value}
}

func (p *PropertyAssignment) statementNode()       {}
func (p *PropertyAssignment) Line() int            { return p.line }
func (p *PropertyAssignment) TokenLiteral() string { return p.Name }
func (p *PropertyAssignment) String() string {
	return p.Target.String() + "." + p.Name + " = " + p.Value.String()
}

// ThisExpr is `yeh`, valid only inside a method body.
type ThisExpr struct{ line int }

func NewThisExpr(line int) *ThisExpr { return &ThisExpr{line: line} }

func (t *ThisExpr) expressionNode()      {}
func (t *ThisExpr) Line() int            { return t.line }
func (t *ThisExpr) TokenLiteral() string { return "yeh" }
func (t *ThisExpr) String() string       { return "yeh" }

// SuperExpr is `upar(args...)`, a call to the parent class's method of the
// same name bound to the current instance (used inside `__init__` to chain
// to the parent constructor).
type SuperExpr struct {
	Args []Expression
	line int
}

func NewSuperExpr(line int, args []Expression) *SuperExpr {
	return &SuperExpr{line: line, Args: args}
}

func (s *SuperExpr) expressionNode()      {}
func (s *SuperExpr) Line() int            { return s.line }
func (s *SuperExpr) TokenLiteral() string { return "upar" }
func (s *SuperExpr) String() string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return "upar(" + strings.Join(parts, ", ") + ")"
}
