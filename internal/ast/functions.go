package ast

import "strings"

// FunctionDef is `kaam IDENT(params) block`.
type FunctionDef struct {
	Body   *BlockStatement
	Name   string
	Params []string
	line   int
}

func NewFunctionDef(line int, name string, params []string, body *BlockStatement) *FunctionDef {
	return &FunctionDef{line: line, Name: name, Params: params, Body: body}
}

func (f *FunctionDef) statementNode()       {}
func (f *FunctionDef) Line() int            { return f.line }
func (f *FunctionDef) TokenLiteral() string { return "kaam" }
func (f *FunctionDef) String() string {
	return "kaam " + f.Name + "(" + strings.Join(f.Params, ", ") + ") " + f.Body.String()
}

// FunctionCall is `callee(args...)`; callee may itself be any expression
// (a name, a lambda, or a call result), per the postfix grammar rule.
type FunctionCall struct {
	Callee Expression
	Args   []Expression
	line   int
}

func NewFunctionCall(line int, callee Expression, args []Expression) *FunctionCall {
	return &FunctionCall{line: line, Callee: callee, Args: args}
}

func (c *FunctionCall) expressionNode()      {}
func (c *FunctionCall) Line() int            { return c.line }
func (c *FunctionCall) TokenLiteral() string { return "(" }
func (c *FunctionCall) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Lambda is `lambda(params) -> expr`, a single-expression-body closure.
type Lambda struct {
	Body   Expression
	Params []string
	line   int
}

func NewLambda(line int, params []string, body Expression) *Lambda {
	return &Lambda{line: line, Params: params, Body: body}
}

func (l *Lambda) expressionNode()      {}
func (l *Lambda) Line() int            { return l.line }
func (l *Lambda) TokenLiteral() string { return "lambda" }
func (l *Lambda) String() string {
	return "lambda(" + strings.Join(l.Params, ", ") + ") -> " + l.Body.String()
}
