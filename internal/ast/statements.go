package ast

import "strings"

// BlockStatement is `{ statement* }`.
type BlockStatement struct {
	Statements []Statement
	line       int
}

func NewBlockStatement(line int, statements []Statement) *BlockStatement {
	return &BlockStatement{line: line, Statements: statements}
}

func (b *BlockStatement) statementNode()       {}
func (b *BlockStatement) Line() int            { return b.line }
func (b *BlockStatement) TokenLiteral() string { return "{" }
func (b *BlockStatement) String() string {
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// ExpressionStatement wraps an expression evaluated for its side effects,
// e.g. a bare function or method call used as a statement.
type ExpressionStatement struct {
	Expr Expression
	line int
}

func NewExpressionStatement(line int, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{line: line, Expr: expr}
}

func (e *ExpressionStatement) statementNode()       {}
func (e *ExpressionStatement) Line() int            { return e.line }
func (e *ExpressionStatement) TokenLiteral() string { return e.Expr.TokenLiteral() }
func (e *ExpressionStatement) String() string       { return e.Expr.String() }

// VarDecl is `maan IDENT = expression`.
type VarDecl struct {
	Value Expression
	Name  string
	line  int
}

func NewVarDecl(line int, name string, value Expression) *VarDecl {
	return &VarDecl{line: line, Name: name, Value: value}
}

func (v *VarDecl) statementNode()       {}
func (v *VarDecl) Line() int            { return v.line }
func (v *VarDecl) TokenLiteral() string { return "maan" }
func (v *VarDecl) String() string       { return "maan " + v.Name + " = " + v.Value.String() }

// Assignment is `IDENT = expression` reassigning an existing name.
type Assignment struct {
	Value Expression
	Name  string
	line  int
}

func NewAssignment(line int, name string, value Expression) *Assignment {
	return &Assignment{line: line, Name: name, Value: value}
}

func (a *Assignment) statementNode()       {}
func (a *Assignment) Line() int            { return a.line }
func (a *Assignment) TokenLiteral() string { return a.Name }
func (a *Assignment) String() string       { return a.Name + " = " + a.Value.String() }

// IndexAssignment is `target[index] = value`.
type IndexAssignment struct {
	Target Expression
	Index  Expression
	Value  Expression
	line   int
}

func NewIndexAssignment(line int, target, index, value Expression) *IndexAssignment {
	return &IndexAssignment{line: line, Target: target, Index: index, Value: value}
}

func (i *IndexAssignment) statementNode()       {}
func (i *IndexAssignment) Line() int            { return i.line }
func (i *IndexAssignment) TokenLiteral() string { return "[" }
func (i *IndexAssignment) String() string {
	return i.Target.String() + "[" + i.Index.String() + "] = " + i.Value.String()
}

// BreakStmt is `ruk`.
type BreakStmt struct{ line int }

func NewBreakStmt(line int) *BreakStmt { return &BreakStmt{line: line} }

func (b *BreakStmt) statementNode()       {}
func (b *BreakStmt) Line() int            { return b.line }
func (b *BreakStmt) TokenLiteral() string { return "ruk" }
func (b *BreakStmt) String() string       { return "ruk" }

// ContinueStmt is `age_badho`.
type ContinueStmt struct{ line int }

func NewContinueStmt(line int) *ContinueStmt { return &ContinueStmt{line: line} }

func (c *ContinueStmt) statementNode()       {}
func (c *ContinueStmt) Line() int            { return c.line }
func (c *ContinueStmt) TokenLiteral() string { return "age_badho" }
func (c *ContinueStmt) String() string       { return "age_badho" }

// ReturnStmt is `wapas expression?`.
type ReturnStmt struct {
	Value Expression // nil for a bare `wapas`
	line  int
}

func NewReturnStmt(line int, value Expression) *ReturnStmt {
	return &ReturnStmt{line: line, Value: value}
}

func (r *ReturnStmt) statementNode()       {}
func (r *ReturnStmt) Line() int            { return r.line }
func (r *ReturnStmt) TokenLiteral() string { return "wapas" }
func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "wapas"
	}
	return "wapas " + r.Value.String()
}

// PrintStmt is `likho(args...)` (or `likho_online`, which suppresses the
// trailing newline at evaluation time).
type PrintStmt struct {
	Args      []Expression
	line      int
	NoNewline bool
}

func NewPrintStmt(line int, args []Expression, noNewline bool) *PrintStmt {
	return &PrintStmt{line: line, Args: args, NoNewline: noNewline}
}

func (p *PrintStmt) statementNode() {}
func (p *PrintStmt) Line() int      { return p.line }
func (p *PrintStmt) TokenLiteral() string {
	if p.NoNewline {
		return "likho_online"
	}
	return "likho"
}
func (p *PrintStmt) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return p.TokenLiteral() + "(" + strings.Join(parts, ", ") + ")"
}

// InputStmt is `poocho IDENT STRING?`.
type InputStmt struct {
	Prompt    string // optional prompt text shown before reading, "" if absent
	VarName   string
	line      int
	HasPrompt bool
}

func NewInputStmt(line int, varName, prompt string, hasPrompt bool) *InputStmt {
	return &InputStmt{line: line, VarName: varName, Prompt: prompt, HasPrompt: hasPrompt}
}

func (i *InputStmt) statementNode()       {}
func (i *InputStmt) Line() int            { return i.line }
func (i *InputStmt) TokenLiteral() string { return "poocho" }
func (i *InputStmt) String() string {
	if i.HasPrompt {
		return "poocho " + i.VarName + " \"" + i.Prompt + "\""
	}
	return "poocho " + i.VarName
}

// ThrowStmt is `uchalo expression`.
type ThrowStmt struct {
	Value Expression
	line  int
}

func NewThrowStmt(line int, value Expression) *ThrowStmt {
	return &ThrowStmt{line: line, Value: value}
}

func (t *ThrowStmt) statementNode()       {}
func (t *ThrowStmt) Line() int            { return t.line }
func (t *ThrowStmt) TokenLiteral() string { return "uchalo" }
func (t *ThrowStmt) String() string       { return "uchalo " + t.Value.String() }

// ImportStmt is `lao module_name`. Parsed only: the interpreter executes
// it as a no-op (module resolution is declared but deferred).
type ImportStmt struct {
	ModuleName string
	line       int
}

func NewImportStmt(line int, moduleName string) *ImportStmt {
	return &ImportStmt{line: line, ModuleName: moduleName}
}

func (i *ImportStmt) statementNode()       {}
func (i *ImportStmt) Line() int            { return i.line }
func (i *ImportStmt) TokenLiteral() string { return "lao" }
func (i *ImportStmt) String() string       { return "lao " + i.ModuleName }
