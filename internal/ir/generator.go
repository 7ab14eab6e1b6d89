package ir

import (
	"fmt"
	"strconv"

	"github.com/bhasha-lang/bhasha/internal/ast"
)

// Program is the flat instruction listing produced by one Generate call,
// plus the final state of the temp and label allocators.
type Program struct {
	Instructions []Instruction
	TempCount    int
	LabelCount   int
}

type loopLabels struct {
	start string
	end   string
}

// Generator lowers an already-analyzed AST into three-address code. It
// never inspects semantic error state itself; callers run the semantic
// analyzer first and only generate IR for a program that passed.
type Generator struct {
	instrs     []Instruction
	tempCount  int
	labelCount int
	loops      []loopLabels
}

// New creates an empty Generator.
func New() *Generator {
	return &Generator{}
}

// Generate lowers prog's top-level statements and returns the resulting
// Program.
func (g *Generator) Generate(prog *ast.Program) *Program {
	for _, stmt := range prog.Statements {
		g.lowerStatement(stmt)
	}
	return &Program{Instructions: g.instrs, TempCount: g.tempCount, LabelCount: g.labelCount}
}

func (g *Generator) emit(i Instruction) { g.instrs = append(g.instrs, i) }

func (g *Generator) newTemp() string {
	t := fmt.Sprintf("t%d", g.tempCount)
	g.tempCount++
	return t
}

func (g *Generator) newLabel(prefix string) string {
	l := fmt.Sprintf("%s_%d", prefix, g.labelCount)
	g.labelCount++
	return l
}

func (g *Generator) lastIsReturn() bool {
	if len(g.instrs) == 0 {
		return false
	}
	_, ok := g.instrs[len(g.instrs)-1].(Return)
	return ok
}

// lowerStatement lowers one statement, emitting instructions that do not
// themselves yield a value.
func (g *Generator) lowerStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		for _, inner := range s.Statements {
			g.lowerStatement(inner)
		}
	case *ast.ExpressionStatement:
		g.lowerExpr(s.Expr)
	case *ast.VarDecl:
		v := g.lowerExpr(s.Value)
		g.emit(Assign{Name: s.Name, Src: v})
	case *ast.Assignment:
		v := g.lowerExpr(s.Value)
		g.emit(Assign{Name: s.Name, Src: v})
	case *ast.IndexAssignment:
		target := g.lowerExpr(s.Target)
		idx := g.lowerExpr(s.Index)
		val := g.lowerExpr(s.Value)
		g.emit(IndexStore{Array: target, Index: idx, Value: val})
	case *ast.PropertyAssignment:
		target := g.lowerExpr(s.Target)
		val := g.lowerExpr(s.Value)
		g.emit(FieldStore{Object: target, Field: s.Name, Value: val})
	case *ast.BreakStmt:
		if n := len(g.loops); n > 0 {
			g.emit(Jump{Target: g.loops[n-1].end})
		}
	case *ast.ContinueStmt:
		if n := len(g.loops); n > 0 {
			g.emit(Jump{Target: g.loops[n-1].start})
		}
	case *ast.ReturnStmt:
		if s.Value == nil {
			g.emit(Return{})
			return
		}
		v := g.lowerExpr(s.Value)
		g.emit(Return{Value: v})
	case *ast.PrintStmt:
		var args []string
		for _, a := range s.Args {
			args = append(args, g.lowerExpr(a))
		}
		g.emit(Print{Args: args, NoNewline: s.NoNewline})
	case *ast.InputStmt:
		t := g.newTemp()
		g.emit(Input{Dest: t, Prompt: s.Prompt, Has: s.HasPrompt})
		g.emit(Assign{Name: s.VarName, Src: t})
	case *ast.ThrowStmt:
		v := g.lowerExpr(s.Value)
		g.emit(Throw{Value: v})
	case *ast.ImportStmt:
		g.emit(Import{ModuleName: s.ModuleName})
	case *ast.IfStmt:
		g.lowerIf(s)
	case *ast.WhileStmt:
		g.lowerWhile(s)
	case *ast.ForEachStmt:
		g.lowerForEach(s)
	case *ast.TryStmt:
		g.lowerTry(s)
	case *ast.FunctionDef:
		g.lowerFunction(s.Name, s.Body)
	case *ast.ClassDef:
		g.emit(ClassLabel{Name: s.Name, Parent: s.Parent})
		for _, m := range s.Methods {
			g.lowerFunction(s.Name+"."+m.Name, m.Body)
		}
	}
}

func (g *Generator) lowerFunction(name string, body *ast.BlockStatement) {
	g.emit(FuncLabel{Name: name})
	for _, stmt := range body.Statements {
		g.lowerStatement(stmt)
	}
	if !g.lastIsReturn() {
		g.emit(Return{})
	}
}

// lowerIf desugars an elif chain into nested if/else at lowering time.
func (g *Generator) lowerIf(s *ast.IfStmt) {
	end := g.newLabel("if_end")
	g.lowerIfBranch(s.Condition, s.Then, s.Elifs, s.Else, end)
	g.emit(Label{Name: end})
}

func (g *Generator) lowerIfBranch(cond ast.Expression, then *ast.BlockStatement, elifs []ast.ElifBranch, els *ast.BlockStatement, end string) {
	thenLbl := g.newLabel("if_then")
	elseLbl := g.newLabel("if_else")

	c := g.lowerExpr(cond)
	g.emit(CondJump{Cond: c, Then: thenLbl, Else: elseLbl})

	g.emit(Label{Name: thenLbl})
	for _, stmt := range then.Statements {
		g.lowerStatement(stmt)
	}
	g.emit(Jump{Target: end})

	g.emit(Label{Name: elseLbl})
	switch {
	case len(elifs) > 0:
		g.lowerIfBranch(elifs[0].Condition, elifs[0].Body, elifs[1:], els, end)
	case els != nil:
		for _, stmt := range els.Statements {
			g.lowerStatement(stmt)
		}
	}
}

func (g *Generator) lowerWhile(s *ast.WhileStmt) {
	start := g.newLabel("while_start")
	body := g.newLabel("while_body")
	end := g.newLabel("while_end")

	g.emit(Label{Name: start})
	c := g.lowerExpr(s.Condition)
	g.emit(CondJump{Cond: c, Then: body, Else: end})

	g.emit(Label{Name: body})
	g.loops = append(g.loops, loopLabels{start: start, end: end})
	for _, stmt := range s.Body.Statements {
		g.lowerStatement(stmt)
	}
	g.loops = g.loops[:len(g.loops)-1]
	g.emit(Jump{Target: start})

	g.emit(Label{Name: end})
}

// lowerForEach desugars `har v mein list { body }` into an index-counted
// while loop over length(list).
func (g *Generator) lowerForEach(s *ast.ForEachStmt) {
	list := g.lowerExpr(s.Iterable)
	idxVar := g.newTemp() + "_idx"
	g.emit(Assign{Name: idxVar, Src: "0"})

	start := g.newLabel("foreach_start")
	body := g.newLabel("foreach_body")
	end := g.newLabel("foreach_end")

	g.emit(Label{Name: start})
	g.emit(Param{Value: list})
	lenTemp := g.newTemp()
	g.emit(Call{Dest: lenTemp, Name: "length", Count: 1})
	cond := g.newTemp()
	g.emit(BinOp{Dest: cond, Left: idxVar, Operator: "<", Right: lenTemp})
	g.emit(CondJump{Cond: cond, Then: body, Else: end})

	g.emit(Label{Name: body})
	elem := g.newTemp()
	g.emit(IndexLoad{Dest: elem, Array: list, Index: idxVar})
	g.emit(Assign{Name: s.VarName, Src: elem})

	g.loops = append(g.loops, loopLabels{start: start, end: end})
	for _, stmt := range s.Body.Statements {
		g.lowerStatement(stmt)
	}
	g.loops = g.loops[:len(g.loops)-1]

	next := g.newTemp()
	g.emit(BinOp{Dest: next, Left: idxVar, Operator: "+", Right: "1"})
	g.emit(Assign{Name: idxVar, Src: next})
	g.emit(Jump{Target: start})

	g.emit(Label{Name: end})
}

func (g *Generator) lowerTry(s *ast.TryStmt) {
	catchLbl := g.newLabel("catch")
	endLbl := g.newLabel("try_end")

	g.emit(TryBegin{CatchLabel: catchLbl})
	for _, stmt := range s.Body.Statements {
		g.lowerStatement(stmt)
	}
	g.emit(TryEnd{})
	g.emit(Jump{Target: endLbl})

	g.emit(Label{Name: catchLbl})
	g.emit(CatchBegin{Var: s.CatchVar})
	for _, stmt := range s.CatchBody.Statements {
		g.lowerStatement(stmt)
	}

	g.emit(Label{Name: endLbl})
	if s.FinallyBody != nil {
		for _, stmt := range s.FinallyBody.Statements {
			g.lowerStatement(stmt)
		}
	}
}

// lowerExpr lowers an expression to a sequence of instructions and
// returns the temp (or direct name/literal) holding its result.
func (g *Generator) lowerExpr(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		t := g.newTemp()
		g.emit(Const{Dest: t, Value: e.String()})
		return t
	case *ast.StringLiteral:
		t := g.newTemp()
		g.emit(Const{Dest: t, Value: strconv.Quote(e.Value)})
		return t
	case *ast.BoolLiteral:
		t := g.newTemp()
		g.emit(Const{Dest: t, Value: e.String()})
		return t
	case *ast.NoneLiteral:
		t := g.newTemp()
		g.emit(Const{Dest: t, Value: "khaali"})
		return t
	case *ast.ListLiteral:
		t := g.newTemp()
		g.emit(NewList{Dest: t, Count: len(e.Elements)})
		for i, el := range e.Elements {
			v := g.lowerExpr(el)
			g.emit(IndexStore{Array: t, Index: strconv.Itoa(i), Value: v})
		}
		return t
	case *ast.DictLiteral:
		t := g.newTemp()
		g.emit(NewDict{Dest: t, Count: len(e.Entries)})
		for _, entry := range e.Entries {
			k := g.lowerExpr(entry.Key)
			v := g.lowerExpr(entry.Value)
			g.emit(IndexStore{Array: t, Index: k, Value: v})
		}
		return t
	case *ast.Identifier:
		return e.Name
	case *ast.ThisExpr:
		return "yeh"
	case *ast.SuperExpr:
		for _, arg := range e.Args {
			v := g.lowerExpr(arg)
			g.emit(Param{Value: v})
		}
		t := g.newTemp()
		g.emit(Call{Dest: t, Name: "upar", Count: len(e.Args)})
		return t
	case *ast.NewObject:
		for _, arg := range e.Args {
			v := g.lowerExpr(arg)
			g.emit(Param{Value: v})
		}
		t := g.newTemp()
		g.emit(NewObj{Dest: t, ClassName: e.ClassName, Count: len(e.Args)})
		return t
	case *ast.MethodCall:
		target := g.lowerExpr(e.Target)
		for _, arg := range e.Args {
			v := g.lowerExpr(arg)
			g.emit(Param{Value: v})
		}
		t := g.newTemp()
		g.emit(Call{Dest: t, Name: target + "." + e.Name, Count: len(e.Args)})
		return t
	case *ast.PropertyAccess:
		target := g.lowerExpr(e.Target)
		t := g.newTemp()
		g.emit(FieldLoad{Dest: t, Object: target, Field: e.Name})
		return t
	case *ast.FunctionCall:
		return g.lowerCall(e)
	case *ast.Lambda:
		name := g.newLabel("lambda")
		g.emit(FuncLabel{Name: name})
		v := g.lowerExpr(e.Body)
		g.emit(Return{Value: v})
		return name
	case *ast.BinaryExpr:
		l := g.lowerExpr(e.Left)
		r := g.lowerExpr(e.Right)
		t := g.newTemp()
		g.emit(BinOp{Dest: t, Left: l, Operator: e.Operator, Right: r})
		return t
	case *ast.UnaryExpr:
		v := g.lowerExpr(e.Operand)
		t := g.newTemp()
		g.emit(UnaryOp{Dest: t, Operator: e.Operator, Operand: v})
		return t
	case *ast.ParenExpr:
		return g.lowerExpr(e.Inner)
	case *ast.IndexExpr:
		target := g.lowerExpr(e.Target)
		idx := g.lowerExpr(e.Index)
		t := g.newTemp()
		g.emit(IndexLoad{Dest: t, Array: target, Index: idx})
		return t
	}
	return ""
}

func (g *Generator) lowerCall(call *ast.FunctionCall) string {
	name := ""
	if ident, ok := call.Callee.(*ast.Identifier); ok {
		name = ident.Name
	} else {
		name = g.lowerExpr(call.Callee)
	}
	for _, arg := range call.Args {
		v := g.lowerExpr(arg)
		g.emit(Param{Value: v})
	}
	t := g.newTemp()
	g.emit(Call{Dest: t, Name: name, Count: len(call.Args)})
	return t
}

// Generate is the package-level convenience entry point matching the
// driver surface's `IRGenerator().generate(Program)`.
func Generate(prog *ast.Program) *Program {
	return New().Generate(prog)
}
