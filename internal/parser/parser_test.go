package parser

import (
	"strings"
	"testing"

	"github.com/bhasha-lang/bhasha/internal/ast"
	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexErrs := lexer.TokenizeSafe(src)
	require.Empty(t, lexErrs)
	p := New(toks)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors")
	return prog
}

func TestParseVarDeclAndPrint(t *testing.T) {
	prog := parse(t, `maan naam = "Duniya"
likho("Namaste, " + naam + "!")`)
	require.Len(t, prog.Statements, 2)
	decl, ok := prog.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "naam", decl.Name)

	print, ok := prog.Statements[1].(*ast.PrintStmt)
	require.True(t, ok)
	require.Len(t, print.Args, 1)
}

func TestParseIfElifElse(t *testing.T) {
	prog := parse(t, `agar x > 0 { likho("pos") } warna_agar x < 0 { likho("neg") } warna { likho("zero") }`)
	require.Len(t, prog.Statements, 1)
	ifStmt, ok := prog.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifStmt.Elifs, 1)
	require.NotNil(t, ifStmt.Else)
}

func TestParseWhileBreakContinue(t *testing.T) {
	prog := parse(t, `jab_tak i < 10 { agar i == 5 { ruk } age_badho }`)
	require.Len(t, prog.Statements, 1)
	while, ok := prog.Statements[0].(*ast.WhileStmt)
	require.True(t, ok)
	require.Len(t, while.Body.Statements, 2)
	_, ok = while.Body.Statements[1].(*ast.ContinueStmt)
	require.True(t, ok)
}

func TestParseClassWithExtendsAndSuper(t *testing.T) {
	prog := parse(t, `
class A { kaam __init__(n) { yeh.n = n } kaam who() { likho("A:" + str(yeh.n)) } }
class B extends A { kaam __init__(n) { upar(n) } }
maan b = naya B(7)
b.who()
`)
	require.Len(t, prog.Statements, 4)
	a, ok := prog.Statements[0].(*ast.ClassDef)
	require.True(t, ok)
	require.Equal(t, "A", a.Name)
	require.Len(t, a.Methods, 2)

	b, ok := prog.Statements[1].(*ast.ClassDef)
	require.True(t, ok)
	require.Equal(t, "A", b.Parent)
}

func TestParseTryCatchFinally(t *testing.T) {
	prog := parse(t, `koshish { uchalo "boom" } pakad e { likho("caught:" + e) } aakhir { likho("fin") }`)
	require.Len(t, prog.Statements, 1)
	try, ok := prog.Statements[0].(*ast.TryStmt)
	require.True(t, ok)
	require.Equal(t, "e", try.CatchVar)
	require.NotNil(t, try.FinallyBody)
}

func TestParseLambdaClosureShape(t *testing.T) {
	prog := parse(t, `kaam make_adder(n) { wapas lambda(x) -> x + n }`)
	require.Len(t, prog.Statements, 1)
	fn, ok := prog.Statements[0].(*ast.FunctionDef)
	require.True(t, ok)
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	require.True(t, ok)
	_, ok = ret.Value.(*ast.Lambda)
	require.True(t, ok)
}

func TestParseIndexingAndAssignment(t *testing.T) {
	prog := parse(t, `maan xs = [1, 2, 3]
xs[0] = 9`)
	require.Len(t, prog.Statements, 2)
	idxAssign, ok := prog.Statements[1].(*ast.IndexAssignment)
	require.True(t, ok)
	_, ok = idxAssign.Target.(*ast.Identifier)
	require.True(t, ok)
}

func TestOperatorPrecedenceAndAssociativity(t *testing.T) {
	prog := parse(t, `maan x = 1 + 2 * 3 - 4`)
	decl := prog.Statements[0].(*ast.VarDecl)
	bin, ok := decl.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "-", bin.Operator) // left-associative: (1 + 2*3) - 4
}

func TestMissingClosingBraceReportsExpectedToken(t *testing.T) {
	toks, _ := lexer.TokenizeSafe(`agar x {
likho("ok")
`)
	p := New(toks)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	found := false
	for _, e := range p.Errors() {
		if strings.Contains(e.Message, "'}'") {
			found = true
		}
	}
	require.True(t, found, "no error mentions the missing '}': %v", p.Errors())
}

func TestStrayClosingBraceTerminatesAndRecovers(t *testing.T) {
	toks, _ := lexer.TokenizeSafe(`kaam f() { wapas 1 }
}
maan y = 1
`)
	p := New(toks)
	prog := p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	found := false
	for _, s := range prog.Statements {
		if decl, ok := s.(*ast.VarDecl); ok && decl.Name == "y" {
			found = true
		}
	}
	require.True(t, found, "parser did not recover past the stray '}'")
}

func TestNonMethodInClassBodyTerminatesAndRecovers(t *testing.T) {
	toks, _ := lexer.TokenizeSafe(`class C {
maan x = 1
kaam go() { wapas 1 }
}
maan y = 2
`)
	p := New(toks)
	prog := p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	found := false
	for _, s := range prog.Statements {
		if decl, ok := s.(*ast.VarDecl); ok && decl.Name == "y" {
			found = true
		}
	}
	require.True(t, found, "parser did not recover past the broken class body")
}

func TestPanicModeRecoveryFindsLaterStatements(t *testing.T) {
	toks, _ := lexer.TokenizeSafe(`maan = 5
maan y = 1
`)
	p := New(toks)
	prog := p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	// Recovery must still let the parser pick up the later statement.
	found := false
	for _, s := range prog.Statements {
		if decl, ok := s.(*ast.VarDecl); ok && decl.Name == "y" {
			found = true
		}
	}
	require.True(t, found, "parser did not recover past the broken declaration")
}

func TestMissingClosingParenReportsExpectedToken(t *testing.T) {
	toks, _ := lexer.TokenizeSafe(`likho("ok"
likho("done")`)
	p := New(toks)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestEmptySourceParsesToEmptyProgram(t *testing.T) {
	prog := parse(t, "")
	require.Empty(t, prog.Statements)
}

func TestDictAndListLiterals(t *testing.T) {
	prog := parse(t, `maan d = {"a": 1, "b": 2}`)
	decl := prog.Statements[0].(*ast.VarDecl)
	dict, ok := decl.Value.(*ast.DictLiteral)
	require.True(t, ok)
	require.Len(t, dict.Entries, 2)
}
