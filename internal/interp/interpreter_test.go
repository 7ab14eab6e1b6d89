package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bhasha-lang/bhasha/internal/ast"
	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/parser"
	"github.com/bhasha-lang/bhasha/internal/semantic"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, and semantically analyzes src, then executes it and
// returns everything written to stdout. Any analysis error fails the test
// immediately since phase 5 never runs past phases 1-3 per the pipeline's
// ordering guarantee.
func run(t *testing.T, src string) string {
	t.Helper()
	return runWithInput(t, src, "")
}

func runWithInput(t *testing.T, src, stdin string) string {
	t.Helper()
	toks, lexErrs := lexer.TokenizeSafe(src)
	require.Empty(t, lexErrs)

	p := parser.New(toks)
	program := p.ParseProgram()
	require.Empty(t, p.Errors())

	semErrs := semantic.New().Analyze(program)
	require.Empty(t, semErrs)

	var out bytes.Buffer
	interpreter := New(&out, strings.NewReader(stdin))
	err := interpreter.Execute(program)
	require.NoError(t, err)
	return out.String()
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexErrs := lexer.TokenizeSafe(src)
	require.Empty(t, lexErrs)
	p := parser.New(toks)
	program := p.ParseProgram()
	require.Empty(t, p.Errors())
	return program
}

func TestHelloWorld(t *testing.T) {
	out := run(t, `
maan naam = "Duniya"
likho("Namaste, " + naam + "!")
`)
	require.Equal(t, "Namaste, Duniya!\n", out)
}

func TestArithmeticAndShadowing(t *testing.T) {
	out := run(t, `
maan x = 10
{ maan x = x + 5  likho(x) }
likho(x)
`)
	require.Equal(t, "15\n10\n", out)
}

func TestClosureCapture(t *testing.T) {
	out := run(t, `
kaam make_adder(n) { wapas lambda(x) -> x + n }
maan add5 = make_adder(5)
likho(add5(3))
`)
	require.Equal(t, "8\n", out)
}

func TestClosureReadsDefiningScopeNotCallSite(t *testing.T) {
	out := run(t, `
maan n = 1
kaam make() { maan n = 99 wapas lambda() -> n }
maan f = make()
maan n2 = f()
likho(n2)
`)
	require.Equal(t, "99\n", out)
}

func TestInheritanceAndSuper(t *testing.T) {
	out := run(t, `
class A { kaam __init__(n) { yeh.n = n } kaam who() { likho("A:" + str(yeh.n)) } }
class B extends A { kaam __init__(n) { upar(n) } }
maan b = naya B(7)
b.who()
`)
	require.Equal(t, "A:7\n", out)
}

func TestTryCatchFinallyWithThrow(t *testing.T) {
	out := run(t, `
koshish { uchalo "boom" } pakad e { likho("caught:" + e) } aakhir { likho("fin") }
`)
	require.Equal(t, "caught:boom\nfin\n", out)
}

func TestBreakExitsOnlyInnermostLoop(t *testing.T) {
	out := run(t, `
maan i = 0
jab_tak i < 3 {
	maan j = 0
	jab_tak j < 3 {
		agar j == 1 { ruk }
		likho("i" + str(i) + "j" + str(j))
		j = j + 1
	}
	i = i + 1
}
`)
	require.Equal(t, "i0j0\ni1j0\ni2j0\n", out)
}

func TestContinueSkipsToLoopCondition(t *testing.T) {
	out := run(t, `
maan i = 0
jab_tak i < 5 {
	i = i + 1
	agar i % 2 == 0 { age_badho }
	likho(i)
}
`)
	require.Equal(t, "1\n3\n5\n", out)
}

func TestDivisionByZeroRaisesRuntimeError(t *testing.T) {
	program := mustParse(t, `maan x = 1 / 0`)
	var out bytes.Buffer
	interpreter := New(&out, strings.NewReader(""))
	err := interpreter.Execute(program)
	require.Error(t, err)
	rtErr, ok := err.(*RuntimeError)
	require.True(t, ok)
	require.Equal(t, KindDivisionByZero, rtErr.Kind)
}

func TestDivisionByZeroIsCatchable(t *testing.T) {
	out := run(t, `
koshish {
	maan x = 1 / 0
} pakad e {
	likho("caught")
}
`)
	require.Equal(t, "caught\n", out)
}

func TestRecursionPastLimitRaisesRecursionError(t *testing.T) {
	program := mustParse(t, `
kaam loop(n) { wapas loop(n + 1) }
loop(0)
`)
	var out bytes.Buffer
	interpreter := New(&out, strings.NewReader(""))
	err := interpreter.Execute(program)
	require.Error(t, err)
	rtErr, ok := err.(*RuntimeError)
	require.True(t, ok)
	require.Equal(t, KindRecursion, rtErr.Kind)
}

func TestForEachOverList(t *testing.T) {
	out := run(t, `
har x mein [1, 2, 3] {
	likho(x * 2)
}
`)
	require.Equal(t, "2\n4\n6\n", out)
}

func TestListAndDictIndexing(t *testing.T) {
	out := run(t, `
maan xs = [10, 20, 30]
likho(xs[1])
xs[1] = 99
likho(xs[1])
maan d = {"a": 1, "b": 2}
likho(d["a"])
`)
	require.Equal(t, "20\n99\n1\n", out)
}

func TestRangeBuiltin(t *testing.T) {
	out := run(t, `
har i mein range(3) {
	likho(i)
}
`)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestUncaughtUserExceptionHalts(t *testing.T) {
	program := mustParse(t, `uchalo "nope"`)
	var out bytes.Buffer
	interpreter := New(&out, strings.NewReader(""))
	err := interpreter.Execute(program)
	require.Error(t, err)
	rtErr, ok := err.(*RuntimeError)
	require.True(t, ok)
	require.Equal(t, KindUserException, rtErr.Kind)
}

func TestInputReadsFromStdin(t *testing.T) {
	out := runWithInput(t, `
poocho naam
likho("hi " + naam)
`, "world\n")
	require.Equal(t, "hi world\n", out)
}

func TestAliasedBuiltinWithWrongArityRaisesTypeError(t *testing.T) {
	out := run(t, `
maan f = length
koshish {
	f()
} pakad e {
	likho("caught:" + str(e))
}
`)
	require.Contains(t, out, "caught:")
	require.Contains(t, out, "length() expects 1 argument(s), got 0")
}

func TestShortCircuitAndOr(t *testing.T) {
	out := run(t, `
kaam boom() { uchalo "should not run" }
agar jhoot aur boom() { likho("unreachable") } warna { likho("and short-circuited") }
agar sach ya boom() { likho("or short-circuited") }
`)
	require.Equal(t, "and short-circuited\nor short-circuited\n", out)
}
