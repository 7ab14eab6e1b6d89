package semantic

import (
	"testing"

	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/parser"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, src string) []Error {
	t.Helper()
	toks, lexErrs := lexer.TokenizeSafe(src)
	require.Empty(t, lexErrs)
	p := parser.New(toks)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())
	return New().Analyze(prog)
}

func TestValidProgramHasNoErrors(t *testing.T) {
	errs := check(t, `
maan x = 5
agar x > 0 {
	likho(x)
}
kaam add(a, b) {
	wapas a + b
}
likho(add(1, 2))
`)
	require.Empty(t, errs)
}

func TestUndefinedNameSuggestsClosestMatch(t *testing.T) {
	errs := check(t, `
maan naam = "a"
likho(naaam)
`)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Message, "undefined name 'naaam'")
	require.Contains(t, errs[0].Message, "naam")
}

func TestRedeclarationInSameScopeIsRejected(t *testing.T) {
	errs := check(t, `
maan x = 1
maan x = 2
`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "already declared")
}

func TestShadowingInNestedScopeIsAllowed(t *testing.T) {
	errs := check(t, `
maan x = 1
agar sach {
	maan x = 2
	likho(x)
}
`)
	require.Empty(t, errs)
}

func TestBreakOutsideLoopIsRejected(t *testing.T) {
	errs := check(t, `ruk`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "'ruk' used outside a loop")
}

func TestReturnOutsideFunctionIsRejected(t *testing.T) {
	errs := check(t, `wapas 1`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "outside a function")
}

func TestThisOutsideMethodIsRejected(t *testing.T) {
	errs := check(t, `likho(yeh)`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "'yeh' used outside a method body")
}

func TestThisInsideMethodIsAllowed(t *testing.T) {
	errs := check(t, `
class Pashu {
	kaam __init__(naam) {
		yeh.naam = naam
	}
}
`)
	require.Empty(t, errs)
}

func TestCallArityMismatchIsReported(t *testing.T) {
	errs := check(t, `
kaam add(a, b) {
	wapas a + b
}
add(1)
`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "expects 2 argument(s), got 1")
}

func TestExtendingUnknownClassIsReported(t *testing.T) {
	errs := check(t, `class B extends Ghost { kaam __init__() { maan x = 1 } }`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "unknown class 'Ghost'")
}

func TestCallingAVariableHoldingAFunctionIsAllowed(t *testing.T) {
	errs := check(t, `
kaam make_adder(n) { wapas lambda(x) -> x + n }
maan add5 = make_adder(5)
likho(add5(3))
`)
	require.Empty(t, errs)
}

func TestNestedFunctionIsVisibleInItsScope(t *testing.T) {
	errs := check(t, `
kaam outer() {
	kaam inner(a) { wapas a }
	wapas inner(1)
}
`)
	require.Empty(t, errs)
}

func TestListConcatenationIsAccepted(t *testing.T) {
	errs := check(t, `maan xs = [1] + [2]`)
	require.Empty(t, errs)
}

func TestEqualityBetweenDifferentTypesIsReported(t *testing.T) {
	errs := check(t, `maan x = 1 == "ek"`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "same type")
}

func TestMismatchedArithmeticOperandsIsReported(t *testing.T) {
	errs := check(t, `maan x = "a" - 1`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "requires two numbers")
}
