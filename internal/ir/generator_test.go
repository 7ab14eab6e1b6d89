package ir

import (
	"strings"
	"testing"

	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/parser"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, src string) *Program {
	t.Helper()
	toks, lexErrs := lexer.TokenizeSafe(src)
	require.Empty(t, lexErrs)
	p := parser.New(toks)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())
	return Generate(prog)
}

func TestArithmeticLoweringProducesSequentialTemps(t *testing.T) {
	prog := generate(t, `maan x = 3 + 4`)
	dump := prog.Dump()
	require.Contains(t, dump, "t0 = 3")
	require.Contains(t, dump, "t1 = 4")
	require.Contains(t, dump, "t2 = t0 + t1")
	require.Contains(t, dump, "x = t2")
}

func TestTempIndicesAreUniqueWithinProgram(t *testing.T) {
	prog := generate(t, `
maan a = 1 + 2
maan b = 3 + 4
maan c = a + b
`)
	seen := make(map[string]bool)
	for _, instr := range prog.Instructions {
		if c, ok := instr.(Const); ok {
			require.False(t, seen[c.Dest], "duplicate temp %s", c.Dest)
			seen[c.Dest] = true
		}
	}
}

func TestWhileLoweringEmitsLabelsAndCondJump(t *testing.T) {
	prog := generate(t, `
maan i = 0
jab_tak i < 10 {
	i = i + 1
}
`)
	dump := prog.Dump()
	require.True(t, strings.Contains(dump, "while_start_"))
	require.True(t, strings.Contains(dump, "IF t"))
	require.True(t, strings.Contains(dump, "GOTO while_body_"))
}

func TestFunctionDefEmitsFuncLabelAndTerminatingReturn(t *testing.T) {
	prog := generate(t, `
kaam add(a, b) {
	wapas a + b
}
`)
	require.IsType(t, FuncLabel{}, prog.Instructions[0])
	require.Equal(t, "add", prog.Instructions[0].(FuncLabel).Name)
	last := prog.Instructions[len(prog.Instructions)-1]
	_, ok := last.(Return)
	require.True(t, ok)
}

func TestFunctionCallLowersParamsThenCall(t *testing.T) {
	prog := generate(t, `
kaam add(a, b) {
	wapas a + b
}
likho(add(1, 2))
`)
	dump := prog.Dump()
	require.Contains(t, dump, "PARAM t")
	require.Contains(t, dump, "CALL add 2")
}

func TestForEachLowersToIndexCountedWhile(t *testing.T) {
	prog := generate(t, `
har x mein [1, 2] {
	likho(x)
}
`)
	dump := prog.Dump()
	require.Contains(t, dump, "foreach_start_")
	require.Contains(t, dump, "PARAM t0")
	require.Contains(t, dump, "CALL length 1")
	require.Contains(t, dump, "foreach_end_")
}

func TestBreakAndContinueLowerToLoopJumps(t *testing.T) {
	prog := generate(t, `
jab_tak sach {
	agar sach { ruk }
	age_badho
}
`)
	var jumps []Jump
	for _, instr := range prog.Instructions {
		if j, ok := instr.(Jump); ok {
			jumps = append(jumps, j)
		}
	}
	require.NotEmpty(t, jumps)

	var toEnd, toStart int
	for _, j := range jumps {
		switch {
		case strings.HasPrefix(j.Target, "while_end_"):
			toEnd++
		case strings.HasPrefix(j.Target, "while_start_"):
			toStart++
		}
	}
	require.Equal(t, 1, toEnd, "ruk should jump to the loop end")
	require.Equal(t, 2, toStart, "age_badho and the back-edge should jump to the loop start")
}
