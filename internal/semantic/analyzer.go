package semantic

import (
	"sort"

	"github.com/bhasha-lang/bhasha/internal/ast"
)

// builtins lists every name pre-declared in the global scope before user
// code is analyzed. nil ParamCount marks a variadic or arity-permissive
// builtin (e.g. likho accepts any number of arguments).
var builtins = []struct {
	name       string
	paramCount *int
}{
	{"likho", nil},
	{"poocho", nil},
	{"length", intp(1)},
	{"append", intp(2)},
	{"pop", intp(1)},
	{"insert", intp(3)},
	{"sort", intp(1)},
	{"reverse", intp(1)},
	{"sum", intp(1)},
	{"min", nil},
	{"max", nil},
	{"upper", intp(1)},
	{"lower", intp(1)},
	{"split", intp(2)},
	{"join", intp(2)},
	{"replace", intp(3)},
	{"str", intp(1)},
	{"int", intp(1)},
	{"float", intp(1)},
	{"bool", intp(1)},
	{"type", intp(1)},
	{"abs", intp(1)},
	{"round", nil},
	{"range", nil},
}

func intp(n int) *int { return &n }

// Analyzer walks a parsed Program, resolving names against a chain of
// lexical scopes and checking break/continue/return/this/super context,
// call arity, and class parentage. It never stops at the first problem:
// every Error found in a full walk is recorded and returned together.
type Analyzer struct {
	scope         *SymbolTable
	classes       map[string]*ast.ClassDef
	errors        []Error
	loopDepth     int
	functionDepth int
	classDepth    int // >0 while walking a method body; enables yeh/upar
}

// New builds an Analyzer with a fresh global scope pre-populated with
// every builtin name.
func New() *Analyzer {
	global := NewSymbolTable()
	for _, b := range builtins {
		global.Define(&Symbol{Name: b.name, Kind: FUNCTION, Inferred: FUNC, ParamCount: b.paramCount})
	}
	return &Analyzer{scope: global, classes: make(map[string]*ast.ClassDef)}
}

// Analyze runs a full semantic pass over prog and returns every error
// found, in source order. An empty slice means the program is sound.
func (a *Analyzer) Analyze(prog *ast.Program) []Error {
	a.hoistTopLevel(prog)
	for _, stmt := range prog.Statements {
		a.visitStatement(stmt)
	}
	sort.SliceStable(a.errors, func(i, j int) bool { return a.errors[i].Line < a.errors[j].Line })
	return a.errors
}

// hoistTopLevel pre-declares every top-level function and class so that
// mutual and forward references between them resolve normally. Duplicate
// names are left to the statement walk, which reports each exactly once.
func (a *Analyzer) hoistTopLevel(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionDef:
			count := len(s.Params)
			a.scope.Define(&Symbol{Name: s.Name, Kind: FUNCTION, Inferred: FUNC, Line: s.Line(), ParamCount: &count})
		case *ast.ClassDef:
			a.classes[s.Name] = s
			a.scope.Define(&Symbol{Name: s.Name, Kind: CLASS, Inferred: CLASSY, Line: s.Line()})
		}
	}
	for _, stmt := range prog.Statements {
		if c, ok := stmt.(*ast.ClassDef); ok && c.Parent != "" {
			if _, ok := a.classes[c.Parent]; !ok {
				a.errors = append(a.errors, unknownParent(c.Line(), c.Name, c.Parent))
			}
		}
	}
}

func (a *Analyzer) pushScope() {
	a.scope = a.scope.NewChildScope()
}

func (a *Analyzer) popScope(parent *SymbolTable) {
	a.scope = parent
}

func (a *Analyzer) define(name string, kind Kind, typ Type, line int) {
	if !a.scope.Define(&Symbol{Name: name, Kind: kind, Inferred: typ, Line: line}) {
		if existing, ok := a.scope.Resolve(name); ok {
			a.errors = append(a.errors, redefinition(line, name, existing.Line))
		}
	}
}

// declareFunction binds a kaam's name in the scope it is defined in.
// Top-level definitions were already hoisted; re-visiting one is detected
// by the recorded line and skipped instead of reported as a redeclaration.
func (a *Analyzer) declareFunction(s *ast.FunctionDef) {
	if sym, ok := a.scope.ResolveLocal(s.Name); ok {
		if sym.Line != s.Line() {
			a.errors = append(a.errors, redefinition(s.Line(), s.Name, sym.Line))
		}
		return
	}
	count := len(s.Params)
	a.scope.Define(&Symbol{Name: s.Name, Kind: FUNCTION, Inferred: FUNC, Line: s.Line(), ParamCount: &count})
}

// declareClass does the same for a class statement, also registering it
// in the class table so naya and extends resolve nested classes.
func (a *Analyzer) declareClass(s *ast.ClassDef) {
	if _, ok := a.classes[s.Name]; !ok {
		a.classes[s.Name] = s
	}
	if sym, ok := a.scope.ResolveLocal(s.Name); ok {
		if sym.Line != s.Line() {
			a.errors = append(a.errors, redefinition(s.Line(), s.Name, sym.Line))
		}
		return
	}
	a.scope.Define(&Symbol{Name: s.Name, Kind: CLASS, Inferred: CLASSY, Line: s.Line()})
	if s.Parent != "" {
		if _, ok := a.classes[s.Parent]; !ok {
			a.errors = append(a.errors, unknownParent(s.Line(), s.Name, s.Parent))
		}
	}
}

func (a *Analyzer) resolve(name string, line int) (*Symbol, bool) {
	sym, ok := a.scope.Resolve(name)
	if !ok {
		a.errors = append(a.errors, undefinedName(line, name, suggestNames(name, a.scope.VisibleNames())))
		return nil, false
	}
	return sym, true
}

// Check runs parsing-independent analysis over an already-parsed program,
// returning an error implementing ErrorCollection when problems exist.
func Check(prog *ast.Program) error {
	a := New()
	errs := a.Analyze(prog)
	if len(errs) > 0 {
		return &ErrorCollection{Errors: errs}
	}
	return nil
}
