package semantic

import "github.com/bhasha-lang/bhasha/internal/ast"

// visitExpression walks expr, resolving names and checking contexts, and
// returns its best-effort inferred Type. ANY is returned whenever the
// concrete type cannot be determined statically; ANY is never flagged by
// the operator rules below.
func (a *Analyzer) visitExpression(expr ast.Expression) Type {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return NUMBER
	case *ast.StringLiteral:
		return STRING
	case *ast.BoolLiteral:
		return BOOL
	case *ast.NoneLiteral:
		return NONE
	case *ast.ListLiteral:
		for _, el := range e.Elements {
			a.visitExpression(el)
		}
		return LIST
	case *ast.DictLiteral:
		for _, entry := range e.Entries {
			a.visitExpression(entry.Key)
			a.visitExpression(entry.Value)
		}
		return DICT
	case *ast.Identifier:
		if sym, ok := a.resolve(e.Name, e.Line()); ok {
			return sym.Inferred
		}
		return ANY
	case *ast.ThisExpr:
		if a.classDepth == 0 {
			a.errors = append(a.errors, contextError(e.Line(), "'yeh' used outside a method body"))
		}
		return ANY
	case *ast.SuperExpr:
		if a.classDepth == 0 {
			a.errors = append(a.errors, contextError(e.Line(), "'upar' used outside a method body"))
		}
		for _, arg := range e.Args {
			a.visitExpression(arg)
		}
		return ANY
	case *ast.NewObject:
		if _, ok := a.classes[e.ClassName]; !ok {
			a.errors = append(a.errors, undefinedName(e.Line(), e.ClassName, suggestNames(e.ClassName, a.classNames())))
		}
		for _, arg := range e.Args {
			a.visitExpression(arg)
		}
		return ANY
	case *ast.MethodCall:
		a.visitExpression(e.Target)
		for _, arg := range e.Args {
			a.visitExpression(arg)
		}
		return ANY
	case *ast.PropertyAccess:
		a.visitExpression(e.Target)
		return ANY
	case *ast.FunctionCall:
		a.visitCall(e)
		return ANY
	case *ast.Lambda:
		outer := a.scope
		a.pushScope()
		for _, p := range e.Params {
			a.define(p, PARAMETER, ANY, e.Line())
		}
		a.functionDepth++
		a.visitExpression(e.Body)
		a.functionDepth--
		a.popScope(outer)
		return FUNC
	case *ast.BinaryExpr:
		return a.visitBinary(e)
	case *ast.UnaryExpr:
		return a.visitUnary(e)
	case *ast.ParenExpr:
		return a.visitExpression(e.Inner)
	case *ast.IndexExpr:
		a.visitExpression(e.Target)
		a.visitExpression(e.Index)
		return ANY
	}
	return ANY
}

func (a *Analyzer) classNames() []string {
	names := make([]string, 0, len(a.classes))
	for name := range a.classes {
		names = append(names, name)
	}
	return names
}

func (a *Analyzer) visitCall(call *ast.FunctionCall) {
	for _, arg := range call.Args {
		a.visitExpression(arg)
	}
	ident, ok := call.Callee.(*ast.Identifier)
	if !ok {
		a.visitExpression(call.Callee)
		return
	}
	sym, ok := a.resolve(ident.Name, call.Line())
	if !ok {
		return
	}
	// A variable or parameter may hold a function value at runtime, so
	// only a class name is statically known to not be callable; arity is
	// checked only when the callee resolved to a declared function.
	if sym.Kind == CLASS {
		a.errors = append(a.errors, notCallable(call.Line(), ident.Name))
		return
	}
	if sym.Kind == FUNCTION && sym.ParamCount != nil && *sym.ParamCount != len(call.Args) {
		a.errors = append(a.errors, arityMismatch(call.Line(), ident.Name, *sym.ParamCount, len(call.Args)))
	}
}

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
var comparisonOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}
var equalityOps = map[string]bool{"==": true, "!=": true}
var logicalOps = map[string]bool{"aur": true, "ya": true}

func (a *Analyzer) visitBinary(b *ast.BinaryExpr) Type {
	left := a.visitExpression(b.Left)
	right := a.visitExpression(b.Right)

	switch {
	case logicalOps[b.Operator]:
		return BOOL
	case equalityOps[b.Operator]:
		if left != ANY && right != ANY && left != right {
			a.errors = append(a.errors, typeError(b.Line(), "'"+b.Operator+"' requires operands of the same type"))
		}
		return BOOL
	case b.Operator == "+":
		switch {
		case left == ANY || right == ANY:
			return ANY
		case left == NUMBER && right == NUMBER:
			return NUMBER
		case left == STRING && right == STRING:
			return STRING
		case left == LIST && right == LIST:
			return LIST
		default:
			a.errors = append(a.errors, typeError(b.Line(), "'+' requires two numbers, two strings, or two lists"))
			return ANY
		}
	case arithmeticOps[b.Operator]:
		if numericOrAny(left) && numericOrAny(right) {
			return NUMBER
		}
		a.errors = append(a.errors, typeError(b.Line(), "'"+b.Operator+"' requires two numbers"))
		return NUMBER
	case comparisonOps[b.Operator]:
		if left == ANY || right == ANY {
			return BOOL
		}
		if left != right || (left != NUMBER && left != STRING) {
			a.errors = append(a.errors, typeError(b.Line(), "'"+b.Operator+"' requires two comparable operands of the same type"))
		}
		return BOOL
	}
	return ANY
}

func (a *Analyzer) visitUnary(u *ast.UnaryExpr) Type {
	operand := a.visitExpression(u.Operand)
	switch u.Operator {
	case "-":
		if numericOrAny(operand) {
			return NUMBER
		}
		a.errors = append(a.errors, typeError(u.Line(), "unary '-' requires a number"))
		return NUMBER
	case "nahi":
		if operand != BOOL && operand != ANY {
			a.errors = append(a.errors, typeError(u.Line(), "unary 'nahi' requires a boolean"))
		}
		return BOOL
	}
	return ANY
}

func numericOrAny(t Type) bool {
	return t == NUMBER || t == ANY
}
