package semantic

import "github.com/bhasha-lang/bhasha/internal/ast"

func (a *Analyzer) visitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		a.visitBlock(s)
	case *ast.ExpressionStatement:
		a.visitExpression(s.Expr)
	case *ast.VarDecl:
		typ := a.visitExpression(s.Value)
		a.define(s.Name, VARIABLE, typ, s.Line())
	case *ast.Assignment:
		a.resolve(s.Name, s.Line())
		a.visitExpression(s.Value)
	case *ast.IndexAssignment:
		a.visitExpression(s.Target)
		a.visitExpression(s.Index)
		a.visitExpression(s.Value)
	case *ast.PropertyAssignment:
		a.visitExpression(s.Target)
		a.visitExpression(s.Value)
	case *ast.BreakStmt:
		if a.loopDepth == 0 {
			a.errors = append(a.errors, contextError(s.Line(), "'ruk' used outside a loop"))
		}
	case *ast.ContinueStmt:
		if a.loopDepth == 0 {
			a.errors = append(a.errors, contextError(s.Line(), "'age_badho' used outside a loop"))
		}
	case *ast.ReturnStmt:
		if a.functionDepth == 0 {
			a.errors = append(a.errors, contextError(s.Line(), "'wapas' used outside a function"))
		}
		if s.Value != nil {
			a.visitExpression(s.Value)
		}
	case *ast.PrintStmt:
		for _, arg := range s.Args {
			a.visitExpression(arg)
		}
	case *ast.InputStmt:
		a.defineIfAbsent(s.VarName, s.Line())
	case *ast.ThrowStmt:
		a.visitExpression(s.Value)
	case *ast.ImportStmt:
		// module resolution is declared but deferred past this pass
	case *ast.IfStmt:
		a.visitExpression(s.Condition)
		a.visitBlock(s.Then)
		for _, elif := range s.Elifs {
			a.visitExpression(elif.Condition)
			a.visitBlock(elif.Body)
		}
		if s.Else != nil {
			a.visitBlock(s.Else)
		}
	case *ast.WhileStmt:
		a.visitExpression(s.Condition)
		a.loopDepth++
		a.visitBlock(s.Body)
		a.loopDepth--
	case *ast.ForEachStmt:
		a.visitExpression(s.Iterable)
		outer := a.scope
		a.pushScope()
		a.define(s.VarName, VARIABLE, ANY, s.Line())
		a.loopDepth++
		a.visitBlock(s.Body)
		a.loopDepth--
		a.popScope(outer)
	case *ast.TryStmt:
		a.visitBlock(s.Body)
		outer := a.scope
		a.pushScope()
		a.define(s.CatchVar, VARIABLE, ANY, s.Line())
		for _, inner := range s.CatchBody.Statements {
			a.visitStatement(inner)
		}
		a.popScope(outer)
		if s.FinallyBody != nil {
			a.visitBlock(s.FinallyBody)
		}
	case *ast.FunctionDef:
		a.declareFunction(s)
		a.visitFunctionBody(s.Params, s.Body)
	case *ast.ClassDef:
		a.declareClass(s)
		outer := a.scope
		a.pushScope()
		for _, method := range s.Methods {
			a.classDepth++
			a.visitFunctionBody(method.Params, method.Body)
			a.classDepth--
		}
		a.popScope(outer)
	}
}

func (a *Analyzer) visitBlock(block *ast.BlockStatement) {
	outer := a.scope
	a.pushScope()
	for _, stmt := range block.Statements {
		a.visitStatement(stmt)
	}
	a.popScope(outer)
}

func (a *Analyzer) visitFunctionBody(params []string, body *ast.BlockStatement) {
	outer := a.scope
	a.pushScope()
	for _, p := range params {
		a.define(p, PARAMETER, ANY, body.Line())
	}
	a.functionDepth++
	for _, stmt := range body.Statements {
		a.visitStatement(stmt)
	}
	a.functionDepth--
	a.popScope(outer)
}

// defineIfAbsent declares name as an ANY-typed variable unless it is
// already visible, matching poocho's "assign into existing or declare
// fresh" behavior.
func (a *Analyzer) defineIfAbsent(name string, line int) {
	if _, ok := a.scope.Resolve(name); ok {
		return
	}
	a.scope.Define(&Symbol{Name: name, Kind: VARIABLE, Inferred: ANY, Line: line})
}
