package parser

import (
	"github.com/bhasha-lang/bhasha/internal/ast"
	"github.com/bhasha-lang/bhasha/internal/token"
)

// parseStatement dispatches on the current token to one grammar production,
// or falls back to assignment/expression. On failure it records the error
// and synchronizes, returning nil so the caller skips the broken statement.
func (p *Parser) parseStatement() ast.Statement {
	start := len(p.errors)
	var stmt ast.Statement

	switch p.cur().Type {
	case token.MAAN:
		stmt = p.parseVarDecl()
	case token.AGAR:
		stmt = p.parseIf()
	case token.JAB_TAK:
		stmt = p.parseWhile()
	case token.HAR:
		stmt = p.parseForEach()
	case token.KAAM:
		stmt = p.parseFunctionDef()
	case token.CLASS:
		stmt = p.parseClassDef()
	case token.WAPAS:
		stmt = p.parseReturn()
	case token.RUK:
		line := p.cur().Pos.Line
		p.advance()
		stmt = ast.NewBreakStmt(line)
	case token.AGE_BADHO:
		line := p.cur().Pos.Line
		p.advance()
		stmt = ast.NewContinueStmt(line)
	case token.KOSHISH:
		stmt = p.parseTry()
	case token.UCHALO:
		stmt = p.parseThrow()
	case token.LIKHO, token.LIKHO_ONLINE:
		stmt = p.parsePrint()
	case token.POOCHO:
		stmt = p.parseInput()
	case token.LAO:
		stmt = p.parseImport()
	case token.LBRACE:
		stmt = p.parseBlock()
	default:
		stmt = p.parseAssignmentOrExpression()
	}

	if len(p.errors) > start {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	line := p.cur().Pos.Line
	if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
		return ast.NewBlockStatement(line, nil)
	}
	var stmts []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		s := p.parseStatement()
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, "'}'")
	return ast.NewBlockStatement(line, stmts)
}

func (p *Parser) parseVarDecl() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // maan
	name, ok := p.expect(token.IDENT, "identifier")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.ASSIGN, "'='"); !ok {
		return nil
	}
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	return ast.NewVarDecl(line, name.Literal, value)
}

// parseAssignmentOrExpression parses a primary-through-postfix expression
// and, if followed by '=', reinterprets it as the matching assignment form.
func (p *Parser) parseAssignmentOrExpression() ast.Statement {
	line := p.cur().Pos.Line
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if !p.check(token.ASSIGN) {
		return ast.NewExpressionStatement(line, expr)
	}
	p.advance() // '='
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	switch target := expr.(type) {
	case *ast.Identifier:
		return ast.NewAssignment(line, target.Name, value)
	case *ast.PropertyAccess:
		return ast.NewPropertyAssignment(line, target.Target, target.Name, value)
	case *ast.IndexExpr:
		return ast.NewIndexAssignment(line, target.Target, target.Index, value)
	default:
		p.errors = append(p.errors, invalidSyntax(p.cur().Pos, "invalid assignment target"))
		return nil
	}
}

func (p *Parser) parseIf() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // agar
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	then := p.parseBlock()

	var elifs []ast.ElifBranch
	for p.check(token.WARNA_AGAR) {
		p.advance()
		ec := p.parseExpression()
		if ec == nil {
			return nil
		}
		eb := p.parseBlock()
		elifs = append(elifs, ast.ElifBranch{Condition: ec, Body: eb})
	}

	var elseBlock *ast.BlockStatement
	if p.check(token.WARNA) {
		p.advance()
		elseBlock = p.parseBlock()
	}
	return ast.NewIfStmt(line, cond, then, elifs, elseBlock)
}

func (p *Parser) parseWhile() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // jab_tak
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	body := p.parseBlock()
	return ast.NewWhileStmt(line, cond, body)
}

func (p *Parser) parseForEach() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // har
	name, ok := p.expect(token.IDENT, "identifier")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.MEIN, "'mein'"); !ok {
		return nil
	}
	iterable := p.parseExpression()
	if iterable == nil {
		return nil
	}
	body := p.parseBlock()
	return ast.NewForEachStmt(line, name.Literal, iterable, body)
}

func (p *Parser) parseParamList() []string {
	var params []string
	if p.check(token.RPAREN) {
		return params
	}
	for {
		name, ok := p.expect(token.IDENT, "parameter name")
		if !ok {
			return params
		}
		params = append(params, name.Literal)
		if !p.match(token.COMMA) {
			break
		}
	}
	return params
}

func (p *Parser) parseFunctionDef() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // kaam
	name, ok := p.expect(token.IDENT, "function name")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.LPAREN, "'('"); !ok {
		return nil
	}
	params := p.parseParamList()
	if _, ok := p.expect(token.RPAREN, "')'"); !ok {
		return nil
	}
	body := p.parseBlock()
	return ast.NewFunctionDef(line, name.Literal, params, body)
}

func (p *Parser) parseClassDef() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // class
	name, ok := p.expect(token.IDENT, "class name")
	if !ok {
		return nil
	}
	var parent string
	if p.check(token.EXTENDS) {
		p.advance()
		pname, ok := p.expect(token.IDENT, "parent class name")
		if !ok {
			return nil
		}
		parent = pname.Literal
	}
	if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
		return nil
	}
	var methods []*ast.FunctionDef
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if !p.check(token.KAAM) {
			p.errors = append(p.errors, invalidSyntax(p.cur().Pos, "expected method definition inside class body"))
			p.advance() // skip the offending token so recovery always makes progress
			p.synchronize()
			continue
		}
		m := p.parseFunctionDef()
		if fd, ok := m.(*ast.FunctionDef); ok {
			methods = append(methods, fd)
		}
	}
	p.expect(token.RBRACE, "'}'")
	return ast.NewClassDef(line, name.Literal, parent, methods)
}

func (p *Parser) parseReturn() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // wapas
	if p.check(token.RBRACE) || p.check(token.EOF) || syncTokens[p.cur().Type] {
		return ast.NewReturnStmt(line, nil)
	}
	value := p.parseExpression()
	return ast.NewReturnStmt(line, value)
}

func (p *Parser) parseTry() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // koshish
	body := p.parseBlock()
	if _, ok := p.expect(token.PAKAD, "'pakad'"); !ok {
		return nil
	}
	catchVar, ok := p.expect(token.IDENT, "catch variable name")
	if !ok {
		return nil
	}
	catchBody := p.parseBlock()
	var finallyBody *ast.BlockStatement
	if p.check(token.AAKHIR) {
		p.advance()
		finallyBody = p.parseBlock()
	}
	return ast.NewTryStmt(line, body, catchVar.Literal, catchBody, finallyBody)
}

func (p *Parser) parseThrow() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // uchalo
	value := p.parseExpression()
	if value == nil {
		return nil
	}
	return ast.NewThrowStmt(line, value)
}

func (p *Parser) parsePrint() ast.Statement {
	line := p.cur().Pos.Line
	noNewline := p.cur().Type == token.LIKHO_ONLINE
	p.advance() // likho | likho_online
	if _, ok := p.expect(token.LPAREN, "'('"); !ok {
		return nil
	}
	args := p.parseArgList()
	p.expect(token.RPAREN, "')'")
	return ast.NewPrintStmt(line, args, noNewline)
}

func (p *Parser) parseInput() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // poocho
	name, ok := p.expect(token.IDENT, "identifier")
	if !ok {
		return nil
	}
	if p.check(token.STRING) {
		prompt := p.advance()
		return ast.NewInputStmt(line, name.Literal, prompt.Literal, true)
	}
	return ast.NewInputStmt(line, name.Literal, "", false)
}

func (p *Parser) parseImport() ast.Statement {
	line := p.cur().Pos.Line
	p.advance() // lao
	name, ok := p.expect(token.IDENT, "module name")
	if !ok {
		return nil
	}
	return ast.NewImportStmt(line, name.Literal)
}

// parseArgList parses a comma-separated expression list until the current
// token can no longer start one (used for call args, list literals).
func (p *Parser) parseArgList() []ast.Expression {
	var args []ast.Expression
	if p.check(token.RPAREN) || p.check(token.RBRACK) {
		return args
	}
	for {
		arg := p.parseExpression()
		if arg == nil {
			return args
		}
		args = append(args, arg)
		if !p.match(token.COMMA) {
			break
		}
	}
	return args
}
