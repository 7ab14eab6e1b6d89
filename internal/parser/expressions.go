package parser

import (
	"strconv"
	"strings"

	"github.com/bhasha-lang/bhasha/internal/ast"
	"github.com/bhasha-lang/bhasha/internal/token"
)

// parseExpression enters the precedence chain at its lowest level.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for left != nil && p.check(token.YA) {
		line := p.cur().Pos.Line
		p.advance()
		right := p.parseLogicalAnd()
		if right == nil {
			return nil
		}
		left = ast.NewBinaryExpr(line, left, "ya", right)
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseEquality()
	for left != nil && p.check(token.AUR) {
		line := p.cur().Pos.Line
		p.advance()
		right := p.parseEquality()
		if right == nil {
			return nil
		}
		left = ast.NewBinaryExpr(line, left, "aur", right)
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseComparison()
	for left != nil && (p.check(token.EQ) || p.check(token.NOT_EQ)) {
		op := p.advance()
		right := p.parseComparison()
		if right == nil {
			return nil
		}
		left = ast.NewBinaryExpr(op.Pos.Line, left, op.Literal, right)
	}
	return left
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAddition()
	for left != nil && (p.check(token.GT) || p.check(token.LT) || p.check(token.GE) || p.check(token.LE)) {
		op := p.advance()
		right := p.parseAddition()
		if right == nil {
			return nil
		}
		left = ast.NewBinaryExpr(op.Pos.Line, left, op.Literal, right)
	}
	return left
}

func (p *Parser) parseAddition() ast.Expression {
	left := p.parseMultiplication()
	for left != nil && (p.check(token.PLUS) || p.check(token.MINUS)) {
		op := p.advance()
		right := p.parseMultiplication()
		if right == nil {
			return nil
		}
		left = ast.NewBinaryExpr(op.Pos.Line, left, op.Literal, right)
	}
	return left
}

func (p *Parser) parseMultiplication() ast.Expression {
	left := p.parseUnary()
	for left != nil && (p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT)) {
		op := p.advance()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		left = ast.NewBinaryExpr(op.Pos.Line, left, op.Literal, right)
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.check(token.MINUS) || p.check(token.NAHI) {
		op := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return ast.NewUnaryExpr(op.Pos.Line, op.Literal, operand)
	}
	return p.parsePostfix()
}

// parsePostfix chains index, property, method, and call suffixes onto a
// primary expression, left to right.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	for {
		switch {
		case p.check(token.LBRACK):
			line := p.cur().Pos.Line
			p.advance()
			index := p.parseExpression()
			p.expect(token.RBRACK, "']'")
			expr = ast.NewIndexExpr(line, expr, index)
		case p.check(token.DOT):
			line := p.cur().Pos.Line
			p.advance()
			name, ok := p.expect(token.IDENT, "member name")
			if !ok {
				return expr
			}
			if p.check(token.LPAREN) {
				p.advance()
				args := p.parseArgList()
				p.expect(token.RPAREN, "')'")
				expr = ast.NewMethodCall(line, expr, name.Literal, args)
			} else {
				expr = ast.NewPropertyAccess(line, expr, name.Literal)
			}
		case p.check(token.LPAREN):
			line := p.cur().Pos.Line
			p.advance()
			args := p.parseArgList()
			p.expect(token.RPAREN, "')'")
			expr = ast.NewFunctionCall(line, expr, args)
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return p.parseNumberLiteral(tok)
	case token.STRING:
		p.advance()
		return ast.NewStringLiteral(tok.Pos.Line, tok.Literal)
	case token.SACH:
		p.advance()
		return ast.NewBoolLiteral(tok.Pos.Line, true)
	case token.JHOOT:
		p.advance()
		return ast.NewBoolLiteral(tok.Pos.Line, false)
	case token.KHAALI:
		p.advance()
		return ast.NewNoneLiteral(tok.Pos.Line)
	case token.IDENT:
		p.advance()
		return ast.NewIdentifier(tok.Pos.Line, tok.Literal)
	case token.YEH:
		p.advance()
		return ast.NewThisExpr(tok.Pos.Line)
	case token.UPAR:
		p.advance()
		if _, ok := p.expect(token.LPAREN, "'('"); !ok {
			return nil
		}
		args := p.parseArgList()
		p.expect(token.RPAREN, "')'")
		return ast.NewSuperExpr(tok.Pos.Line, args)
	case token.NAYA:
		p.advance()
		name, ok := p.expect(token.IDENT, "class name")
		if !ok {
			return nil
		}
		if _, ok := p.expect(token.LPAREN, "'('"); !ok {
			return nil
		}
		args := p.parseArgList()
		p.expect(token.RPAREN, "')'")
		return ast.NewNewObject(tok.Pos.Line, name.Literal, args)
	case token.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RPAREN, "')'")
		if inner == nil {
			return nil
		}
		return ast.NewParenExpr(tok.Pos.Line, inner)
	case token.LBRACK:
		p.advance()
		elems := p.parseArgList()
		p.expect(token.RBRACK, "']'")
		return ast.NewListLiteral(tok.Pos.Line, elems)
	case token.LBRACE:
		return p.parseDictLiteral()
	case token.LAMBDA:
		return p.parseLambda()
	default:
		p.errors = append(p.errors, invalidSyntax(tok.Pos, "unexpected token in expression: "+tok.Type.String()))
		return nil
	}
}

func (p *Parser) parseNumberLiteral(tok token.Token) ast.Expression {
	if strings.Contains(tok.Literal, ".") {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errors = append(p.errors, invalidSyntax(tok.Pos, "invalid number literal: "+tok.Literal))
			return nil
		}
		return ast.NewNumberLiteral(tok.Pos.Line, tok.Literal, true, 0, f)
	}
	i, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, invalidSyntax(tok.Pos, "invalid number literal: "+tok.Literal))
		return nil
	}
	return ast.NewNumberLiteral(tok.Pos.Line, tok.Literal, false, i, 0)
}

func (p *Parser) parseDictLiteral() ast.Expression {
	line := p.cur().Pos.Line
	p.advance() // '{'
	var entries []ast.DictEntry
	if !p.check(token.RBRACE) {
		for {
			key := p.parseExpression()
			if key == nil {
				break
			}
			if _, ok := p.expect(token.COLON, "':'"); !ok {
				break
			}
			value := p.parseExpression()
			if value == nil {
				break
			}
			entries = append(entries, ast.DictEntry{Key: key, Value: value})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RBRACE, "'}'")
	return ast.NewDictLiteral(line, entries)
}

func (p *Parser) parseLambda() ast.Expression {
	line := p.cur().Pos.Line
	p.advance() // lambda
	if _, ok := p.expect(token.LPAREN, "'('"); !ok {
		return nil
	}
	params := p.parseParamList()
	if _, ok := p.expect(token.RPAREN, "')'"); !ok {
		return nil
	}
	if _, ok := p.expect(token.ARROW, "'->'"); !ok {
		return nil
	}
	body := p.parseExpression()
	if body == nil {
		return nil
	}
	return ast.NewLambda(line, params, body)
}
