// Package parser implements the recursive-descent, panic-mode-recovering
// parser for bhasha: token sequence in, *ast.Program out (or a batched
// ErrorCollection of every syntax error found).
package parser

import (
	"github.com/bhasha-lang/bhasha/internal/ast"
	"github.com/bhasha-lang/bhasha/internal/token"
)

// syncTokens begins a new statement and is where panic-mode recovery stops
// skipping input.
var syncTokens = map[token.Type]bool{
	token.AGAR: true, token.JAB_TAK: true, token.KAAM: true, token.CLASS: true,
	token.WAPAS: true, token.KOSHISH: true, token.MAAN: true, token.HAR: true,
	token.LIKHO: true, token.LIKHO_ONLINE: true, token.POOCHO: true, token.UCHALO: true,
	token.RUK: true, token.AGE_BADHO: true,
}

// Parser consumes a fixed token slice (produced by the lexer) and builds
// an AST, recording syntax errors rather than stopping at the first one.
type Parser struct {
	tokens []token.Token
	errors []Error
	pos    int
}

// New creates a Parser over a complete token slice (EOF-terminated).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every syntax error recorded so far, in source order.
func (p *Parser) Errors() []Error {
	return p.errors
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(tag token.Type) bool {
	return p.cur().Type == tag
}

func (p *Parser) match(tags ...token.Type) bool {
	for _, tag := range tags {
		if p.check(tag) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has the given tag, otherwise
// records an expectedToken error (without advancing past the offending
// token) and returns the zero Token.
func (p *Parser) expect(tag token.Type, name string) (token.Token, bool) {
	if p.check(tag) {
		return p.advance(), true
	}
	p.errors = append(p.errors, expectedToken(p.cur().Pos, name, p.cur()))
	return token.Token{}, false
}

// synchronize implements panic-mode recovery: advance past tokens until
// one of '}', EOF, or a statement-starting keyword is reached, so parsing
// can resume and later, unrelated errors are still discovered.
func (p *Parser) synchronize() {
	for !p.check(token.EOF) {
		if p.check(token.RBRACE) {
			return
		}
		if syncTokens[p.cur().Type] {
			return
		}
		p.advance()
	}
}

// ParseProgram parses the whole token stream into a Program. It never
// stops at the first syntax error: every statement that fails to parse is
// recorded and skipped via synchronize, so unrelated errors later in the
// source are still found.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if p.pos == before {
			// A token no statement can start (e.g. a stray '}') is a
			// synchronization point, so neither the statement parse nor
			// the recovery consumed it; skip it to guarantee progress.
			p.advance()
		}
	}
	return prog
}

// Parse runs ParseProgram and surfaces any recorded errors as a single
// ErrorCollection failure, so callers get either a Program or the whole
// batch of syntax errors.
func Parse(tokens []token.Token) (*ast.Program, error) {
	p := New(tokens)
	prog := p.ParseProgram()
	if len(p.errors) > 0 {
		return nil, &ErrorCollection{Errors: p.errors}
	}
	return prog, nil
}
