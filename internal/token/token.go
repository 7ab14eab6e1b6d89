package token

// Token is a single lexical unit: a tag, its literal text (for identifiers,
// string/number literals, and the matched keyword spelling), and the source
// position of its first character.
type Token struct {
	Literal string
	Pos     Position
	Type    Type
}

// New constructs a Token at the given position.
func New(tag Type, literal string, pos Position) Token {
	return Token{Type: tag, Literal: literal, Pos: pos}
}
