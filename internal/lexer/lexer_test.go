package lexer

import (
	"testing"

	"github.com/bhasha-lang/bhasha/internal/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `maan x = 10 + 3.5 * (2 - 1)`

	tests := []struct {
		tag     token.Type
		literal string
	}{
		{token.MAAN, "maan"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.NUMBER, "10"},
		{token.PLUS, "+"},
		{token.NUMBER, "3.5"},
		{token.STAR, "*"},
		{token.LPAREN, "("},
		{token.NUMBER, "2"},
		{token.MINUS, "-"},
		{token.NUMBER, "1"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.tag {
			t.Fatalf("token %d: type = %s, want %s", i, tok.Type, tt.tag)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.literal)
		}
	}
}

func TestKeywordsAndSynonyms(t *testing.T) {
	input := `agar warna_agar warna jab_tak har mein ruk age_badho kaam wapas class extends naya yeh upar koshish pakad aakhir uchalo sach jhoot khaali nahi aur ya && || lao likho likho_online poocho lambda ->`
	toks, errs := TokenizeSafe(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}
	wantTags := []token.Type{
		token.AGAR, token.WARNA_AGAR, token.WARNA, token.JAB_TAK, token.HAR, token.MEIN,
		token.RUK, token.AGE_BADHO, token.KAAM, token.WAPAS, token.CLASS, token.EXTENDS,
		token.NAYA, token.YEH, token.UPAR, token.KOSHISH, token.PAKAD, token.AAKHIR,
		token.UCHALO, token.SACH, token.JHOOT, token.KHAALI, token.NAHI, token.AUR, token.YA,
		token.AUR, token.YA, token.LAO, token.LIKHO, token.LIKHO_ONLINE, token.POOCHO,
		token.LAMBDA, token.ARROW, token.EOF,
	}
	if len(toks) != len(wantTags) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantTags))
	}
	for i, want := range wantTags {
		if toks[i].Type != want {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, want)
		}
	}
}

func TestDevanagariIdentifier(t *testing.T) {
	input := `maan नाम = "दुनिया"`
	toks, errs := TokenizeSafe(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[1].Type != token.IDENT || toks[1].Literal != "नाम" {
		t.Fatalf("got %+v, want IDENT नाम", toks[1])
	}
}

func TestLineComment(t *testing.T) {
	input := "maan x = 1 // this is ignored\nlikho(x)"
	toks, errs := TokenizeSafe(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	// maan x = 1 likho ( x ) EOF
	if len(toks) != 8 {
		t.Fatalf("got %d tokens, want 8: %+v", len(toks), toks)
	}
}

func TestUnterminatedStringContinuesLexing(t *testing.T) {
	input := "maan x = \"oops\nlikho(1)"
	toks, errs := TokenizeSafe(input)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want exactly 1: %v", len(errs), errs)
	}
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("final token = %+v, want EOF", toks[len(toks)-1])
	}
}

func TestMultipleIllegalCharactersOnOneLine(t *testing.T) {
	input := "maan x = @ # $"
	toks, errs := TokenizeSafe(input)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}
	for i, e := range errs {
		if e.Pos.Line != 1 {
			t.Errorf("error %d on line %d, want line 1", i, e.Pos.Line)
		}
	}
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("lexing did not continue to EOF: %+v", toks)
	}
}

func TestSecondDecimalPointIsLexicalErrorButKeepsScanning(t *testing.T) {
	input := "maan x = 1.2.3"
	_, errs := TokenizeSafe(input)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestTokenizeFailsAsCollectionWhenErrorsPresent(t *testing.T) {
	_, err := Tokenize("maan x = @")
	if err == nil {
		t.Fatal("expected an error collection, got nil")
	}
	if _, ok := err.(*ErrorCollection); !ok {
		t.Fatalf("error is %T, want *ErrorCollection", err)
	}
}

func TestEmptySourceYieldsOnlyEOF(t *testing.T) {
	toks, errs := TokenizeSafe("")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(toks) != 1 || toks[0].Type != token.EOF {
		t.Fatalf("got %+v, want [EOF]", toks)
	}
}

func TestPositionsAreNonDecreasing(t *testing.T) {
	input := "maan x = 1\nlikho(x)\n"
	toks, _ := TokenizeSafe(input)
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1].Pos, toks[i].Pos
		if cur.Line < prev.Line || (cur.Line == prev.Line && cur.Column < prev.Column) {
			t.Fatalf("position went backwards at token %d: %v -> %v", i, prev, cur)
		}
	}
}
