package token

// Type represents the tag of a Token. The tag set is closed: keywords,
// punctuation, literal classes, operators, and EOF.
type Type int

const (
	// Special tokens.
	ILLEGAL Type = iota
	EOF

	// Literal classes.
	IDENT
	NUMBER
	STRING

	// Keywords.
	MAAN         // maan          (var decl)
	LIKHO        // likho         (print, trailing newline)
	LIKHO_ONLINE // likho_online  (print, no trailing newline)
	POOCHO       // poocho        (input)
	AGAR         // agar          (if)
	WARNA_AGAR   // warna_agar    (elif)
	WARNA        // warna         (else)
	JAB_TAK      // jab_tak       (while)
	HAR          // har           (for-each)
	MEIN         // mein          (in, part of for-each)
	RUK          // ruk           (break)
	AGE_BADHO    // age_badho     (continue)
	KAAM         // kaam          (function def)
	WAPAS        // wapas         (return)
	LAMBDA       // lambda
	CLASS        // class
	EXTENDS      // extends
	NAYA         // naya          (new)
	YEH          // yeh           (this)
	UPAR         // upar          (super)
	KOSHISH      // koshish       (try)
	PAKAD        // pakad         (catch)
	AAKHIR       // aakhir        (finally)
	UCHALO       // uchalo        (throw)
	SACH         // sach          (true)
	JHOOT        // jhoot         (false)
	KHAALI       // khaali        (none/null)
	NAHI         // nahi          (not)
	AUR          // aur           (and)
	YA           // ya            (or)
	LAO          // lao           (import)

	// Punctuation.
	LPAREN
	RPAREN
	LBRACK
	RBRACK
	LBRACE
	RBRACE
	COMMA
	DOT
	COLON
	ARROW // ->

	// Operators.
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	ASSIGN
	EQ
	NOT_EQ
	GT
	LT
	GE
	LE
)

var typeNames = map[Type]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	IDENT: "IDENT", NUMBER: "NUMBER", STRING: "STRING",
	MAAN: "maan", LIKHO: "likho", LIKHO_ONLINE: "likho_online", POOCHO: "poocho",
	AGAR: "agar", WARNA_AGAR: "warna_agar", WARNA: "warna",
	JAB_TAK: "jab_tak", HAR: "har", MEIN: "mein",
	RUK: "ruk", AGE_BADHO: "age_badho",
	KAAM: "kaam", WAPAS: "wapas", LAMBDA: "lambda",
	CLASS: "class", EXTENDS: "extends", NAYA: "naya",
	YEH: "yeh", UPAR: "upar",
	KOSHISH: "koshish", PAKAD: "pakad", AAKHIR: "aakhir", UCHALO: "uchalo",
	SACH: "sach", JHOOT: "jhoot", KHAALI: "khaali",
	NAHI: "nahi", AUR: "aur", YA: "ya", LAO: "lao",
	LPAREN: "(", RPAREN: ")", LBRACK: "[", RBRACK: "]",
	LBRACE: "{", RBRACE: "}", COMMA: ",", DOT: ".", COLON: ":", ARROW: "->",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	ASSIGN: "=", EQ: "==", NOT_EQ: "!=", GT: ">", LT: "<", GE: ">=", LE: "<=",
}

// String returns the canonical surface spelling of a token tag, used in
// error messages ("expected ')'").
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// keywords maps the fixed surface spelling to its token tag. &&/|| are
// accepted as synonyms for aur/ya at the lexer level, not here.
var keywords = map[string]Type{
	"maan": MAAN, "likho": LIKHO, "likho_online": LIKHO_ONLINE, "poocho": POOCHO,
	"agar": AGAR, "warna_agar": WARNA_AGAR, "warna": WARNA,
	"jab_tak": JAB_TAK, "har": HAR, "mein": MEIN,
	"ruk": RUK, "age_badho": AGE_BADHO,
	"kaam": KAAM, "wapas": WAPAS, "lambda": LAMBDA,
	"class": CLASS, "extends": EXTENDS, "naya": NAYA,
	"yeh": YEH, "upar": UPAR,
	"koshish": KOSHISH, "pakad": PAKAD, "aakhir": AAKHIR, "uchalo": UCHALO,
	"sach": SACH, "jhoot": JHOOT, "khaali": KHAALI,
	"nahi": NAHI, "aur": AUR, "ya": YA, "lao": LAO,
}

// LookupIdent returns the keyword tag for name, or IDENT if name is not a
// reserved word.
func LookupIdent(name string) Type {
	if tag, ok := keywords[name]; ok {
		return tag
	}
	return IDENT
}
