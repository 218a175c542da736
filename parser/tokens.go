// Package parser provides SGF lexing and game-tree parsing.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	TreeStart
	TreeEnd
	NodeStart
	PropIdent
	PropValue

	// Internal tokens used for classification
	Whitespace
	ValueStart
	ValueEnd
	Alpha
	NoToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:   "EOF",
	TreeStart:  "TREE_START",
	TreeEnd:    "TREE_END",
	NodeStart:  "NODE_START",
	PropIdent:  "PROP_IDENT",
	PropValue:  "PROP_VALUE",
	Whitespace: "WHITESPACE",
	ValueStart: "VALUE_START",
	ValueEnd:   "VALUE_END",
	Alpha:      "ALPHA",
	NoToken:    "NO_TOKEN",
	ErrorToken: "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// TokenString holds identifier text for PropIdent tokens and the
	// unescaped value text for PropValue tokens.
	TokenString string

	// Line and column for error reporting (1-based).
	Line   int
	Column int
}
