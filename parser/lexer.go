package parser

import (
	"strings"

	"github.com/mipli/sgf-parser/sgf"
)

// Lexer tokenizes SGF input. It recognizes the structural delimiters
// `(`, `)` and `;`, property identifiers and bracketed property values,
// unescaping `\]` and `\\` inside values before they reach the decoder.
type Lexer struct {
	input string
	pos   int
	line  int
	col   int
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTable()
}

// initLexTable initializes the character classification table.
func initLexTable() {
	// Initialize all to error
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	// Whitespace
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	// Structural delimiters
	chTab['('] = TreeStart
	chTab[')'] = TreeEnd
	chTab[';'] = NodeStart
	chTab['['] = ValueStart
	chTab[']'] = ValueEnd

	// Identifier characters (upper and lowercase)
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// currentChar returns the current character or 0 at end of input.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// advance moves to the next character, tracking line and column.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

// NextToken returns the next token from the input. Structural lexical
// failures (an unterminated value, a stray `]`, an unexpected character)
// return a *sgf.ParseError; the lexer never produces a partial token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		token, err := l.nextSymbol()
		if err != nil {
			return nil, err
		}
		if token.Type != NoToken {
			return token, nil
		}
	}
}

// nextSymbol identifies the next symbol.
func (l *Lexer) nextSymbol() (*Token, error) {
	if l.pos >= len(l.input) {
		return &Token{Type: EOFToken, Line: l.line, Column: l.col}, nil
	}

	ch := l.currentChar()
	line, col := l.line, l.col

	switch chTab[ch] {
	case Whitespace:
		for l.pos < len(l.input) && chTab[l.currentChar()] == Whitespace {
			l.advance()
		}
		return &Token{Type: NoToken}, nil

	case TreeStart:
		l.advance()
		return &Token{Type: TreeStart, Line: line, Column: col}, nil

	case TreeEnd:
		l.advance()
		return &Token{Type: TreeEnd, Line: line, Column: col}, nil

	case NodeStart:
		l.advance()
		return &Token{Type: NodeStart, Line: line, Column: col}, nil

	case ValueStart:
		l.advance()
		return l.gatherValue(line, col)

	case ValueEnd:
		return nil, &sgf.ParseError{
			Err:    sgf.ErrParse,
			Line:   line,
			Column: col,
			Got:    "']' without a matching '['",
		}

	case Alpha:
		return l.gatherIdent(line, col), nil

	default:
		return nil, &sgf.ParseError{
			Err:    sgf.ErrParse,
			Line:   line,
			Column: col,
			Got:    "character " + string(ch),
		}
	}
}

// gatherIdent gathers a property identifier: a run of letters.
func (l *Lexer) gatherIdent(line, col int) *Token {
	start := l.pos
	for l.pos < len(l.input) && chTab[l.currentChar()] == Alpha {
		l.advance()
	}
	return &Token{
		Type:        PropIdent,
		TokenString: l.input[start:l.pos],
		Line:        line,
		Column:      col,
	}
}

// gatherValue gathers a bracketed property value, unescaping `\]` and
// `\\`. Any other backslash sequence is kept verbatim. Newlines are
// allowed inside values.
func (l *Lexer) gatherValue(line, col int) (*Token, error) {
	var sb strings.Builder

	for l.pos < len(l.input) {
		ch := l.currentChar()
		l.advance()

		switch ch {
		case '\\':
			next := l.currentChar()
			if next == ']' || next == '\\' {
				sb.WriteByte(next)
				l.advance()
			} else {
				sb.WriteByte(ch)
			}
		case ']':
			return &Token{
				Type:        PropValue,
				TokenString: sb.String(),
				Line:        line,
				Column:      col,
			}, nil
		default:
			sb.WriteByte(ch)
		}
	}

	return nil, &sgf.ParseError{
		Err:      sgf.ErrParse,
		Line:     line,
		Column:   col,
		Expected: "']' to close property value",
		Got:      "end of input",
	}
}
