package parser

import (
	"github.com/mipli/sgf-parser/sgf"
)

// Parser builds an sgf.GameTree from SGF input in a single pass.
//
// Structural malformation aborts the whole parse with a *sgf.ParseError;
// content-level problems in property values never do. They are recorded on
// the affected node as Unknown or Invalid tokens instead.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
}

// New creates a parser for the given input.
func New(input string) *Parser {
	return &Parser{
		lexer: NewLexer(input),
	}
}

// Parse is the single entry point: it tokenizes input, builds the game
// tree and decodes every property.
func Parse(input string) (*sgf.GameTree, error) {
	return New(input).Parse()
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() error {
	token, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.currentToken = token
	return nil
}

// Parse consumes the whole input and returns the resulting tree.
//
// The top level must be one or more parenthesized game trees. Empty or
// whitespace-only input is a structural failure; an empty scope `()` is
// valid and yields no nodes.
func (p *Parser) Parse() (*sgf.GameTree, error) {
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	if p.currentToken.Type == EOFToken {
		return nil, p.errorf("'(' to open a game tree", "end of input")
	}

	tree := &sgf.GameTree{}
	for p.currentToken.Type == TreeStart {
		if err := p.parseScope(nil, tree); err != nil {
			return nil, err
		}
	}

	if p.currentToken.Type != EOFToken {
		return nil, p.errorf("'(' to open a game tree", p.currentToken.describe())
	}

	return tree, nil
}

// parseScope parses one `( ... )` scope. New nodes chain from the current
// attachment point: sequential nodes form a linear chain, and nested
// scopes recurse with the attachment point fixed at entry, so several
// nested scopes sharing one attachment point become sibling branches.
// Leaving the scope restores the caller's attachment point.
func (p *Parser) parseScope(parent *sgf.Node, tree *sgf.GameTree) error {
	// Consume the opening '('
	if err := p.nextToken(); err != nil {
		return err
	}

	current := parent
	for {
		switch p.currentToken.Type {
		case NodeStart:
			node, err := p.parseNode()
			if err != nil {
				return err
			}
			if current == nil {
				tree.Roots = append(tree.Roots, node)
			} else {
				current.Children = append(current.Children, node)
			}
			current = node

		case TreeStart:
			if err := p.parseScope(current, tree); err != nil {
				return err
			}

		case TreeEnd:
			return p.nextToken()

		case PropIdent:
			return p.errorf("';' to start a node", "property "+p.currentToken.TokenString)

		case PropValue:
			return p.errorf("a property identifier", "value")

		default:
			return p.errorf("')' to close the game tree", p.currentToken.describe())
		}
	}
}

// parseNode parses one `;` node: zero or more properties, each an
// identifier followed by one or more bracketed values. Every property
// decodes to exactly one token.
func (p *Parser) parseNode() (*sgf.Node, error) {
	// Consume the ';'
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	node := &sgf.Node{}
	for p.currentToken.Type == PropIdent {
		ident := p.currentToken.TokenString
		if err := p.nextToken(); err != nil {
			return nil, err
		}

		if p.currentToken.Type != PropValue {
			return nil, p.errorf("'[' to open a value for "+ident, p.currentToken.describe())
		}

		var values []string
		for p.currentToken.Type == PropValue {
			values = append(values, p.currentToken.TokenString)
			if err := p.nextToken(); err != nil {
				return nil, err
			}
		}

		node.Tokens = append(node.Tokens, decodeProperty(ident, values))
	}

	if p.currentToken.Type == PropValue {
		return nil, p.errorf("a property identifier", "value")
	}

	return node, nil
}

// errorf builds a *sgf.ParseError at the current token's position.
func (p *Parser) errorf(expected, got string) error {
	err := &sgf.ParseError{
		Err:      sgf.ErrParse,
		Expected: expected,
		Got:      got,
	}
	if p.currentToken != nil {
		err.Line = p.currentToken.Line
		err.Column = p.currentToken.Column
	}
	return err
}

// describe returns a human-readable description of a token for error
// messages.
func (t *Token) describe() string {
	switch t.Type {
	case EOFToken:
		return "end of input"
	case TreeStart:
		return "'('"
	case TreeEnd:
		return "')'"
	case NodeStart:
		return "';'"
	case PropIdent:
		return "identifier " + t.TokenString
	case PropValue:
		return "value"
	default:
		return t.Type.String()
	}
}
