package sgf

// Node is a single step in a game record: an ordered sequence of decoded
// properties plus the continuations that follow it. A node with more than
// one child is a branch point; each child starts an alternative line.
//
// A node exclusively owns its children. There are no parent references;
// ancestry is reconstructed during traversal where needed.
type Node struct {
	Tokens   []Token
	Children []*Node
}

// IsLeaf reports whether the node has no continuations.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsBranch reports whether the node has more than one continuation.
func (n *Node) IsBranch() bool {
	return len(n.Children) > 1
}

// GetUnknownTokens returns the node's unrecognized-property tokens in
// insertion order.
func (n *Node) GetUnknownTokens() []*Token {
	return n.tokensOfKind(KindUnknown)
}

// GetInvalidTokens returns the node's failed-validation tokens in
// insertion order.
func (n *Node) GetInvalidTokens() []*Token {
	return n.tokensOfKind(KindInvalid)
}

func (n *Node) tokensOfKind(kind TokenKind) []*Token {
	var tokens []*Token
	for i := range n.Tokens {
		if n.Tokens[i].Kind == kind {
			tokens = append(tokens, &n.Tokens[i])
		}
	}
	return tokens
}
