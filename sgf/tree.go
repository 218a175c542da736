package sgf

// GameTree is the root of one parsed SGF record. It owns an ordered
// sequence of root nodes; the format normally has a single root but
// permits several game trees at top level.
//
// A tree is built once by a parse and not mutated afterwards, so it is
// safe for any number of concurrent readers.
type GameTree struct {
	Roots []*Node
}

// Traverse walks every node in pre-order (parent before children, children
// left-to-right) and calls visit for each. Returning false from visit stops
// the walk. The walk is restartable; repeated calls yield the same order.
func (t *GameTree) Traverse(visit func(*Node) bool) {
	// Explicit stack, pushed in reverse so children pop left-to-right.
	stack := make([]*Node, 0, len(t.Roots))
	for i := len(t.Roots) - 1; i >= 0; i-- {
		stack = append(stack, t.Roots[i])
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(node) {
			return
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
}

// Nodes returns every node in traversal order.
func (t *GameTree) Nodes() []*Node {
	var nodes []*Node
	t.Traverse(func(n *Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// Count returns the total number of nodes in the tree.
func (t *GameTree) Count() int {
	count := 0
	t.Traverse(func(*Node) bool {
		count++
		return true
	})
	return count
}

// GetUnknownNodes returns, in traversal order, every node that owns at
// least one unrecognized-property token.
func (t *GameTree) GetUnknownNodes() []*Node {
	return t.nodesWithKind(KindUnknown)
}

// GetInvalidNodes returns, in traversal order, every node that owns at
// least one failed-validation token.
func (t *GameTree) GetInvalidNodes() []*Node {
	return t.nodesWithKind(KindInvalid)
}

func (t *GameTree) nodesWithKind(kind TokenKind) []*Node {
	var nodes []*Node
	t.Traverse(func(n *Node) bool {
		for i := range n.Tokens {
			if n.Tokens[i].Kind == kind {
				nodes = append(nodes, n)
				break
			}
		}
		return true
	})
	return nodes
}
