package calculator

import (
	"strings"
)

// node is a node in the expression tree. Every node is either a literal or a
// binary operation which exclusively owns both of its children.
type node struct {
	kind nodeKind

	val Value
	op  OperatorKind
	sym string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeLit    // push val
	nodeBinary // evaluate left, evaluate right, apply op
)

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeLit:
		b.WriteString(n.val.String())
	case nodeBinary:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.sym)
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("calculator: invalid node kind after writing " + b.String())
	}
}

// eval computes the node's value. The recursion depth is the depth of the
// tree.
func (n *node) eval() Value {
	switch n.kind {
	case nodeLit:
		return n.val
	case nodeBinary:
		// Both sides are always evaluated, even for && and ||.
		l := n.left.eval()
		r := n.right.eval()
		return n.op.apply(l, r)
	default:
		panic("calculator: invalid AST node")
	}
}

// instr is one step of a flattened postfix program: either push a literal or
// apply an operator to the top two values.
type instr struct {
	lit Value
	op  OperatorKind
}
