// Package ast provides a parent-linked syntax tree over JavaScript and
// TypeScript source.
//
// Nodes live in an arena owned by Tree and are addressed by NodeID. A node
// stores its parent's ID rather than a pointer, so walking upward is an index
// lookup and the tree holds no reference cycles.
package ast

import "github.com/leapstack-labs/leapstyle/pkg/token"

// NodeID addresses a node within its Tree.
type NodeID int32

// NoNode is the parent of the root and the result of failed lookups.
const NoNode NodeID = -1

// Flags carry per-node facts that do not warrant a kind of their own.
type Flags uint8

// Node flags.
const (
	FlagDirective Flags = 1 << iota // expression statement is a directive prologue entry
	FlagComputed                    // member access or key uses brackets
	FlagPrefix                      // update operator precedes its argument
	FlagOptional                    // member or call uses optional chaining
)

// Node is one syntax-tree element.
type Node struct {
	Kind     Kind
	Parent   NodeID
	Field    string // role under the parent, e.g. "left", "condition", "arguments"
	Span     token.Span
	Operator string // for unary, binary, logical, assignment and update nodes
	Flags    Flags
	Parens   int // number of parenthesis pairs wrapping the node
	Children []NodeID
}

// Has reports whether all bits in f are set.
func (n *Node) Has(f Flags) bool { return n.Flags&f == f }

// Tree is an arena of nodes. The first node added is the root.
type Tree struct {
	nodes []Node
}

// NewTree returns an empty tree with room for n nodes.
func NewTree(n int) *Tree {
	return &Tree{nodes: make([]Node, 0, n)}
}

// Add appends n under parent and returns its ID. Pass NoNode to add the root.
func (t *Tree) Add(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.nodes))
	n.Parent = parent
	t.nodes = append(t.nodes, n)
	if parent != NoNode {
		p := &t.nodes[parent]
		p.Children = append(p.Children, id)
	}
	return id
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root node ID, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Node returns the node with the given ID. The pointer stays valid until the
// next Add.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Kind returns the kind of id, or Unknown for NoNode.
func (t *Tree) Kind(id NodeID) Kind {
	if id == NoNode {
		return Unknown
	}
	return t.nodes[id].Kind
}

// Parent returns the parent of id.
func (t *Tree) Parent(id NodeID) NodeID {
	if id == NoNode {
		return NoNode
	}
	return t.nodes[id].Parent
}

// Children returns the children of id in source order.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].Children
}

// Child returns the i-th child of id, or NoNode when out of range.
func (t *Tree) Child(id NodeID, i int) NodeID {
	c := t.nodes[id].Children
	if i < 0 || i >= len(c) {
		return NoNode
	}
	return c[i]
}

// ChildByField returns the first child of id with the given field, or NoNode.
func (t *Tree) ChildByField(id NodeID, field string) NodeID {
	for _, c := range t.nodes[id].Children {
		if t.nodes[c].Field == field {
			return c
		}
	}
	return NoNode
}

// Left returns the left operand of a binary or logical node.
func (t *Tree) Left(id NodeID) NodeID { return t.ChildByField(id, "left") }

// Right returns the right operand of a binary or logical node.
func (t *Tree) Right(id NodeID) NodeID { return t.ChildByField(id, "right") }

// Walk visits the subtree rooted at id in pre-order. Returning false from fn
// skips the node's children.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) {
	if id == NoNode {
		return
	}
	if !fn(id) {
		return
	}
	for _, c := range t.nodes[id].Children {
		t.Walk(c, fn)
	}
}

// Ancestors returns the chain of parents of id, nearest first.
func (t *Tree) Ancestors(id NodeID) []NodeID {
	var out []NodeID
	for p := t.Parent(id); p != NoNode; p = t.Parent(p) {
		out = append(out, p)
	}
	return out
}
