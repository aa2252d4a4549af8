package generate

import (
	"math/rand"
	"slices"

	"tsmi/internal/gamemap"
)

// NodeID addresses a node inside a Tree.
type NodeID int

// NoNode marks a missing child.
const NoNode NodeID = -1

// splitAspect is the width:height ratio beyond which the longer side is
// always the one cut.
const splitAspect = 1.25

// Node is one rectangle of a BSP tree. A node without children is a leaf.
type Node struct {
	Rect        gamemap.Rect
	Left, Right NodeID
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool { return n.Left == NoNode && n.Right == NoNode }

// Tree is a binary space partition over a Level, stored as an arena of nodes.
// Children's rectangles always partition their parent's rectangle exactly.
type Tree struct {
	Level  *gamemap.Level
	nodes  []Node
	leaves []NodeID
}

// NewTree returns an empty tree over l.
func NewTree(l *gamemap.Level) *Tree {
	return &Tree{Level: l}
}

// NewNode adds a node covering r with the given children (NoNode for none)
// and returns its ID.
func (t *Tree) NewNode(r gamemap.Rect, left, right NodeID) NodeID {
	t.nodes = append(t.nodes, Node{Rect: r, Left: left, Right: right})
	return NodeID(len(t.nodes) - 1)
}

// Node returns the node with the given ID.
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

// Root returns the first node added to the tree, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Leaves returns every leaf finalised by Partition so far, in order.
func (t *Tree) Leaves() []NodeID { return t.leaves }

// VisitLeaves calls fn for each leaf, in the order they were finalised.
func (t *Tree) VisitLeaves(fn func(id NodeID, n Node)) {
	for _, id := range t.leaves {
		fn(id, t.nodes[id])
	}
}

// Area returns the level area covered by node id.
func (t *Tree) Area(id NodeID) gamemap.Area {
	return gamemap.Area{Level: t.Level, Rect: t.nodes[id].Rect}
}

// Partition recursively splits parent until no child could be cut without
// becoming narrower than minW or shorter than minH. It returns the leaves
// of the subtree in the order they were finalised (depth first, left
// before right); they are also appended to Leaves.
//
// A parent narrower than minW or shorter than minH, or too small to cut on
// either axis, becomes a single leaf even though it is below the minimums.
// A parent that already has children is left alone and nil is returned.
// Refining an existing leaf replaces it in Leaves with its new leaves.
func (t *Tree) Partition(rng *rand.Rand, parent NodeID, minW, minH int) []NodeID {
	if !t.nodes[parent].IsLeaf() {
		return nil
	}
	t.dropLeaf(parent)
	minW, minH = max(minW, 1), max(minH, 1)
	start := len(t.leaves)
	if r := t.nodes[parent].Rect; r.Dx() < minW || r.Dy() < minH {
		t.leaves = append(t.leaves, parent)
	} else {
		t.split(rng, parent, minW, minH)
	}
	return t.leaves[start:len(t.leaves):len(t.leaves)]
}

// dropLeaf removes id from the finalised leaves, if present. The slice is
// copied so leaf lists handed out earlier are not rewritten.
func (t *Tree) dropLeaf(id NodeID) {
	for i, l := range t.leaves {
		if l == id {
			t.leaves = slices.Delete(slices.Clone(t.leaves), i, i+1)
			return
		}
	}
}

func (t *Tree) split(rng *rand.Rand, id NodeID, minW, minH int) {
	r := t.nodes[id].Rect
	w, h := r.Dx(), r.Dy()
	canV := w >= 2*minW // vertical cut, divides the width
	canH := h >= 2*minH
	if !canV && !canH {
		t.leaves = append(t.leaves, id)
		return
	}

	vertical := rng.Intn(2) == 0
	if w > h && float64(w)/float64(h) >= splitAspect {
		vertical = true
	} else if h > w && float64(h)/float64(w) >= splitAspect {
		vertical = false
	}
	if vertical && !canV {
		vertical = false
	} else if !vertical && !canH {
		vertical = true
	}

	var a, b gamemap.Rect
	if vertical {
		cut := minW + rng.Intn(w-2*minW+1)
		a = gamemap.Rect{X0: r.X0, Y0: r.Y0, X1: r.X0 + cut, Y1: r.Y1}
		b = gamemap.Rect{X0: r.X0 + cut, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
	} else {
		cut := minH + rng.Intn(h-2*minH+1)
		a = gamemap.Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y0 + cut}
		b = gamemap.Rect{X0: r.X0, Y0: r.Y0 + cut, X1: r.X1, Y1: r.Y1}
	}
	left := t.NewNode(a, NoNode, NoNode)
	right := t.NewNode(b, NoNode, NoNode)
	t.nodes[id].Left, t.nodes[id].Right = left, right

	t.split(rng, left, minW, minH)
	t.split(rng, right, minW, minH)
}

// Partition builds a tree whose root covers area and splits it fully.
func Partition(rng *rand.Rand, area gamemap.Area, minW, minH int) (*Tree, []NodeID) {
	t := NewTree(area.Level)
	root := t.NewNode(area.Rect, NoNode, NoNode)
	return t, t.Partition(rng, root, minW, minH)
}
