package huffzip

import (
	"container/heap"
)

// Tree is a Huffman code tree stored as an arena of nodes addressed by index.
//
// Leaves occupy the first NumLeaves() slots in ascending Symbol order.
// Internal nodes follow in the order they were created, so the last node is
// the root.  A Tree with a single node is a lone leaf; an empty Tree has no
// codes at all.
//
type Tree struct {
	nodes     []treeNode
	numLeaves int
}

type treeNode struct {
	symbol Symbol
	freq   uint64
	left   int32
	right  int32
}

const noChild = int32(-1)

func (n treeNode) isLeaf() bool {
	return n.left == noChild
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// Nodes are merged greedily, two lowest frequencies first.  Equal frequencies
// are broken by construction order: leaves by ascending Symbol, then internal
// nodes in the order they were created.  The first node removed from the
// queue becomes the left (0) child and the second the right (1) child.
//
func BuildTree(h *Histogram) Tree {
	entries := h.Entries()
	numLeaves := len(entries)
	if numLeaves == 0 {
		return Tree{}
	}

	nodes := make([]treeNode, 0, 2*numLeaves-1)
	for _, entry := range entries {
		nodes = append(nodes, treeNode{entry.Symbol, entry.Freq, noChild, noChild})
	}

	q := nodeHeap{nodes: &nodes, list: make([]int32, 0, numLeaves)}
	for index := range nodes {
		q.list = append(q.list, int32(index))
	}
	q.Init()

	for q.Len() > 1 {
		a := heap.Pop(&q).(int32)
		b := heap.Pop(&q).(int32)

		index := int32(len(nodes))
		nodes = append(nodes, treeNode{InvalidSymbol, nodes[a].freq + nodes[b].freq, a, b})
		heap.Push(&q, index)
	}

	return Tree{nodes: nodes, numLeaves: numLeaves}
}

// Len returns the total number of nodes in the Tree.
func (t Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of coded symbols.
func (t Tree) NumLeaves() int {
	return t.numLeaves
}

// Freq returns the frequency stored at the root, which equals the total of all
// leaf frequencies.
func (t Tree) Freq() uint64 {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.nodes[len(t.nodes)-1].freq
}

// Walk visits every leaf depth-first, left child before right child, and
// reports its Symbol and its depth below the root.  A lone leaf is reported
// at depth 0.
func (t Tree) Walk(fn func(symbol Symbol, depth uint)) {
	if len(t.nodes) == 0 {
		return
	}

	root := int32(len(t.nodes) - 1)
	if t.nodes[root].isLeaf() {
		fn(t.nodes[root].symbol, 0)
		return
	}

	// The stack only ever holds internal nodes.  stackItem.x tracks our
	// progress at each one:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int32
		x     byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.numLeaves))+1)

	processChild := func(child int32) {
		node := t.nodes[child]
		if node.isLeaf() {
			fn(node.symbol, uint(len(stack)))
			return
		}
		stack = append(stack, stackItem{index: child})
	}

	stack = append(stack, stackItem{index: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.nodes[top.index].left)
		case 1:
			processChild(t.nodes[top.index].right)
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	nodes *[]treeNode
	list  []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	nodes := *h.nodes
	if fa, fb := nodes[a].freq, nodes[b].freq; fa != fb {
		return fa < fb
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
