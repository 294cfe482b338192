package huffzip

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decoder implements a decoder for canonical Huffman codes over the byte
// alphabet.  It rebuilds the code tree from the transmitted bit lengths and
// walks it one bit at a time.
type Decoder struct {
	nodes    []decodeNode
	sizes    []byte
	numCoded int
	minSize  byte
	maxSize  byte
}

// decodeNode is one node of the decoding tree.  Node 0 is the root, and every
// node is created before its children.
type decodeNode struct {
	symbol  Symbol // InvalidSymbol for internal nodes
	minSize byte   // shortest code at or below this node
	maxSize byte   // longest code at or below this node
	child   [2]int32
}

// Init initializes this Decoder.  The argument consists of zero or more bit
// lengths, one for each symbol in the code, which is used to construct the
// canonical Huffman code per the algorithm in RFC 1951 Section 3.2.2.  Symbols
// with an assigned bit length of 0 are omitted from the code entirely.
//
// Incomplete or oversubscribed lengths are rejected, as are lengths above 32
// bits.  A code with 0 symbols, or with 1 symbol of length 1, is permitted.
//
func (d *Decoder) Init(sizes []byte) error {
	assert.Assertf(len(sizes) <= NumSymbols, "len(sizes) %d > NumSymbols %d", len(sizes), NumSymbols)

	codes, err := canonicalCodes(sizes)
	if err != nil {
		return err
	}

	next := Decoder{sizes: make([]byte, len(sizes))}
	copy(next.sizes, sizes)

	for symbol, hc := range codes {
		if hc.Size == 0 {
			continue
		}
		if next.nodes == nil {
			next.nodes = make([]decodeNode, 1, 2*NumSymbols)
			next.nodes[0] = makeDecodeNode(InvalidSymbol, 0)
		}
		next.insert(Symbol(symbol), hc)
		next.numCoded++
	}

	// Children always have higher indices than their parents, so a
	// reverse sweep sees every child before its parent.
	for index := len(next.nodes) - 1; index >= 0; index-- {
		node := &next.nodes[index]
		if node.symbol != InvalidSymbol {
			continue
		}
		first := true
		for _, child := range node.child {
			if child == noChild {
				continue
			}
			c := next.nodes[child]
			if first || node.minSize > c.minSize {
				node.minSize = c.minSize
			}
			if first || node.maxSize < c.maxSize {
				node.maxSize = c.maxSize
			}
			first = false
		}
	}
	if len(next.nodes) != 0 {
		next.minSize = next.nodes[0].minSize
		next.maxSize = next.nodes[0].maxSize
	}

	*d = next
	return nil
}

func makeDecodeNode(symbol Symbol, size byte) decodeNode {
	return decodeNode{symbol: symbol, minSize: size, maxSize: size, child: [2]int32{noChild, noChild}}
}

// insert adds the path for hc, ending in a leaf for symbol.  The canonical
// code is prefix-free, so the path never runs through an existing leaf.
func (d *Decoder) insert(symbol Symbol, hc Code) {
	index := int32(0)
	for depth := byte(1); depth <= hc.Size; depth++ {
		bit := (hc.Bits >> (hc.Size - depth)) & 1
		child := d.nodes[index].child[bit]
		if child == noChild {
			child = int32(len(d.nodes))
			if depth == hc.Size {
				d.nodes = append(d.nodes, makeDecodeNode(symbol, depth))
			} else {
				d.nodes = append(d.nodes, makeDecodeNode(InvalidSymbol, 0))
			}
			d.nodes[index].child[bit] = child
		}
		index = child
	}
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If the Decode is completely successful, symbol >= 0 and minSize == maxSize.
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and at
// least (minSize - hc.Size) additional bits are required to decode this
// symbol.  No more than (maxSize - hc.Size) additional bits will be required.
//
// If the Decode fails due to unreasonable input, symbol == InvalidSymbol and
// minSize == maxSize == 0.
//
func (d Decoder) Decode(hc Code) (symbol Symbol, minSize byte, maxSize byte) {
	if len(d.nodes) == 0 {
		return InvalidSymbol, 0, 0
	}
	index := int32(0)
	for depth := byte(1); depth <= hc.Size; depth++ {
		node := d.nodes[index]
		if node.symbol != InvalidSymbol {
			return InvalidSymbol, 0, 0
		}
		index = node.child[(hc.Bits>>(hc.Size-depth))&1]
		if index == noChild {
			return InvalidSymbol, 0, 0
		}
	}
	node := d.nodes[index]
	return node.symbol, node.minSize, node.maxSize
}

// ReadSymbol reads bits from br, walking from the root until it reaches a
// leaf, and returns that leaf's Symbol.  Running out of bits returns
// io.ErrUnexpectedEOF; a bit sequence that is not a code returns an error
// naming it.
func (d Decoder) ReadSymbol(br *BitReader) (Symbol, error) {
	if len(d.nodes) == 0 {
		return InvalidSymbol, errors.New("no codes to decode")
	}
	var hc Code
	index := int32(0)
	for d.nodes[index].symbol == InvalidSymbol {
		bit, err := br.ReadBits(1)
		if err != nil {
			return InvalidSymbol, err
		}
		hc = hc.Append(1, bit)
		index = d.nodes[index].child[bit]
		if index == noChild {
			return InvalidSymbol, fmt.Errorf("invalid code %s", hc)
		}
	}
	return d.nodes[index].symbol, nil
}

// NumCoded is the number of Symbols that have a code.
func (d Decoder) NumCoded() int {
	return d.numCoded
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.maxSize
}

// SizeBySymbol returns a copy of the original bit length array used to
// initialize this Decoder.
func (d Decoder) SizeBySymbol() []byte {
	out := make([]byte, len(d.sizes))
	copy(out, d.sizes)
	return out
}

// String returns a brief description of this Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", d.numCoded, d.minSize, d.maxSize)
}

var _ fmt.Stringer = Decoder{}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Every prefix of every code is listed, shortest
// first, in the form Decode would report it.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)

	// Breadth-first, 0 before 1, visits codes in (Size, Bits) order.
	type queueItem struct {
		index int32
		hc    Code
	}
	var queue []queueItem
	if len(d.nodes) != 0 {
		queue = append(queue, queueItem{0, Code{}})
	}
	for len(queue) != 0 {
		item := queue[0]
		queue = queue[1:]
		node := d.nodes[item.index]
		fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d, %d}\n", item.hc, node.symbol, node.minSize, node.maxSize)
		for bit, child := range node.child {
			if child != noChild {
				queue = append(queue, queueItem{child, item.hc.Append(1, uint32(bit))})
			}
		}
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
