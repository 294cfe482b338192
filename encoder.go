package huffzip

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Encoder implements an encoder for canonical Huffman codes over the byte
// alphabet.
type Encoder struct {
	codes    []Code
	numCoded int
	minSize  byte
	maxSize  byte
}

// Init initializes this Encoder from the given symbol frequencies.  Every
// Symbol with a non-zero frequency receives a code; all others are left
// uncoded.
//
// A single coded Symbol receives the 1-bit code "0".  An empty Histogram
// yields an Encoder with no codes at all.  More than MaxDistinctSymbols coded
// Symbols is rejected with a *CapacityExceededError.
//
func (e *Encoder) Init(h *Histogram) error {
	numCoded := h.Distinct()
	if numCoded > MaxDistinctSymbols {
		return &CapacityExceededError{Distinct: numCoded, Max: MaxDistinctSymbols}
	}

	sizes := make([]byte, NumSymbols)
	switch numCoded {
	case 0:
		// pass
	case 1:
		for _, entry := range h.Entries() {
			sizes[entry.Symbol] = 1
		}
	default:
		firstPass(sizes, BuildTree(h))
		if _, maxSize := sizeRange(sizes); maxSize > maxBitsPerCode {
			limitSizes(sizes, h, maxBitsPerCode)
		}
	}

	codes, err := canonicalCodes(sizes)
	assert.Assertf(err == nil, "Huffman lengths rejected: %v", err)
	minSize, maxSize := sizeRange(sizes)

	*e = Encoder{
		codes:    codes,
		numCoded: numCoded,
		minSize:  minSize,
		maxSize:  maxSize,
	}
	return nil
}

// Encode encodes a Symbol into a Huffman-coded bit string.  The Symbol must
// have had a non-zero frequency when Init was called.
func (e Encoder) Encode(symbol Symbol) Code {
	assert.Assertf(symbol >= 0 && symbol <= MaxSymbol, "symbol %d out of range", symbol)
	hc := e.codes[symbol]
	assert.Assertf(hc.Size != 0, "symbol %d has no code", symbol)
	return hc
}

// NumCoded is the number of Symbols that have a code.
func (e Encoder) NumCoded() int {
	return e.numCoded
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.  This array can be transmitted to another party and used by
// Decoder to reconstruct this Huffman code on the receiving end.
//
func (e Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range e.codes {
		out[symbol] = hc.Size
	}
	return out
}

// Entries lists each coded Symbol with its bit length, in ascending Symbol
// order.  This is the form stored in a container Header.
func (e Encoder) Entries() []TableEntry {
	out := make([]TableEntry, 0, e.numCoded)
	for symbol, hc := range e.codes {
		if hc.Size != 0 {
			out = append(out, TableEntry{Symbol: Symbol(symbol), Size: hc.Size})
		}
	}
	return out
}

// EncodedBits returns the number of bits needed to encode data whose
// frequencies are h.
func (e Encoder) EncodedBits(h *Histogram) uint64 {
	var sum uint64
	for symbol, freq := range h {
		sum += freq * uint64(e.codes[symbol].Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol, hc := range e.codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// firstPass computes the "first pass" of Huffman code assignment, which is to
// determine and populate sizes[Symbol] from the depth of each leaf.  Depths
// may exceed maxBitsPerCode at this point; limitSizes fixes that.
func firstPass(sizes []byte, tree Tree) {
	tree.Walk(func(symbol Symbol, depth uint) {
		if depth > 255 {
			depth = 255
		}
		sizes[symbol] = byte(depth)
	})
}

// limitSizes rewrites sizes[Symbol] so that no code is longer than
// limit while the sizes still describe a complete prefix code.  Oversize
// codes are clamped to limit, then the Kraft-McMillan sum is repaired by
// pushing shorter codes one level deeper.  Finally the resulting size counts
// are handed out shortest-first to the symbols in descending frequency order.
//
func limitSizes(sizes []byte, h *Histogram, limit byte) {
	sorted := make(byFreq, 0, MaxDistinctSymbols)
	var sizeCounts [256]int
	for symbol, size := range sizes {
		if size == 0 {
			continue
		}
		sorted = append(sorted, symbolAndFreq{Symbol(symbol), h[symbol]})
		sizeCounts[size]++
	}
	sorted.Sort()

	// move all oversize codes to the limit
	for size := int(limit) + 1; size < len(sizeCounts); size++ {
		sizeCounts[limit] += sizeCounts[size]
		sizeCounts[size] = 0
	}

	// Kraft-McMillan: sum(count[size] * 2^(limit-size)) must equal
	// 2^limit.  Each iteration removes one code at the limit and moves one
	// shorter code down a level, giving it a sibling; net change -1.
	var total uint64
	for size := 1; size <= int(limit); size++ {
		total += uint64(sizeCounts[size]) << (int(limit) - size)
	}
	for total != uint64(1)<<limit {
		sizeCounts[limit]--
		for size := int(limit) - 1; size > 0; size-- {
			if sizeCounts[size] != 0 {
				sizeCounts[size]--
				sizeCounts[size+1] += 2
				break
			}
		}
		total--
	}

	index := 0
	for size := 1; size <= int(limit); size++ {
		for j := 0; j < sizeCounts[size]; j++ {
			sizes[sorted[index].symbol] = byte(size)
			index++
		}
	}
	assert.Assertf(index == len(sorted), "limitSizes assigned %d of %d symbols", index, len(sorted))
}

func sizeRange(sizes []byte) (minSize byte, maxSize byte) {
	var hasMinMax bool
	for _, size := range sizes {
		if size == 0 {
			continue
		}
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}
	return minSize, maxSize
}

// type symbolAndFreq + type byFreq {{{

type symbolAndFreq struct {
	symbol Symbol
	freq   uint64
}

// byFreq orders by descending frequency, then ascending Symbol.
type byFreq []symbolAndFreq

func (list byFreq) Len() int {
	return len(list)
}

func (list byFreq) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byFreq) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.freq != b.freq {
		return a.freq > b.freq
	}
	return a.symbol < b.symbol
}

func (list byFreq) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byFreq(nil)

// }}}
