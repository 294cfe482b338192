package huffzip

import (
	"fmt"
)

// canonicalCodes assigns the canonical Huffman code for the given per-Symbol
// bit lengths, per RFC 1951 Section 3.2.2: codes of each length are
// consecutive integers in ascending Symbol order, and every length starts
// where the previous one left off, shifted left by one.  A length of 0 means
// the Symbol is uncoded.
//
// The lengths must describe a complete prefix code (Kraft sum of exactly 1),
// except that a lone Symbol of length 1 is permitted.
//
func canonicalCodes(sizes []byte) ([]Code, error) {
	var sizeCounts [maxBitsPerCode + 1]uint64
	var numCoded int
	var maxSize byte
	for symbol, size := range sizes {
		if size == 0 {
			continue
		}
		if size > maxBitsPerCode {
			return nil, fmt.Errorf("symbol %d: invalid bit length %d, max %d", symbol, size, maxBitsPerCode)
		}
		if maxSize < size {
			maxSize = size
		}
		sizeCounts[size]++
		numCoded++
	}

	codes := make([]Code, len(sizes))
	if numCoded == 0 {
		return codes, nil
	}

	var nextCodes [maxBitsPerCode + 1]uint64
	var code uint64
	for size := byte(1); size <= maxSize; size++ {
		code = (code + sizeCounts[size-1]) << 1
		nextCodes[size] = code
	}

	// code + sizeCounts[maxSize] is the Kraft sum scaled by 2^maxSize.
	kraft := code + sizeCounts[maxSize]
	if numCoded == 1 && maxSize == 1 {
		// pass
	} else if kraft != uint64(1)<<maxSize {
		return nil, fmt.Errorf("bit lengths do not form a complete prefix code: Kraft sum %d/%d", kraft, uint64(1)<<maxSize)
	}

	for symbol, size := range sizes {
		if size == 0 {
			continue
		}
		codes[symbol] = MakeCode(size, uint32(nextCodes[size]))
		nextCodes[size]++
	}
	return codes, nil
}
