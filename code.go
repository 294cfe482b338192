package huffzip

import (
	"fmt"
	"strconv"
)

// maxBitsPerCode is the longest code this package will assign or accept.
const maxBitsPerCode = 32

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits of Bits is the first bit; bits above Size are zero.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint32) Code {
	return Code{Size: size, Bits: bits & lowMask(size)}
}

// Append returns the Code formed by following hc with the size low bits of
// bits.  The result must not exceed 32 bits.
func (hc Code) Append(size byte, bits uint32) Code {
	if size == 0 {
		return hc
	}
	return Code{Size: hc.Size + size, Bits: hc.Bits<<size | bits&lowMask(size)}
}

// IsPrefixOf returns true iff hc is a proper or improper prefix of other.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size > other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
