package huffzip

import (
	"encoding/binary"
)

const (
	containerMagic   = "HUFZ"
	containerVersion = byte(1)

	headerFixedSize = 4 + 1 + 1 + 8 + 8 + 1
	tableEntrySize  = 2
)

// Wire format (version 1):
//
//	magic    [4]byte = "HUFZ"
//	version  = uint8
//	count    = uint8, number of table entries, 0..128
//	repeat count times:
//	  symbol = uint8
//	  size   = uint8, canonical code length in bits, 1..32
//	length   = uint64 little-endian, original byte count
//	checksum = uint64 little-endian, XXH64 of the original bytes
//	padding  = uint8, zero bits at the end of the final payload byte, 0..7
//	payload  = packed bitstream, most significant bit first
//
// Every field has a fixed width, so any byte value (including 0x00) can appear
// in the symbol table.  Table entries are written in ascending symbol order.

// TableEntry is one row of the container's symbol table.
type TableEntry struct {
	Symbol Symbol
	Size   byte
}

// Header is the decoded form of everything in a container that precedes the
// payload.
type Header struct {
	// Entries lists the coded symbols and their canonical code lengths.
	Entries []TableEntry

	// Length is the number of bytes in the original input.
	Length uint64

	// Checksum is the XXH64 digest of the original input.
	Checksum uint64

	// Padding is the number of zero bits appended to the payload's final
	// byte.
	Padding byte
}

// Size returns the number of bytes AppendTo will write.
func (h Header) Size() int {
	return headerFixedSize + tableEntrySize*len(h.Entries)
}

// AppendTo appends the wire form of h to dst and returns the extended slice.
func (h Header) AppendTo(dst []byte) []byte {
	dst = append(dst, containerMagic...)
	dst = append(dst, containerVersion, byte(len(h.Entries)))
	for _, entry := range h.Entries {
		dst = append(dst, byte(entry.Symbol), entry.Size)
	}
	dst = binary.LittleEndian.AppendUint64(dst, h.Length)
	dst = binary.LittleEndian.AppendUint64(dst, h.Checksum)
	dst = append(dst, h.Padding)
	return dst
}

// Sizes expands the symbol table into a per-Symbol bit length array suitable
// for Decoder.Init.
func (h Header) Sizes() []byte {
	sizes := make([]byte, NumSymbols)
	for _, entry := range h.Entries {
		sizes[entry.Symbol] = entry.Size
	}
	return sizes
}

// ParseHeader decodes the Header at the start of blob and returns it along
// with the offset of the payload.  Only the header's own consistency is
// checked here; the payload is validated by Decompress.
func ParseHeader(blob []byte) (Header, int, error) {
	var h Header

	if len(blob) < headerFixedSize {
		return h, 0, formatErrorf("header", "need at least %d bytes, have %d", headerFixedSize, len(blob))
	}
	if string(blob[:4]) != containerMagic {
		return h, 0, formatErrorf("magic", "got %q, want %q", blob[:4], containerMagic)
	}
	if version := blob[4]; version != containerVersion {
		return h, 0, formatErrorf("version", "unsupported version %d", version)
	}

	count := int(blob[5])
	if count > MaxDistinctSymbols {
		return h, 0, formatErrorf("count", "%d table entries, max %d", count, MaxDistinctSymbols)
	}

	size := headerFixedSize + tableEntrySize*count
	if len(blob) < size {
		return h, 0, formatErrorf("table", "need %d bytes for %d entries, have %d", size, count, len(blob))
	}

	var seen [NumSymbols]bool
	h.Entries = make([]TableEntry, 0, count)
	p := blob[6:]
	for i := 0; i < count; i++ {
		entry := TableEntry{Symbol: Symbol(p[0]), Size: p[1]}
		p = p[tableEntrySize:]

		if seen[entry.Symbol] {
			return h, 0, formatErrorf("table", "duplicate symbol %d", entry.Symbol)
		}
		seen[entry.Symbol] = true

		if entry.Size == 0 || entry.Size > maxBitsPerCode {
			return h, 0, formatErrorf("table", "symbol %d has code length %d, want 1..%d", entry.Symbol, entry.Size, maxBitsPerCode)
		}
		h.Entries = append(h.Entries, entry)
	}

	h.Length = binary.LittleEndian.Uint64(p[0:8])
	h.Checksum = binary.LittleEndian.Uint64(p[8:16])
	h.Padding = p[16]

	if count == 0 && h.Length != 0 {
		return h, 0, formatErrorf("length", "%d bytes declared with an empty symbol table", h.Length)
	}
	if count != 0 && h.Length == 0 {
		return h, 0, formatErrorf("length", "zero bytes declared with %d table entries", count)
	}
	if h.Padding > 7 {
		return h, 0, formatErrorf("padding", "%d padding bits, max 7", h.Padding)
	}

	return h, size, nil
}
