// Package huffzip implements a lossless compressor built on static canonical
// Huffman codes over the byte alphabet.
//
// Compress counts byte frequencies, builds a Huffman tree, derives canonical
// code lengths (at most 32 bits each), and emits a self-describing container:
// a fixed-width binary symbol table, the original length and checksum, and the
// MSB-first packed bitstream.  Decompress rebuilds the canonical code from the
// stored lengths and decodes exactly the declared number of bytes.
//
// A single file may contain at most MaxDistinctSymbols distinct byte values;
// larger alphabets are rejected with ErrCapacityExceeded rather than producing
// a container that cannot be decoded.
//
// References:
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffzip
