package huffzip

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Compress encodes input into a self-describing container.
//
// The only possible error is a *CapacityExceededError, returned when input
// has more than MaxDistinctSymbols distinct byte values.  Empty input yields a
// header-only container.
//
func Compress(input []byte) ([]byte, error) {
	var h Histogram
	h.Scan(input)

	var e Encoder
	if err := e.Init(&h); err != nil {
		return nil, err
	}

	bw := NewBitWriter(e.EncodedBits(&h))
	for _, b := range input {
		if err := bw.WriteCode(e.Encode(Symbol(b))); err != nil {
			return nil, err
		}
	}
	payload, padding, err := bw.Finish()
	if err != nil {
		return nil, err
	}

	hdr := Header{
		Entries:  e.Entries(),
		Length:   uint64(len(input)),
		Checksum: xxhash.Sum64(input),
		Padding:  padding,
	}

	out := make([]byte, 0, hdr.Size()+len(payload))
	out = hdr.AppendTo(out)
	out = append(out, payload...)
	return out, nil
}

// Decompress decodes a container produced by Compress and returns the
// original bytes.  Every malformed, truncated, or inconsistent container is
// reported as a *FormatError.
func Decompress(input []byte) ([]byte, error) {
	hdr, offset, err := ParseHeader(input)
	if err != nil {
		return nil, err
	}
	payload := input[offset:]

	var d Decoder
	if err := d.Init(hdr.Sizes()); err != nil {
		return nil, wrapFormatError("table", "code lengths do not form a prefix code", err)
	}

	br, err := NewBitReader(payload, hdr.Padding)
	if err != nil {
		return nil, wrapFormatError("padding", "inconsistent with payload", err)
	}

	if hdr.Length == 0 {
		if len(payload) != 0 {
			return nil, formatErrorf("payload", "%d bytes of payload for empty input", len(payload))
		}
		return verifyChecksum(hdr, []byte{})
	}

	// Each symbol consumes at least MinSize bits.
	if hdr.Length > br.Remaining()/uint64(d.MinSize()) {
		return nil, formatErrorf("length", "%d bytes declared but payload holds only %d bits", hdr.Length, br.Remaining())
	}

	out := make([]byte, 0, hdr.Length)
	for uint64(len(out)) < hdr.Length {
		symbol, err := d.ReadSymbol(br)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, wrapFormatError("payload", fmt.Sprintf("bitstream ended after %d of %d bytes", len(out), hdr.Length), err)
		}
		if err != nil {
			return nil, wrapFormatError("payload", fmt.Sprintf("cannot decode byte %d", len(out)), err)
		}
		out = append(out, byte(symbol))
	}

	if err := br.VerifyPadding(); err != nil {
		return nil, wrapFormatError("payload", "bits left after final symbol", err)
	}

	return verifyChecksum(hdr, out)
}

func verifyChecksum(hdr Header, out []byte) ([]byte, error) {
	if sum := xxhash.Sum64(out); sum != hdr.Checksum {
		return nil, formatErrorf("checksum", "got %#016x, want %#016x", sum, hdr.Checksum)
	}
	return out, nil
}
