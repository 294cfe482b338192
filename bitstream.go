package huffzip

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitWriter packs Codes into bytes, most significant bit first.  The final
// byte is padded with zero bits by Finish.
type BitWriter struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	bits uint64
}

// NewBitWriter returns a BitWriter whose buffer is pre-sized for sizeHint
// bits.
func NewBitWriter(sizeHint uint64) *BitWriter {
	bw := &BitWriter{}
	bw.buf.Grow(int((sizeHint + 7) / 8))
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

// WriteCode appends the bits of hc.
func (bw *BitWriter) WriteCode(hc Code) error {
	assert.Assertf(hc.Size <= maxBitsPerCode, "code size %d > %d", hc.Size, maxBitsPerCode)
	if err := bw.w.WriteBits(uint64(hc.Bits), hc.Size); err != nil {
		return err
	}
	bw.bits += uint64(hc.Size)
	return nil
}

// Len returns the number of bits written so far, excluding padding.
func (bw *BitWriter) Len() uint64 {
	return bw.bits
}

// Finish pads the final partial byte with zero bits and returns the packed
// bytes along with the number of padding bits (0..7).  The BitWriter must not
// be used afterward.
func (bw *BitWriter) Finish() (data []byte, padding byte, err error) {
	skipped, err := bw.w.Align()
	if err != nil {
		return nil, 0, err
	}
	if err := bw.w.Close(); err != nil {
		return nil, 0, err
	}
	return bw.buf.Bytes(), skipped, nil
}

// BitReader unpacks bits written by a BitWriter.  It never returns bits from
// the padding at the end of the final byte.
type BitReader struct {
	r         *bitio.Reader
	remaining uint64
	padding   byte
}

// NewBitReader returns a BitReader over data, whose final byte carries
// padding zero bits that are not part of the stream.
func NewBitReader(data []byte, padding byte) (*BitReader, error) {
	if padding > 7 {
		return nil, fmt.Errorf("padding %d out of range 0..7", padding)
	}
	if len(data) == 0 && padding != 0 {
		return nil, fmt.Errorf("padding %d with no data", padding)
	}
	br := &BitReader{
		r:         bitio.NewReader(bytes.NewReader(data)),
		remaining: uint64(len(data))*8 - uint64(padding),
		padding:   padding,
	}
	return br, nil
}

// Remaining returns the number of unread bits, excluding padding.
func (br *BitReader) Remaining() uint64 {
	return br.remaining
}

// ReadBits reads the next n bits (n <= 32), first bit in the most significant
// position of the result.  Asking for more bits than Remaining returns
// io.ErrUnexpectedEOF and consumes nothing.
func (br *BitReader) ReadBits(n byte) (uint32, error) {
	assert.Assertf(n <= maxBitsPerCode, "n %d > %d", n, maxBitsPerCode)
	if uint64(n) > br.remaining {
		return 0, io.ErrUnexpectedEOF
	}
	u, err := br.r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	br.remaining -= uint64(n)
	return uint32(u), nil
}

// VerifyPadding checks that the stream has been fully consumed and that the
// padding bits are all zero.
func (br *BitReader) VerifyPadding() error {
	if br.remaining != 0 {
		return fmt.Errorf("%d unread bits before padding", br.remaining)
	}
	if br.padding == 0 {
		return nil
	}
	u, err := br.r.ReadBits(br.padding)
	if err != nil {
		return err
	}
	if u != 0 {
		return fmt.Errorf("nonzero padding bits %#x", u)
	}
	return nil
}
