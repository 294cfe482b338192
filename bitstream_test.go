package huffzip

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestBitWriter(t *testing.T) {
	type testRow struct {
		name    string
		codes   []Code
		data    []byte
		padding byte
	}

	testData := [...]testRow{
		{name: "empty", codes: nil, data: []byte{}, padding: 0},
		{name: "one-bit", codes: []Code{MakeCode(1, 1)}, data: []byte{0x80}, padding: 7},
		{name: "mixed", codes: []Code{MakeCode(3, 0x5), MakeCode(1, 0), MakeCode(5, 0x1f)}, data: []byte{0xaf, 0x80}, padding: 7},
		{name: "aligned", codes: []Code{MakeCode(4, 0xa), MakeCode(4, 0x5)}, data: []byte{0xa5}, padding: 0},
		{name: "wide", codes: []Code{MakeCode(32, 0xdeadbeef)}, data: []byte{0xde, 0xad, 0xbe, 0xef}, padding: 0},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			bw := NewBitWriter(0)
			var expectLen uint64
			for _, hc := range row.codes {
				if err := bw.WriteCode(hc); err != nil {
					t.Fatalf("WriteCode failed: %v", err)
				}
				expectLen += uint64(hc.Size)
			}
			if bw.Len() != expectLen {
				t.Errorf("expected %d bits, got %d", expectLen, bw.Len())
			}
			data, padding, err := bw.Finish()
			if err != nil {
				t.Fatalf("Finish failed: %v", err)
			}
			if !bytes.Equal(data, row.data) {
				t.Errorf("wrong data:\n\texpect: %#v\n\tactual: %#v", row.data, data)
			}
			if padding != row.padding {
				t.Errorf("expected padding %d, got %d", row.padding, padding)
			}
		})
	}
}

func TestBitReader(t *testing.T) {
	br, err := NewBitReader([]byte{0xaf, 0x80}, 7)
	if err != nil {
		t.Fatalf("NewBitReader failed: %v", err)
	}
	if n := br.Remaining(); n != 9 {
		t.Errorf("expected 9 bits remaining, got %d", n)
	}

	type step struct {
		n      byte
		expect uint32
	}
	for _, s := range []step{{3, 0x5}, {1, 0}, {5, 0x1f}} {
		actual, err := br.ReadBits(s.n)
		if err != nil {
			t.Fatalf("ReadBits(%d) failed: %v", s.n, err)
		}
		if actual != s.expect {
			t.Errorf("ReadBits(%d) = %#x, expected %#x", s.n, actual, s.expect)
		}
	}

	if _, err := br.ReadBits(1); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF reading into padding, got %v", err)
	}
	if err := br.VerifyPadding(); err != nil {
		t.Errorf("VerifyPadding failed: %v", err)
	}
}

func TestBitReader_Errors(t *testing.T) {
	if _, err := NewBitReader([]byte{0x00}, 8); err == nil {
		t.Errorf("expected error for padding 8")
	}
	if _, err := NewBitReader(nil, 1); err == nil {
		t.Errorf("expected error for padding without data")
	}

	br, err := NewBitReader([]byte{0x81}, 7)
	if err != nil {
		t.Fatalf("NewBitReader failed: %v", err)
	}
	if _, err := br.ReadBits(1); err != nil {
		t.Fatalf("ReadBits failed: %v", err)
	}
	if err := br.VerifyPadding(); err == nil {
		t.Errorf("expected error for nonzero padding bits")
	}

	br, err = NewBitReader([]byte{0x00}, 4)
	if err != nil {
		t.Fatalf("NewBitReader failed: %v", err)
	}
	if err := br.VerifyPadding(); err == nil {
		t.Errorf("expected error for unread bits")
	}
}
