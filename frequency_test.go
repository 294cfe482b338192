package huffzip

import (
	"testing"
)

func TestHistogram(t *testing.T) {
	var h Histogram
	h.Scan([]byte("aaaabbbcc\x00"))

	if n := h.Distinct(); n != 4 {
		t.Errorf("expected 4 distinct symbols, got %d", n)
	}
	if n := h.Total(); n != 10 {
		t.Errorf("expected total 10, got %d", n)
	}

	expect := []SymbolFreq{{0, 1}, {'a', 4}, {'b', 3}, {'c', 2}}
	actual := h.Entries()
	if len(actual) != len(expect) {
		t.Fatalf("wrong entries:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
	for i := range expect {
		if actual[i] != expect[i] {
			t.Errorf("wrong entries:\n\texpect: %v\n\tactual: %v", expect, actual)
			break
		}
	}

	h.Scan(nil)
	if n := h.Distinct(); n != 0 {
		t.Errorf("expected Scan to reset, got %d distinct symbols", n)
	}
	if entries := h.Entries(); len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}
