package huffzip

// Histogram counts the occurrences of each Symbol in a byte sequence.
type Histogram [NumSymbols]uint64

// SymbolFreq pairs a Symbol with its occurrence count.
type SymbolFreq struct {
	Symbol Symbol
	Freq   uint64
}

// Scan resets the Histogram and counts every byte of data.
func (h *Histogram) Scan(data []byte) {
	*h = Histogram{}
	for _, b := range data {
		h[b]++
	}
}

// Distinct returns the number of symbols with a non-zero count.
func (h *Histogram) Distinct() int {
	var n int
	for _, freq := range h {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (h *Histogram) Total() uint64 {
	var sum uint64
	for _, freq := range h {
		sum += freq
	}
	return sum
}

// Entries lists the symbols with a non-zero count, in ascending Symbol order.
// The result is empty for an empty Histogram.
func (h *Histogram) Entries() []SymbolFreq {
	out := make([]SymbolFreq, 0, h.Distinct())
	for symbol, freq := range h {
		if freq != 0 {
			out = append(out, SymbolFreq{Symbol(symbol), freq})
		}
	}
	return out
}
