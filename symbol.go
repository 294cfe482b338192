package huffzip

// Symbol represents one byte value of the input alphabet.  Negative symbols
// are not valid.
type Symbol int32

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// MaxDistinctSymbols is the largest number of distinct symbols a single
// container can describe.
const MaxDistinctSymbols = 128
