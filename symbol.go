package huffman

// Symbol represents a symbol in the byte alphabet.  Negative symbols are
// not valid.
type Symbol int32

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is in the byte alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}
