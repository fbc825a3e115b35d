package huffman

import (
	"errors"
	"strconv"
)

// FormatErrorHow describes what was wrong with the input that produced a
// FormatError.
type FormatErrorHow int

const (
	FormatErrorUnknown FormatErrorHow = iota
	BadSymbol
	BadCode
	OddTable
	Collision
	Incomplete
	Truncated
	EmptyTree
	TrailingData
)

var formatErrorHowNames = [...]string{
	FormatErrorUnknown: "???",
	BadSymbol:          "invalid symbol",
	BadCode:            "invalid code",
	OddTable:           "odd number of lines in code table",
	Collision:          "code collision",
	Incomplete:         "incomplete code",
	Truncated:          "truncated bit stream",
	EmptyTree:          "bits present for empty code",
	TrailingData:       "trailing data after payload",
}

// String returns a short description of this FormatErrorHow.
func (how FormatErrorHow) String() string {
	if how >= 0 && int(how) < len(formatErrorHowNames) {
		return formatErrorHowNames[how]
	}
	return formatErrorHowNames[FormatErrorUnknown]
}

// FormatError reports malformed input: a bad code table, or a bit stream
// that does not decode with the given Tree.  Line is the 1-based line of
// the code table where the problem was found, or 0 if not applicable.
type FormatError struct {
	How    FormatErrorHow
	Line   int
	Detail string
}

func (fe *FormatError) Error() string {
	str := "huffman: " + fe.How.String()
	if fe.Line > 0 {
		str += " at line " + strconv.Itoa(fe.Line)
	}
	if fe.Detail != "" {
		str += ": " + fe.Detail
	}
	return str
}

// Is makes errors.Is(err, ErrTruncated) and errors.Is(err, ErrEmptyTree)
// match any FormatError of the corresponding kind.
func (fe *FormatError) Is(target error) bool {
	switch target {
	case ErrTruncated:
		return fe.How == Truncated
	case ErrEmptyTree:
		return fe.How == EmptyTree
	}
	return false
}

var (
	// ErrTruncated matches a FormatError for a bit stream that ended in
	// the middle of a code.
	ErrTruncated = errors.New("huffman: truncated bit stream")

	// ErrEmptyTree matches a FormatError for a bit stream that has bits
	// but was decoded with an empty Tree.
	ErrEmptyTree = errors.New("huffman: bits present for empty code")
)

// SymbolError reports a symbol that has no code in the Tree being used to
// encode it.
type SymbolError struct {
	Symbol Symbol
}

func (se *SymbolError) Error() string {
	return "huffman: no code for symbol " + strconv.Itoa(int(se.Symbol))
}
