package huffman

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Bit is a single binary digit, either 0 or 1.
type Bit uint8

// Code represents a sequence of bits, i.e. the path from the root of a Tree
// to one of its leaves.  Each bit is stored as the character '0' or '1', and
// the first character is the first bit, the one taken at the root.
//
// The codes of a Tree are at most MaxCodeSize bits long, but a Code used to
// collect a whole bit stream (see CodeWriter) has no length limit.
type Code string

// MaxCodeSize is the bit length of the longest code a Tree can have: a tree
// built from very skewed frequencies is a chain of NumSymbols-1 nodes.
const MaxCodeSize = NumSymbols - 1

// maxQuoted is the number of characters shown when a long code or line is
// quoted in an error message.
const maxQuoted = 32

// ParseCode validates that s contains only the characters '0' and '1' and
// returns it as a Code.
func ParseCode(s string) (Code, error) {
	if i := strings.IndexFunc(s, func(ch rune) bool { return ch != '0' && ch != '1' }); i >= 0 {
		ch, _ := utf8.DecodeRuneInString(s[i:])
		return "", &FormatError{
			How:    BadCode,
			Detail: fmt.Sprintf("character %q at offset %d in %s", ch, i, quoteShort(s)),
		}
	}
	return Code(s), nil
}

// quoteShort quotes s, cutting it after maxQuoted bytes.
func quoteShort(s string) string {
	if len(s) <= maxQuoted {
		return strconv.Quote(s)
	}
	return strconv.Quote(s[:maxQuoted]) + "... (" + strconv.Itoa(len(s)) + " bytes)"
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) Bit {
	if hc[i] == '1' {
		return 1
	}
	return 0
}

// Append returns the Code formed by adding one bit to the end of this Code.
func (hc Code) Append(bit Bit) Code {
	if bit != 0 {
		return hc + "1"
	}
	return hc + "0"
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

// short is String, cut after maxQuoted bits.
func (hc Code) short() string {
	if len(hc) <= maxQuoted {
		return hc.String()
	}
	return strconv.Quote(string(hc[:maxQuoted])) + "... (" + strconv.Itoa(len(hc)) + " bits)"
}

var _ fmt.Stringer = Code("")
