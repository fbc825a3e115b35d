// Package huffman implements static Huffman codes over the byte alphabet,
// together with a line-oriented text format for saving a code so that a
// compressed stream can be decoded later.
//
// A Tree is built once, either from symbol frequencies (Init) or from a
// saved code table (InitFromTable), and is then used to write the table
// (Save), to encode bytes (Encode), or to decode a bit stream (Translate).
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman

import (
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")
