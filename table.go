package huffman

import (
	"bufio"
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"strconv"

	logging "github.com/op/go-logging"
)

// Entry is one (symbol, code) pair of a code table.
type Entry struct {
	Symbol Symbol
	Code   Code
}

// Table is a Huffman code in its saved form: one Entry per leaf, in the
// order a depth-first, 0-before-1 traversal of the Tree reaches them.
//
// The text form is a sequence of line pairs.  The first line of each pair
// holds the symbol in decimal, and the second holds its code as '0' and '1'
// characters.  There is no header, count, or checksum.
//
type Table []Entry

// maxLineSize bounds the lines ReadTable accepts.  The longest valid line is
// a code of MaxCodeSize characters.
const maxLineSize = 4096

// ReadTable parses a code table in text form.  Lines may end in "\n" or
// "\r\n" (bufio.ScanLines drops the "\r").  End of input ends the table.
func ReadTable(r io.Reader) (Table, error) {
	var table Table
	var symbol Symbol
	var symbolLine int

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 512), maxLineSize)
	lineNum := 0
	for s.Scan() {
		lineNum++
		line := s.Text()

		if lineNum%2 == 1 {
			u64, err := strconv.ParseUint(line, 10, 8)
			if err != nil {
				return nil, &FormatError{
					How:    BadSymbol,
					Line:   lineNum,
					Detail: fmt.Sprintf("%s is not a decimal value in 0 .. %d", quoteShort(line), MaxSymbol),
				}
			}
			symbol = Symbol(u64)
			symbolLine = lineNum
			continue
		}

		hc, err := ParseCode(line)
		if err != nil {
			fe := err.(*FormatError)
			fe.Line = lineNum
			return nil, fe
		}
		if err := checkCodeSize(hc); err != nil {
			err.Line = lineNum
			return nil, err
		}
		table = append(table, Entry{symbol, hc})
	}
	if err := s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			how := BadCode
			if (lineNum+1)%2 == 1 {
				how = BadSymbol
			}
			return nil, &FormatError{
				How:    how,
				Line:   lineNum + 1,
				Detail: fmt.Sprintf("line is longer than %d bytes", maxLineSize),
			}
		}
		return nil, fmt.Errorf("huffman: failed to read code table: %w", err)
	}

	if lineNum%2 == 1 {
		return nil, &FormatError{
			How:    OddTable,
			Line:   symbolLine,
			Detail: fmt.Sprintf("symbol %d has no code line", symbol),
		}
	}
	return table, nil
}

// WriteTo writes this Table in text form.
func (table Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, entry := range table {
		buf.WriteString(strconv.Itoa(int(entry.Symbol)))
		buf.WriteByte('\n')
		buf.WriteString(string(entry.Code))
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

var _ io.WriterTo = Table(nil)

// Table returns the code table of this Tree.  An empty Tree has an empty
// table.
func (t Tree) Table() Table {
	var table Table
	t.walk(func(symbol Symbol, hc Code) {
		table = append(table, Entry{symbol, hc})
	})
	return table
}

// Save writes the code table of this Tree in text form.
func (t Tree) Save(w io.Writer) (int64, error) {
	return t.Table().WriteTo(w)
}

// InitFromTable initializes this Tree from a code table, as produced by
// Table or ReadTable.  Symbol frequencies are not part of a table, so every
// node of the result has a frequency of 0.
//
// The table must describe a complete prefix-free code: every symbol must be
// unique, no code may be a prefix of another, and every internal node must
// have both children.  Otherwise InitFromTable returns a *FormatError and
// leaves this Tree unchanged.
//
func (t *Tree) InitFromTable(table Table) error {
	var out Tree
	var seen [NumSymbols]bool
	for i, entry := range table {
		symbolLine, codeLine := 2*i+1, 2*i+2

		if !entry.Symbol.IsValid() {
			return &FormatError{How: BadSymbol, Line: symbolLine, Detail: fmt.Sprintf("%d is not in 0 .. %d", entry.Symbol, MaxSymbol)}
		}
		if seen[entry.Symbol] {
			return &FormatError{How: Collision, Line: symbolLine, Detail: fmt.Sprintf("symbol %d appears more than once", entry.Symbol)}
		}
		seen[entry.Symbol] = true

		if err := checkCodeSize(entry.Code); err != nil {
			err.Line = codeLine
			return err
		}
		if _, err := ParseCode(string(entry.Code)); err != nil {
			fe := err.(*FormatError)
			fe.Line = codeLine
			return fe
		}
		if entry.Code.Len() == 0 && len(table) > 1 {
			return &FormatError{How: Collision, Line: codeLine, Detail: fmt.Sprintf("symbol %d has an empty code but is not the only symbol", entry.Symbol)}
		}

		if err := out.place(entry); err != nil {
			err.Line = codeLine
			return err
		}
	}

	if hc, found := out.firstMissing(); found {
		return &FormatError{
			How:    Incomplete,
			Detail: fmt.Sprintf("no symbol has a code starting with %s", hc.short()),
		}
	}

	*t = out
	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("loaded tree from table: %d symbols, code lengths %d .. %d", len(table), t.MinSize(), t.MaxSize())
	}
	return nil
}

// checkCodeSize rejects codes longer than any Tree can have.
func checkCodeSize(hc Code) *FormatError {
	if hc.Len() <= MaxCodeSize {
		return nil
	}
	return &FormatError{
		How:    BadCode,
		Detail: fmt.Sprintf("code %s is longer than %d bits", hc.short(), MaxCodeSize),
	}
}

// place walks the path for one table entry, creating internal nodes as
// needed, and puts a leaf at its end.
func (t *Tree) place(entry Entry) *FormatError {
	size := entry.Code.Len()
	if t.IsEmpty() {
		if size == 0 {
			t.root = t.newLeaf(entry.Symbol, 0)
			return nil
		}
		t.root = t.newInternal(noNode, noNode, 0)
	}

	index := t.root
	for i := 0; i < size; i++ {
		if nd := t.nodes[index]; nd.kind == leafNode {
			return &FormatError{
				How:    Collision,
				Detail: fmt.Sprintf("code %s for symbol %d extends the code %s of symbol %d", entry.Code.short(), entry.Symbol, entry.Code[:i].short(), nd.symbol),
			}
		}

		bit := entry.Code.Bit(i)
		child := t.child(index, bit)
		if child != noNode {
			if i == size-1 {
				return &FormatError{
					How:    Collision,
					Detail: fmt.Sprintf("code %s for symbol %d is already in use", entry.Code.short(), entry.Symbol),
				}
			}
			index = child
			continue
		}

		if i == size-1 {
			child = t.newLeaf(entry.Symbol, 0)
		} else {
			child = t.newInternal(noNode, noNode, 0)
		}
		t.setChild(index, bit, child)
		index = child
	}
	return nil
}

// firstMissing finds the path to the first absent child of an internal
// node, in table order.
func (t Tree) firstMissing() (Code, bool) {
	if t.IsEmpty() {
		return "", false
	}

	type stackItem struct {
		index nodeIndex
		hc    Code
	}

	stack := []stackItem{{t.root, ""}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.index == noNode {
			return top.hc, true
		}
		nd := &t.nodes[top.index]
		if nd.kind == leafNode {
			continue
		}
		stack = append(stack, stackItem{nd.right, top.hc.Append(1)})
		stack = append(stack, stackItem{nd.left, top.hc.Append(0)})
	}
	return "", false
}

// MarshalText returns the code table of this Tree in text form.
func (t Tree) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	_, err := t.Save(&buf)
	return buf.Bytes(), err
}

// UnmarshalText initializes this Tree from a code table in text form.
func (t *Tree) UnmarshalText(text []byte) error {
	table, err := ReadTable(bytes.NewReader(text))
	if err != nil {
		return err
	}
	return t.InitFromTable(table)
}

var (
	_ encoding.TextMarshaler   = Tree{}
	_ encoding.TextUnmarshaler = (*Tree)(nil)
)
