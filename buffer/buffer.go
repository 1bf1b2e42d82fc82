// Package buffer provides line and column addressed access to a loaded
// source file. The viewer and the per-line highlight index both need to
// translate between byte offsets and line/column positions; the Buffer
// interface keeps them independent of the underlying data structure.
package buffer

import "io"

// A Buffer is read-oriented text storage addressed by line and column.
// Lines and columns start at zero; columns count runes, not bytes. Ranges
// with an "end" are inclusive.
//
// Out-of-range lines panic. Compare with Lines() or RunesInLine() first if
// a position may be out of bounds.
type Buffer interface {
	// Line returns the data at the given line, including the line
	// delimiter. The returned slice may alias the buffer: do not write
	// to it.
	Line(line int) []byte

	// Slice returns the data from startLine, startCol to endLine, endCol,
	// inclusive. The returned slice may alias the buffer.
	Slice(startLine, startCol, endLine, endCol int) []byte

	// Bytes returns a copy of the entire buffer contents.
	Bytes() []byte

	// Len returns the number of bytes in the buffer.
	Len() int

	// Lines returns the number of lines in the buffer, at least 1.
	Lines() int

	// RunesInLine returns the number of runes in the line, excluding the
	// line delimiter.
	RunesInLine(line int) int

	// RunesInLineWithDelim is RunesInLine including the delimiter; a CRLF
	// delimiter counts as two.
	RunesInLineWithDelim(line int) int

	// LineColToPos returns the byte offset of the rune at line, col. A col
	// past the end of the line yields the position of the line's last byte.
	LineColToPos(line, col int) int

	// PosToLineCol converts a byte offset into a line and rune column,
	// clamping offsets outside the buffer.
	PosToLineCol(pos int) (int, int)

	WriteTo(w io.Writer) (int64, error)
}
