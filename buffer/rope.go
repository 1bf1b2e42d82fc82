package buffer

import (
	"io"
	"unicode/utf8"

	"github.com/zyedidia/rope"
)

// RopeBuffer implements Buffer over a persistent rope, so large scripts can
// be sliced per line without copying the whole file around.
type RopeBuffer rope.Node

func NewRopeBuffer(contents []byte) *RopeBuffer {
	return (*RopeBuffer)(rope.New(contents))
}

// lineStartPos returns the byte index of the first byte of the given line.
// The result can equal the buffer length when the final line is empty.
// Panics if line is beyond the last line.
func (b *RopeBuffer) lineStartPos(line int) int {
	_rope := (*rope.Node)(b)
	var pos int

	if line > 0 {
		_rope.IndexAllFunc(0, _rope.Len(), []byte{'\n'}, func(idx int) bool {
			line--
			pos = idx + 1 // Start of the line following the delimiter
			return line <= 0
		})
	}

	if line > 0 {
		panic("lineStartPos: line beyond end of buffer")
	}

	return pos
}

// LineColToPos returns the byte offset of the rune at line, col. A col past
// the end of the line yields the position of the line's last byte.
func (b *RopeBuffer) LineColToPos(line, col int) int {
	_rope := (*rope.Node)(b)
	pos := b.lineStartPos(line)

	if col > 0 {
		_, r := _rope.SplitAt(pos)
		l, _ := r.SplitAt(_rope.Len() - pos)

		l.EachLeaf(func(n *rope.Node) bool {
			data := n.Value() // Reference; not a copy.
			var i int
			for i < len(data) {
				if col == 0 || data[i] == '\n' {
					return true
				}
				pos++
				col--

				// Respect Utf-8 codepoint boundaries
				_, size := utf8.DecodeRune(data[i:])
				i += size
			}
			return false
		})
	}

	return pos
}

// Line returns the data at the given line, including the line delimiter.
func (b *RopeBuffer) Line(line int) []byte {
	pos := b.lineStartPos(line)
	var bytes int

	_rope := (*rope.Node)(b)
	_, r := _rope.SplitAt(pos)
	l, _ := r.SplitAt(_rope.Len() - pos)

	l.EachLeaf(func(n *rope.Node) bool {
		data := n.Value() // Reference; not a copy.
		var i int
		for i < len(data) {
			if data[i] == '\n' {
				bytes++
				return true
			}

			// Respect Utf-8 codepoint boundaries
			_, size := utf8.DecodeRune(data[i:])
			bytes += size
			i += size
		}
		return false
	})

	return _rope.Slice(pos, pos+bytes)
}

// Slice returns the data from startLine, startCol to endLine, endCol,
// inclusive bounds.
func (b *RopeBuffer) Slice(startLine, startCol, endLine, endCol int) []byte {
	endPos := b.LineColToPos(endLine, endCol) + 1
	if length := (*rope.Node)(b).Len(); endPos > length {
		endPos = length
	}
	return (*rope.Node)(b).Slice(b.LineColToPos(startLine, startCol), endPos)
}

// Bytes returns a copy of the entire buffer contents.
func (b *RopeBuffer) Bytes() []byte {
	return (*rope.Node)(b).Value()
}

// Len returns the number of bytes in the buffer.
func (b *RopeBuffer) Len() int {
	return (*rope.Node)(b).Len()
}

// Lines returns the number of lines in the buffer, at least 1.
func (b *RopeBuffer) Lines() int {
	_rope := (*rope.Node)(b)
	return _rope.Count(0, _rope.Len(), []byte{'\n'}) + 1
}

// RunesInLineWithDelim returns the number of runes in the line including
// the delimiter; a CRLF delimiter counts as two.
func (b *RopeBuffer) RunesInLineWithDelim(line int) int {
	return b.countLineRunes(line, true)
}

// RunesInLine returns the number of runes in the line, excluding the line
// delimiter.
func (b *RopeBuffer) RunesInLine(line int) int {
	return b.countLineRunes(line, false)
}

func (b *RopeBuffer) countLineRunes(line int, withDelim bool) int {
	linePos := b.lineStartPos(line)

	_rope := (*rope.Node)(b)
	ropeLen := _rope.Len()

	if linePos >= ropeLen {
		return 0
	}

	var count int

	_, r := _rope.SplitAt(linePos)
	l, _ := r.SplitAt(ropeLen - linePos)

	var pendingCR bool // saw '\r', not yet known to be part of CRLF
	l.EachLeaf(func(n *rope.Node) bool {
		data := n.Value() // Reference; not a copy.
		var i int
		for i < len(data) {
			switch data[i] {
			case '\r':
				pendingCR = true
			case '\n':
				if withDelim {
					if pendingCR {
						count++ // The '\r'
					}
					count++ // The '\n'
				}
				return true
			default:
				if pendingCR {
					pendingCR = false
					count++ // The '\r' was an ordinary rune after all
				}
				count++
			}

			// Respect Utf-8 codepoint boundaries
			_, size := utf8.DecodeRune(data[i:])
			i += size
		}
		return false
	})

	if pendingCR { // '\r' at end of input with no '\n'
		count++
	}

	return count
}

// PosToLineCol converts a byte offset into a line and rune column,
// clamping offsets outside the buffer.
func (b *RopeBuffer) PosToLineCol(pos int) (int, int) {
	var line, col int
	var wasAtNewline bool

	if pos <= 0 {
		return line, col
	}

	(*rope.Node)(b).EachLeaf(func(n *rope.Node) bool {
		data := n.Value()
		var i int
		for i < len(data) {
			if wasAtNewline { // Start of line
				if data[i] != '\n' {
					wasAtNewline = false
				}
				line, col = line+1, 0
			} else if data[i] == '\n' { // End of line
				wasAtNewline = true
				col++
			} else {
				col++
			}

			_, size := utf8.DecodeRune(data[i:])
			i += size
			pos -= size

			if pos < 0 {
				return true
			}
		}
		return false
	})

	return line, col
}

func (b *RopeBuffer) WriteTo(w io.Writer) (int64, error) {
	return (*rope.Node)(b).WriteTo(w)
}
