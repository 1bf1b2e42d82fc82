// Package highlight arranges a lexed token stream by buffer line so a
// screen renderer can color one visible line at a time, and maps token
// categories to terminal styles.
package highlight

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/FreeFem/freefem-highlight/buffer"
	"github.com/FreeFem/freefem-highlight/lexer"
)

// Colorscheme maps token categories to terminal styles. Categories without
// an entry fall back to the Text style, then to tcell's default.
type Colorscheme map[lexer.Category]tcell.Style

func (c *Colorscheme) GetStyle(cat lexer.Category) tcell.Style {
	if c != nil {
		if val, ok := (*c)[cat]; ok {
			return val
		}
		if cat != lexer.Text {
			if val, ok := (*c)[lexer.Text]; ok {
				return val
			}
		}
	}
	return tcell.StyleDefault
}

// DefaultColorscheme uses only the first 16 colors present in most colored
// terminals.
var DefaultColorscheme = Colorscheme{
	lexer.Text:         tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	lexer.Error:        tcell.Style{}.Foreground(tcell.ColorRed).Background(tcell.ColorBlack),
	lexer.Comment:      tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	lexer.Preprocessor: tcell.Style{}.Foreground(tcell.ColorTeal).Background(tcell.ColorBlack),
	lexer.Keyword:      tcell.Style{}.Foreground(tcell.ColorNavy).Background(tcell.ColorBlack),
	lexer.Type:         tcell.Style{}.Foreground(tcell.ColorPurple).Background(tcell.ColorBlack),
	lexer.Class:        tcell.Style{}.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	lexer.Function:     tcell.Style{}.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack),
	lexer.Pseudo:       tcell.Style{}.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack),
	lexer.Deprecated:   tcell.Style{}.Foreground(tcell.ColorMaroon).Background(tcell.ColorBlack),
	lexer.Number:       tcell.Style{}.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack),
	lexer.String:       tcell.Style{}.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack),
	lexer.Operator:     tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
}

// A Match is the part of a token that falls on one line: an inclusive range
// of rune columns and the category to style it with.
type Match struct {
	Col      int
	EndCol   int
	Category lexer.Category
}

// ByCol implements sort.Interface for []Match based on the Col field.
type ByCol []Match

func (c ByCol) Len() int           { return len(c) }
func (c ByCol) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }
func (c ByCol) Less(i, j int) bool { return c[i].Col < c[j].Col }

// A LineIndex can answer how to color any line of a buffer. It tokenizes
// the whole buffer and projects each token onto the lines it covers, so
// multi-line tokens (block comments) color every intermediate line.
type LineIndex struct {
	Buffer      buffer.Buffer
	Lexer       *lexer.Lexer
	Colorscheme *Colorscheme

	lineMatches [][]Match
}

func NewLineIndex(buf buffer.Buffer, lex *lexer.Lexer, colorscheme *Colorscheme) *LineIndex {
	ix := &LineIndex{
		Buffer:      buf,
		Lexer:       lex,
		Colorscheme: colorscheme,
	}
	ix.Update()
	return ix
}

// Update retokenizes the buffer and rebuilds the per-line matches. Call it
// again if the buffer is replaced; the index never watches for changes.
func (ix *LineIndex) Update() {
	ix.lineMatches = make([][]Match, ix.Buffer.Lines())

	text := string(ix.Buffer.Bytes())
	for _, token := range ix.Lexer.Tokenize(text) {
		if token.Category == lexer.Text {
			continue // Rendered with the default style anyway
		}

		startLine, startCol := ix.Buffer.PosToLineCol(token.Pos)
		endLine, endCol := ix.Buffer.PosToLineCol(token.Pos + len(token.Value) - 1)

		for line := startLine; line <= endLine && line < len(ix.lineMatches); line++ {
			match := Match{Col: 0, EndCol: endCol, Category: token.Category}
			if line == startLine {
				match.Col = startCol
			}
			if line != endLine {
				match.EndCol = ix.Buffer.RunesInLineWithDelim(line) - 1
			}
			ix.lineMatches[line] = append(ix.lineMatches[line], match)
		}
	}
}

// LineMatches returns the matches for the given line, sorted by column.
// Returns nil for lines outside the buffer.
func (ix *LineIndex) LineMatches(line int) []Match {
	if line < 0 || line >= len(ix.lineMatches) {
		return nil
	}
	matches := ix.lineMatches[line]
	sort.Sort(ByCol(matches))
	return matches
}

// Style returns the terminal style for a match.
func (ix *LineIndex) Style(match Match) tcell.Style {
	return ix.Colorscheme.GetStyle(match.Category)
}
