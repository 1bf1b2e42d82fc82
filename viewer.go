package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/FreeFem/freefem-highlight/buffer"
	"github.com/FreeFem/freefem-highlight/freefem"
	"github.com/FreeFem/freefem-highlight/highlight"
	"github.com/FreeFem/freefem-highlight/lexer"
)

const viewerTabSize = 4

// A viewer is a fullscreen read-only pager for a highlighted FreeFem++
// script. It holds the file in a rope buffer and colors each visible line
// from the per-line match index.
type viewer struct {
	screen tcell.Screen
	buf    buffer.Buffer
	index  *highlight.LineIndex
	path   string
	scroll int
	status string
}

// runViewer shows the file until the user quits with q, Escape or Ctrl-Q.
func runViewer(path string, contents []byte) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini() // Useful for handling panics

	// A failure here is fine: clipWrite falls back to the internal buffer.
	_ = clipInitialize()

	buf := buffer.NewRopeBuffer(contents)
	v := &viewer{
		screen: screen,
		buf:    buf,
		index:  highlight.NewLineIndex(buf, freefem.FreeFem, &highlight.DefaultColorscheme),
		path:   path,
	}

	for {
		v.draw()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			_, height := screen.Size()
			page := height - 1
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlQ || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				v.scrollBy(-1)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				v.scrollBy(1)
			case ev.Key() == tcell.KeyPgUp:
				v.scrollBy(-page)
			case ev.Key() == tcell.KeyPgDn || ev.Rune() == ' ':
				v.scrollBy(page)
			case ev.Key() == tcell.KeyHome || ev.Rune() == 'g':
				v.scroll = 0
			case ev.Key() == tcell.KeyEnd || ev.Rune() == 'G':
				v.scroll = v.maxScroll()
			case ev.Rune() == 'c':
				if err := clipWrite(string(v.buf.Bytes())); err != nil {
					v.status = "copy failed: " + err.Error()
				} else {
					v.status = "copied to clipboard"
				}
			}
		}
	}
}

func (v *viewer) maxScroll() int {
	_, height := v.screen.Size()
	max := v.buf.Lines() - (height - 1)
	if max < 0 {
		max = 0
	}
	return max
}

func (v *viewer) scrollBy(delta int) {
	v.scroll += delta
	if v.scroll < 0 {
		v.scroll = 0
	}
	if max := v.maxScroll(); v.scroll > max {
		v.scroll = max
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()

	defaultStyle := v.index.Colorscheme.GetStyle(lexer.Text)
	for y := 0; y < height-1; y++ {
		line := v.scroll + y
		if line >= v.buf.Lines() {
			break
		}
		v.drawLine(y, line, width, defaultStyle)
	}

	v.drawStatus(width, height, defaultStyle)
	v.screen.Show()
}

func (v *viewer) drawLine(y, line, width int, defaultStyle tcell.Style) {
	matches := v.index.LineMatches(line)

	var col, x int
	for _, r := range string(v.buf.Line(line)) {
		if r == '\n' || r == '\r' {
			break
		}

		style := defaultStyle
		for _, m := range matches {
			if col >= m.Col && col <= m.EndCol {
				style = v.index.Style(m)
			}
		}

		if r == '\t' {
			x += viewerTabSize - x%viewerTabSize
		} else {
			if x >= width {
				break
			}
			v.screen.SetContent(x, y, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
		col++
	}
}

func (v *viewer) drawStatus(width, height int, defaultStyle tcell.Style) {
	style := defaultStyle.Reverse(true)

	text := fmt.Sprintf(" %s  line %d of %d  (q quits, c copies)", v.path, v.scroll+1, v.buf.Lines())
	if v.status != "" {
		text += "  [" + v.status + "]"
	}

	var x int
	for _, r := range text {
		if x >= width {
			break
		}
		v.screen.SetContent(x, height-1, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, height-1, ' ', nil, style)
	}
}
