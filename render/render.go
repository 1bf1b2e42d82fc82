// Package render writes highlighted FreeFem++ source as HTML or
// ANSI-colored terminal text, using chroma's formatters and styles.
package render

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/formatters"
	htmlformatter "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/FreeFem/freefem-highlight/freefem"
)

// Options select the output appearance shared by the writers.
type Options struct {
	Style       string // chroma style name; unknown or empty falls back
	LineNumbers bool   // HTML output only
	Standalone  bool   // emit a full HTML document instead of a fragment
}

// HTML writes source as highlighted HTML with inline styles, suitable for
// embedding in documentation.
func HTML(w io.Writer, source string, opts Options) error {
	it, err := freefem.Chroma().Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenise: %w", err)
	}
	var fopts []htmlformatter.Option
	fopts = append(fopts, htmlformatter.TabWidth(4))
	if opts.LineNumbers {
		fopts = append(fopts, htmlformatter.WithLineNumbers(true))
	}
	if opts.Standalone {
		fopts = append(fopts, htmlformatter.Standalone(true))
	}
	formatter := htmlformatter.New(fopts...)
	return formatter.Format(w, styles.Get(opts.Style), it)
}

// Terminal writes source with ANSI color escapes.
func Terminal(w io.Writer, source string, opts Options) error {
	it, err := freefem.Chroma().Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenise: %w", err)
	}
	formatter := formatters.Get("terminal256")
	return formatter.Format(w, styles.Get(opts.Style), it)
}
