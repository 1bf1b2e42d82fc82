package freefem

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/FreeFem/freefem-highlight/lexer"
)

// categoryTypes maps engine categories onto chroma token types, keeping the
// distinctions the word sets draw so chroma styles color them apart.
var categoryTypes = map[lexer.Category]chroma.TokenType{
	lexer.Text:         chroma.Text,
	lexer.Error:        chroma.Error,
	lexer.Comment:      chroma.Comment,
	lexer.Preprocessor: chroma.CommentPreproc,
	lexer.Keyword:      chroma.KeywordReserved,
	lexer.Type:         chroma.KeywordType,
	lexer.Class:        chroma.NameClass,
	lexer.Function:     chroma.NameFunction,
	lexer.Pseudo:       chroma.KeywordPseudo,
	lexer.Deprecated:   chroma.GenericDeleted,
	lexer.Name:         chroma.Name,
	lexer.Operator:     chroma.Operator,
	lexer.Punctuation:  chroma.Punctuation,
	lexer.Number:       chroma.Number,
	lexer.String:       chroma.String,
}

// chromaLexer adapts the engine to chroma's Lexer interface so chroma
// formatters, styles and chroma-based tools can drive it unchanged.
type chromaLexer struct {
	inner    *lexer.Lexer
	config   *chroma.Config
	analyser func(text string) float32
}

var chromaFreeFem = func() chroma.Lexer {
	cfg := FreeFem.Config()
	return &chromaLexer{
		inner: FreeFem,
		config: &chroma.Config{
			Name:      cfg.Name,
			Aliases:   cfg.Aliases,
			Filenames: cfg.Filenames,
			MimeTypes: cfg.MimeTypes,
		},
	}
}()

// Registering with chroma's global registry means a blank import of this
// package is enough to make .edp files highlightable anywhere chroma is
// the rendering engine.
func init() {
	lexers.Register(chromaFreeFem)
}

// Chroma returns the FreeFem++ lexer in chroma's Lexer shape.
func Chroma() chroma.Lexer { return chromaFreeFem }

func (c *chromaLexer) Config() *chroma.Config { return c.config }

func (c *chromaLexer) Tokenise(options *chroma.TokeniseOptions, text string) (chroma.Iterator, error) {
	engineTokens := c.inner.Tokenize(text)
	tokens := make([]chroma.Token, len(engineTokens))
	for i, t := range engineTokens {
		tokens[i] = chroma.Token{Type: categoryTypes[t.Category], Value: t.Value}
	}
	return chroma.Literator(tokens...), nil
}

func (c *chromaLexer) SetRegistry(registry *chroma.LexerRegistry) chroma.Lexer { return c }

func (c *chromaLexer) SetAnalyser(analyser func(text string) float32) chroma.Lexer {
	c.analyser = analyser
	return c
}

func (c *chromaLexer) AnalyseText(text string) float32 {
	if c.analyser != nil {
		return c.analyser(text)
	}
	return 0
}
