package lexer

import "unicode/utf8"

// Config declares how a host engine identifies a lexer: a display name,
// aliases, filename globs and MIME types.
type Config struct {
	Name      string
	Aliases   []string
	Filenames []string // globs, e.g. "*.edp"
	MimeTypes []string
}

// A Lexer applies an ordered rule table to source text. The table is fixed
// at construction and never mutated afterwards, so a Lexer is safe for
// concurrent use without locking.
type Lexer struct {
	config Config
	rules  Rules
}

func New(config Config, rules Rules) *Lexer {
	return &Lexer{config: config, rules: rules}
}

func (l *Lexer) Config() Config { return l.config }

// Next returns the token at byte offset pos and the offset of the first
// byte after it. Rules are tried in declaration order and the first
// non-empty match wins. When nothing matches, the single rune at pos
// becomes an Error token, so the scan always advances.
func (l *Lexer) Next(text string, pos int) (Token, int) {
	rest := text[pos:]
	for _, r := range l.rules {
		loc := r.Pattern.FindStringIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}
		value := rest[:loc[1]]
		category := r.Category
		if r.Resolve != nil {
			category = r.Resolve(value)
		}
		return Token{Pos: pos, Value: value, Category: category}, pos + loc[1]
	}
	_, size := utf8.DecodeRuneInString(rest)
	return Token{Pos: pos, Value: rest[:size], Category: Error}, pos + size
}

// Tokenize scans text from the beginning and returns every token. The
// concatenation of the returned token values is exactly text, and the scan
// terminates after at most len(text) steps.
func (l *Lexer) Tokenize(text string) []Token {
	var tokens []Token
	var pos int
	for pos < len(text) {
		token, next := l.Next(text, pos)
		tokens = append(tokens, token)
		pos = next
	}
	return tokens
}
