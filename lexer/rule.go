package lexer

import "regexp"

// A Rule pairs a pattern with the category its matches receive. Patterns
// only ever match at the cursor position; NewRule anchors them with \A so
// a rule cannot skip ahead in the input.
//
// When Resolve is set it picks the category per match, which lets word-set
// membership refine a generic pattern like the identifier rule.
type Rule struct {
	Pattern  *regexp.Regexp
	Category Category
	Resolve  func(match string) Category
}

// Rules are tried in declaration order; the first rule whose pattern
// matches a non-empty prefix at the cursor wins. Order is significant:
// more specific patterns must precede catch-alls, and numeric literals
// must precede operator and punctuation rules.
type Rules []Rule

// NewRule compiles pattern anchored to the cursor position. It panics on an
// invalid pattern, so rule tables fail at program start, not mid-scan.
func NewRule(pattern string, category Category) Rule {
	return Rule{
		Pattern:  regexp.MustCompile(`\A(?:` + pattern + `)`),
		Category: category,
	}
}

// ResolveRule is NewRule with a per-match category resolver.
func ResolveRule(pattern string, resolve func(match string) Category) Rule {
	return Rule{
		Pattern: regexp.MustCompile(`\A(?:` + pattern + `)`),
		Resolve: resolve,
	}
}
