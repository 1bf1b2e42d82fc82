package lexer

import "testing"

func testLexer() *Lexer {
	return New(Config{
		Name:      "Test",
		Aliases:   []string{"tst"},
		Filenames: []string{"*.tst"},
		MimeTypes: []string{"text/x-test"},
	}, Rules{
		NewRule(`[ \t\n]+`, Text),
		NewRule(`//[^\n]*`, Comment),
		NewRule(`\d+`, Number),
		ResolveRule(`[a-z]+`, func(word string) Category {
			if word == "if" {
				return Keyword
			}
			return Name
		}),
		NewRule(`;`, Punctuation),
	})
}

func TestTokenizeRoundTrip(t *testing.T) {
	lex := testLexer()

	inputs := []string{
		"",
		"if x 12;",
		"// only a comment",
		"@@@ nothing matches here @@@",
		"mixed @ 12 // trailing\n",
		"unicode → runes § preserved",
	}

	for _, input := range inputs {
		var got string
		for _, token := range lex.Tokenize(input) {
			got += token.Value
		}
		if got != input {
			t.Errorf("round trip failed: input %q, concatenated %q", input, got)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := testLexer().Tokenize(""); len(tokens) != 0 {
		t.Errorf("Expected no tokens for empty input, got %v", tokens)
	}
}

func TestFirstMatchWins(t *testing.T) {
	// Declaration order is the tie-break: the word rule precedes the
	// single-letter rule, so "ab" must not lex as two Name tokens.
	lex := New(Config{Name: "Order"}, Rules{
		NewRule(`ab`, Keyword),
		NewRule(`[a-z]`, Name),
	})

	tokens := lex.Tokenize("ab")
	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %v", tokens)
	}
	if tokens[0].Category != Keyword {
		t.Errorf("Expected Keyword, got %v", tokens[0].Category)
	}
}

func TestResolveOverridesCategory(t *testing.T) {
	lex := testLexer()

	tokens := lex.Tokenize("if name")
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %v", tokens)
	}
	if tokens[0].Category != Keyword {
		t.Errorf("Expected \"if\" to be Keyword, got %v", tokens[0].Category)
	}
	if tokens[2].Category != Name {
		t.Errorf("Expected \"name\" to be Name, got %v", tokens[2].Category)
	}
}

func TestErrorFallbackAdvancesOneRune(t *testing.T) {
	lex := testLexer()

	token, next := lex.Next("@abc", 0)
	if token.Category != Error {
		t.Errorf("Expected Error category, got %v", token.Category)
	}
	if token.Value != "@" || next != 1 {
		t.Errorf("Expected to consume %q and advance to 1, got %q and %v", "@", token.Value, next)
	}

	// A multi-byte rune must be consumed whole so token boundaries stay
	// valid UTF-8.
	token, next = lex.Next("é", 0)
	if token.Value != "é" || next != len("é") {
		t.Errorf("Expected to consume %q and advance to %v, got %q and %v", "é", len("é"), token.Value, next)
	}
}

func TestTokenPositions(t *testing.T) {
	lex := testLexer()

	pos := 0
	for _, token := range lex.Tokenize("if 12 @ name") {
		if token.Pos != pos {
			t.Errorf("Expected token %q at %v, got %v", token.Value, pos, token.Pos)
		}
		pos += len(token.Value)
	}
}

func TestCategoryString(t *testing.T) {
	if got := Keyword.String(); got != "Keyword" {
		t.Errorf("Expected \"Keyword\", got %q", got)
	}
	if got := Category(200).String(); got != "Unknown" {
		t.Errorf("Expected \"Unknown\", got %q", got)
	}
}
