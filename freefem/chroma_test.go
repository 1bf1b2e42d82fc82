package freefem

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/FreeFem/freefem-highlight/lexer"
)

func TestChromaRegistration(t *testing.T) {
	if lexers.Get("FreeFem") == nil {
		t.Error("Expected the lexer to be registered with chroma by name")
	}
	if lexers.Match("membrane.edp") == nil {
		t.Error("Expected chroma to match *.edp filenames")
	}
}

func TestChromaTokenise(t *testing.T) {
	it, err := Chroma().Tokenise(nil, "real x = 3.14;")
	if err != nil {
		t.Fatalf("Tokenise returned error: %v", err)
	}

	var tokens []chroma.Token
	for token := it(); token != chroma.EOF; token = it() {
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		t.Fatal("Expected tokens, got none")
	}
	if tokens[0].Type != chroma.KeywordType || tokens[0].Value != "real" {
		t.Errorf("Expected leading (KeywordType, \"real\"), got (%v, %q)", tokens[0].Type, tokens[0].Value)
	}

	var got string
	for _, token := range tokens {
		got += token.Value
	}
	if got != "real x = 3.14;" {
		t.Errorf("round trip through chroma failed, got %q", got)
	}
}

func TestChromaCategoryMapping(t *testing.T) {
	// Every engine category needs a chroma type, or adapted tokens would
	// silently map to chroma's zero type.
	for c := lexer.Text; c <= lexer.String; c++ {
		if _, ok := categoryTypes[c]; !ok {
			t.Errorf("category %v has no chroma token type", c)
		}
	}
}
