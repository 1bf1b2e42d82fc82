package freefem

import (
	"testing"

	"github.com/FreeFem/freefem-highlight/lexer"
)

func TestCommentLine(t *testing.T) {
	tokens := FreeFem.Tokenize("// comment\n")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %v", tokens)
	}
	if tokens[0].Category != lexer.Comment || tokens[0].Value != "// comment" {
		t.Errorf("Expected (Comment, \"// comment\"), got (%v, %q)", tokens[0].Category, tokens[0].Value)
	}
	if tokens[1].Category != lexer.Text || tokens[1].Value != "\n" {
		t.Errorf("Expected (Text, \"\\n\"), got (%v, %q)", tokens[1].Category, tokens[1].Value)
	}
}

func TestDeclaration(t *testing.T) {
	expected := []lexer.Token{
		{Category: lexer.Type, Value: "real"},
		{Category: lexer.Text, Value: " "},
		{Category: lexer.Name, Value: "x"},
		{Category: lexer.Text, Value: " "},
		{Category: lexer.Operator, Value: "="},
		{Category: lexer.Text, Value: " "},
		{Category: lexer.Number, Value: "3.14"},
		{Category: lexer.Punctuation, Value: ";"},
	}

	tokens := FreeFem.Tokenize("real x = 3.14;")
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %v tokens, got %v", len(expected), tokens)
	}
	for i, want := range expected {
		if tokens[i].Category != want.Category || tokens[i].Value != want.Value {
			t.Errorf("token %v: expected (%v, %q), got (%v, %q)",
				i, want.Category, want.Value, tokens[i].Category, tokens[i].Value)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	const source = `// Poisson on the unit square
mesh Th = square(10, 10);
fespace Vh(Th, P1);
Vh u, v;

macro grad(u) [dx(u), dy(u)] // EOM

solve Poisson(u, v)
	= int2d(Th)(grad(u)' * grad(v))
	- int2d(Th)(v)
	+ on(1, 2, 3, 4, u = 0);

plot(u, cmm = "solution", wait = true);
`

	var got string
	for _, token := range FreeFem.Tokenize(source) {
		got += token.Value
	}
	if got != source {
		t.Errorf("round trip failed:\nwant %q\ngot  %q", source, got)
	}
}

func TestWordClassification(t *testing.T) {
	cases := []struct {
		word     string
		expected lexer.Category
	}{
		{"mesh", lexer.Type},
		{"fespace", lexer.Type},
		{"NewMacro", lexer.Type},
		{"P1", lexer.Class},
		{"RT0Ortho", lexer.Class},
		{"include", lexer.Preprocessor},
		{"load", lexer.Preprocessor},
		{"cout", lexer.Keyword},
		{"mpiCommWorld", lexer.Keyword},
		{"true", lexer.Keyword},
		{"buildmesh", lexer.Function},
		{"int2d", lexer.Function},
		{"movemeshS", lexer.Function},
		{"gslsfbesselJ0", lexer.Function},
		{"hmin", lexer.Pseudo},
		{"solver", lexer.Pseudo},
		{"fixeborder", lexer.Deprecated},
		{"template", lexer.Name}, // suppressed C++ word
		{"x", lexer.Name},        // suppressed single-letter builtin
		{"myvariable", lexer.Name},
	}

	for _, c := range cases {
		tokens := FreeFem.Tokenize(c.word)
		if len(tokens) != 1 {
			t.Fatalf("%q: expected a single token, got %v", c.word, tokens)
		}
		if tokens[0].Category != c.expected {
			t.Errorf("%q: expected %v, got %v", c.word, c.expected, tokens[0].Category)
		}
	}
}

// Some names appear in more than one word set; the set precedence decides.
func TestClassificationPrecedence(t *testing.T) {
	cases := []struct {
		word     string
		expected lexer.Category
	}{
		{"adj", lexer.Keyword},   // keywords before functions
		{"label", lexer.Keyword}, // keywords before parameters
		{"swap", lexer.Function}, // functions before parameters
	}

	for _, c := range cases {
		if got := classify(c.word); got != c.expected {
			t.Errorf("%q: expected %v, got %v", c.word, c.expected, got)
		}
	}
}

func TestKeywordInsideIdentifier(t *testing.T) {
	tokens := FreeFem.Tokenize("realvalue")
	if len(tokens) != 1 {
		t.Fatalf("Expected a single token, got %v", tokens)
	}
	if tokens[0].Category != lexer.Name {
		t.Errorf("Expected Name for identifier containing a type name, got %v", tokens[0].Category)
	}
}

func TestNumbers(t *testing.T) {
	for _, input := range []string{"0", "42", "3.14", "2.", ".5", "1e-5", "6.02e23", "0xFF", "2i"} {
		tokens := FreeFem.Tokenize(input)
		if len(tokens) != 1 {
			t.Fatalf("%q: expected a single token, got %v", input, tokens)
		}
		if tokens[0].Category != lexer.Number {
			t.Errorf("%q: expected Number, got %v", input, tokens[0].Category)
		}
	}
}

func TestOperators(t *testing.T) {
	// The transpose quote and the elementwise operators are FreeFem
	// specific; the dot alone is punctuation.
	tokens := FreeFem.Tokenize("u' + A^-1 .* B ./ C")
	var operators []string
	for _, token := range tokens {
		if token.Category == lexer.Operator {
			operators = append(operators, token.Value)
		}
	}
	expected := []string{"'", "+", "^-1", ".*", "./"}
	if len(operators) != len(expected) {
		t.Fatalf("Expected operators %v, got %v", expected, operators)
	}
	for i := range expected {
		if operators[i] != expected[i] {
			t.Errorf("operator %v: expected %q, got %q", i, expected[i], operators[i])
		}
	}

	dot := FreeFem.Tokenize(".")
	if len(dot) != 1 || dot[0].Category != lexer.Punctuation {
		t.Errorf("Expected lone dot to be Punctuation, got %v", dot)
	}
}

func TestStrings(t *testing.T) {
	tokens := FreeFem.Tokenize(`cout << "a \"quoted\" word" << endl;`)
	var strs []string
	for _, token := range tokens {
		if token.Category == lexer.String {
			strs = append(strs, token.Value)
		}
	}
	if len(strs) != 1 || strs[0] != `"a \"quoted\" word"` {
		t.Errorf("Expected one string literal with escapes, got %v", strs)
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens := FreeFem.Tokenize(`cout << "abc`)
	last := tokens[len(tokens)-1]
	if last.Category != lexer.String || last.Value != `"abc` {
		t.Errorf("Expected trailing (String, %q), got (%v, %q)", `"abc`, last.Category, last.Value)
	}
	for _, token := range tokens {
		if token.Category == lexer.Error {
			t.Errorf("Expected no Error tokens, got one at %v", token.Pos)
		}
	}
}

func TestBlockComment(t *testing.T) {
	tokens := FreeFem.Tokenize("/* a\nb */x")
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %v", tokens)
	}
	if tokens[0].Category != lexer.Comment || tokens[0].Value != "/* a\nb */" {
		t.Errorf("Expected multi-line Comment, got (%v, %q)", tokens[0].Category, tokens[0].Value)
	}

	unterminated := FreeFem.Tokenize("/* no end")
	if len(unterminated) != 1 || unterminated[0].Category != lexer.Comment {
		t.Errorf("Expected unterminated block comment to lex as one Comment, got %v", unterminated)
	}
}

func TestConfigAndRegistration(t *testing.T) {
	cfg := FreeFem.Config()
	if cfg.Name != "FreeFem" {
		t.Errorf("Expected name FreeFem, got %q", cfg.Name)
	}

	if got := lexer.Default.Get("freefem"); got != FreeFem {
		t.Error("Expected alias lookup in the default registry to find the lexer")
	}
	if got := lexer.Default.Match("cavity.edp"); got != FreeFem {
		t.Error("Expected *.edp filenames to match the lexer")
	}
	if got := lexer.Default.MatchMimeType("text/x-freefem"); got != FreeFem {
		t.Error("Expected the MIME type to match the lexer")
	}
}
