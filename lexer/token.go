package lexer

// Category classifies a span of source text for display. The set is fixed:
// a colorscheme or host framework maps each category to a rendering style.
type Category uint8

const (
	Text Category = iota // uncolored text, including whitespace
	Error                // input no rule matched
	Comment
	Preprocessor
	Keyword
	Type
	Class // finite element spaces and similar built-in class names
	Function
	Pseudo // named function parameters
	Deprecated
	Name
	Operator
	Punctuation
	Number
	String
)

var categoryNames = [...]string{
	Text:         "Text",
	Error:        "Error",
	Comment:      "Comment",
	Preprocessor: "Preprocessor",
	Keyword:      "Keyword",
	Type:         "Type",
	Class:        "Class",
	Function:     "Function",
	Pseudo:       "Pseudo",
	Deprecated:   "Deprecated",
	Name:         "Name",
	Operator:     "Operator",
	Punctuation:  "Punctuation",
	Number:       "Number",
	String:       "String",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

// A Token is a classified substring of the source text. Pos is the byte
// offset of Value within the input it was scanned from.
type Token struct {
	Pos      int
	Value    string
	Category Category
}
