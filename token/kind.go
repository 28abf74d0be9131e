package token

type Kind uint8

const (
	Illegal Kind = iota
	Eof

	// single character
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one or two characters
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Int
	Real

	// keywords
	And
	BoolType
	Class
	Else
	Extends
	False
	For
	If
	IntType
	NewKw
	Null
	Or
	RealType
	StringType
	True
	While
)

var names = [...]string{
	Illegal:      "Illegal",
	Eof:          "Eof",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	Identifier:   "Identifier",
	String:       "String",
	Int:          "Int",
	Real:         "Real",
	And:          "and",
	BoolType:     "bool",
	Class:        "class",
	Else:         "else",
	Extends:      "extends",
	False:        "false",
	For:          "for",
	If:           "if",
	IntType:      "int",
	NewKw:        "new",
	Null:         "null",
	Or:           "or",
	RealType:     "real",
	StringType:   "string",
	True:         "true",
	While:        "while",
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}

	return "Unknown"
}

// IsType reports whether k starts a type name.
func (k Kind) IsType() bool {
	switch k {
	case BoolType, IntType, RealType, StringType, Identifier:
		return true
	}

	return false
}
