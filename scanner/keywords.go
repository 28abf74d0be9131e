package scanner

import "github.com/havrydotdev/classbox/token"

var keywords = map[string]token.Kind{
	"and":     token.And,
	"bool":    token.BoolType,
	"class":   token.Class,
	"else":    token.Else,
	"extends": token.Extends,
	"false":   token.False,
	"for":     token.For,
	"if":      token.If,
	"int":     token.IntType,
	"new":     token.NewKw,
	"null":    token.Null,
	"or":      token.Or,
	"real":    token.RealType,
	"string":  token.StringType,
	"true":    token.True,
	"while":   token.While,
}
