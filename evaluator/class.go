package eval

import (
	interp "github.com/havrydotdev/classbox/interpreter"
	"github.com/havrydotdev/classbox/token"
	"github.com/havrydotdev/classbox/types"
	"github.com/havrydotdev/classbox/value"
)

func (e *Evaluator) Class(name token.Token, parent *token.Token, fields []interp.Field) StmtEvaluator {
	return stmtEvalFunc(func() error {
		var super *types.Class
		if parent != nil {
			c, err := e.registry.LookupClass(parent.Lexeme)
			if err != nil {
				return atLine(*parent, err)
			}

			super = c
		}

		class := types.NewClass(name.Lexeme, super)
		for _, f := range fields {
			ft, err := e.fieldType(class, f.Type)
			if err != nil {
				return atLine(f.Type, err)
			}

			if err := class.AddField(f.Name.Lexeme, ft); err != nil {
				return atLine(f.Name, err)
			}
		}

		if err := e.registry.Declare(class); err != nil {
			return atLine(name, err)
		}

		e.log.Debug("class declared", "class", class.Name(), "fields", len(class.FieldTypes()))
		return nil
	})
}

// fieldType resolves a field's type name. A class may hold fields of its
// own type before it is declared.
func (e *Evaluator) fieldType(class *types.Class, typ token.Token) (value.Type, error) {
	if typ.Lexeme == class.Name() {
		return class, nil
	}

	return e.resolveType(typ)
}

func (e *Evaluator) resolveType(typ token.Token) (value.Type, error) {
	return e.registry.Lookup(typ.Lexeme)
}
