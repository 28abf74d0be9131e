package eval

import (
	"strings"

	"github.com/havrydotdev/classbox/parser"
	"github.com/havrydotdev/classbox/scanner"
)

// ParseErrors holds every error reported while parsing one source.
type ParseErrors []error

func (pe ParseErrors) Error() string {
	msgs := make([]string, 0, len(pe))
	for _, err := range pe {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "\n")
}

// Exec scans, parses and runs src in the evaluator's current state.
// Nothing runs when src has parse errors. Execution stops at the first
// runtime error.
func (e *Evaluator) Exec(src string) error {
	tokens, err := scanner.New(src).Scan()
	if err != nil {
		return err
	}

	stmts, errs := parser.New[ExpEvaluator, StmtEvaluator](tokens, e).Parse()
	if len(errs) > 0 {
		return ParseErrors(errs)
	}

	for _, stmt := range stmts {
		if err := stmt.Eval(); err != nil {
			return err
		}
	}

	return nil
}
