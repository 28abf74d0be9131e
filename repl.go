package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	eval "github.com/havrydotdev/classbox/evaluator"
	"github.com/havrydotdev/classbox/scanner"
	"github.com/havrydotdev/classbox/token"
)

const (
	banner     = "classbox (version 0.1.0). Type :quit to exit."
	promptCont = "... "
)

func repl(ctx *cli.Context) error {
	e, cfg, err := makeEvaluator(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.App.Writer, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			if f, err := os.Create(cfg.HistoryFile); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		src, ok := readStatement(ln, cfg.Prompt)
		if !ok {
			fmt.Fprintln(ctx.App.Writer)
			return nil
		}

		trimmed := strings.TrimSpace(src)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit":
			return nil
		case trimmed == ":vars":
			printVars(ctx.App.Writer, e)
			continue
		case strings.HasPrefix(trimmed, ":"):
			fmt.Fprintln(ctx.App.Writer, "unknown command. Commands: :vars, :quit.")
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if err := e.Exec(src); err != nil {
			fmt.Fprintln(ctx.App.ErrWriter, err)
		}
	}
}

// readStatement reads lines until they form a complete input. The second
// result is false once the input is closed.
func readStatement(ln *liner.State, prompt string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = promptCont
		}

		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			// io.EOF on Ctrl-D, or a terminal error.
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !incomplete(b.String()) {
			return b.String(), true
		}
	}
}

// incomplete reports whether src ends inside a string literal or an open
// brace or parenthesis.
func incomplete(src string) bool {
	tokens, err := scanner.New(src).Scan()
	if err != nil {
		return scanner.Incomplete(err)
	}

	depth := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case token.LeftBrace, token.LeftParen:
			depth++
		case token.RightBrace, token.RightParen:
			depth--
		}
	}

	return depth > 0
}

// printVars lists the global variables of e with their types. Builtins
// are skipped.
func printVars(w io.Writer, e *eval.Evaluator) {
	for _, name := range e.GlobalNames() {
		v, _ := e.Lookup(name)
		if _, ok := v.(*eval.NativeFun); ok {
			continue
		}

		fmt.Fprintf(w, "%s %s = %s\n", v.Type(), name, v)
	}
}
