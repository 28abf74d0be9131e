package parser_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havrydotdev/classbox/expr"
	"github.com/havrydotdev/classbox/parser"
	"github.com/havrydotdev/classbox/scanner"
)

func parse(t *testing.T, src string) ([]string, []error) {
	t.Helper()

	tokens, err := scanner.New(src).Scan()
	require.NoError(t, err)

	stmts, errs := parser.New(tokens, expr.NewPrinter()).Parse()

	out := make([]string, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, s.Print())
	}

	return out, errs
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "class",
			src:  "class Point { int x, y; }",
			want: []string{"(class Point (int x) (int y))"},
		},
		{
			name: "subclass with class-typed field",
			src:  "class Node extends Base { Node next; string name; }",
			want: []string{"(class Node extends Base (Node next) (string name))"},
		},
		{
			name: "typed declarations",
			src:  "int n; Point p = new Point; real r = 1.5;",
			want: []string{"(var int n)", "(var Point p (new Point))", "(var real r 1.5)"},
		},
		{
			name: "field assignment chain",
			src:  `a.b.c = "x";`,
			want: []string{`(set c (get b a) "x")`},
		},
		{
			name: "variable assignment",
			src:  "a = b = null;",
			want: []string{"(assign a (assign b null))"},
		},
		{
			name: "calls and precedence",
			src:  "print(a.x + 2 * 3 == 7 and !ok);",
			want: []string{"(call print (and (== (+ (get x a) (* 2 3)) 7) (! ok)))"},
		},
		{
			name: "new with parens",
			src:  "p = new Point();",
			want: []string{"(assign p (new Point))"},
		},
		{
			name: "if without else",
			src:  "if (a) b;",
			want: []string{"(if a b (block))"},
		},
		{
			name: "for loop",
			src:  "for (int i = 0; i < 3; i = i + 1) print(i);",
			want: []string{"(block (var int i 0) (while (< i 3) (block (call print i) (assign i (+ i 1)))))"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := parse(t, tt.src)
			require.Empty(t, errs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrorsRecover(t *testing.T) {
	got, errs := parse(t, "int = 3;\nint y = ;\nint z = 1;")

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "expected variable name")
	assert.Contains(t, errs[1].Error(), "line 2")
	assert.Equal(t, []string{"(var int z 1)"}, got)

	var se *parser.SyntaxError
	require.True(t, errors.As(errs[1], &se))
	assert.Equal(t, 2, se.Line)
	assert.True(t, errors.Is(errs[0], parser.ErrSyntax))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"class { int x; }", "expected class name"},
		{"class A extends { }", "expected parent class name"},
		{"class A { 3 x; }", "expected field type"},
		{"class A { int x }", "expected ';' after field declaration"},
		{"if a) b;", "expected '(' after 'if'"},
		{"while (a b;", "expected ')' after while condition"},
		{"new 3;", "expected class name after 'new'"},
		{"a.;", "expected field name after '.'"},
		{"print(1;", "expected ')' after arguments"},
		{"{ a;", "expected '}' after block"},
	}

	for _, tt := range tests {
		_, errs := parse(t, tt.src)
		require.NotEmpty(t, errs, tt.src)
		assert.Contains(t, errs[0].Error(), tt.want, tt.src)
	}
}
