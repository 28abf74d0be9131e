package eval_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	env "github.com/havrydotdev/classbox/environment"
	eval "github.com/havrydotdev/classbox/evaluator"
	"github.com/havrydotdev/classbox/types"
	"github.com/havrydotdev/classbox/value"
)

func run(t *testing.T, src string, opts ...eval.Option) (string, error) {
	t.Helper()

	var out bytes.Buffer
	e, err := eval.New(append([]eval.Option{eval.WithOutput(&out)}, opts...)...)
	require.NoError(t, err)

	err = e.Exec(src)
	return out.String(), err
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "point",
			src: `
class Point { int x, y; }
Point p = new Point;
print(p);
p.x = 3;
p.y = p.x + 1;
print(p);`,
			want: "{ x: 0, y: 0 }\n{ x: 3, y: 4 }\n",
		},
		{
			name: "inherited fields",
			src: `
class Base { int id; string label; }
class Item extends Base { bool ok; }
Item i = new Item;
i.label = "box";
i.ok = true;
print(i);`,
			want: "{ id: 0, label: box, ok: true }\n",
		},
		{
			name: "declaration aliases the initializer",
			src: `
class P { int x; }
P a = new P;
P b = a;
b.x = 5;
print(a.x);`,
			want: "5\n",
		},
		{
			name: "scalar fields are copied",
			src: `
class P { int x; }
P a = new P;
int n = 1;
a.x = n;
n = 2;
print(a.x);
print(n);`,
			want: "1\n2\n",
		},
		{
			name: "null assignment keeps aliases",
			src: `
class P { int x; }
P a = new P;
P b = a;
a.x = 7;
a = null;
print(a);
print(b);
print(a == null);
print(b != null);`,
			want: "null\n{ x: 7 }\ntrue\ntrue\n",
		},
		{
			name: "clone is shallow",
			src: `
class Leaf { int v; }
class Pair { int n; Leaf leaf; }
Pair p = new Pair;
p.leaf = new Leaf;
Pair c = clone(p);
c.n = 9;
c.leaf.v = 4;
print(p);
print(c);`,
			want: "{ leaf: { v: 4 }, n: 0 }\n{ leaf: { v: 4 }, n: 9 }\n",
		},
		{
			name: "null field",
			src: `
class Node { string name; Node next; }
Node n = new Node;
print(n.next);
n.next = new Node;
n.next = null;
print(n);`,
			want: "null\n{ name: , next: null }\n",
		},
		{
			name: "parse writes in place",
			src: `
class P { int x; real r; }
P p = new P;
parse(p.x, "42");
parse(p.r, " 2.5 ");
print(p);`,
			want: "{ r: 2.5, x: 42 }\n",
		},
		{
			name: "arithmetic",
			src: `
print(1 + 2 * 3);
print(7 / 2);
print(7 / 2.0);
print(-(3 - 5));
print("n=" + 1);
print(2 <= 2.0 and !(1 > 2));`,
			want: "7\n3\n3.5\n2\nn=1\ntrue\n",
		},
		{
			name: "loops",
			src: `
for (int i = 0; i < 3; i = i + 1) print(i);
int n = 3;
while (n > 0) { n = n - 1; }
print(n);`,
			want: "0\n1\n2\n0\n",
		},
		{
			name: "object concatenation and str",
			src: `
class P { int x; }
P p = new P;
string s = str(p);
print("p=" + p);
print(s);`,
			want: "p={ x: 0 }\n{ x: 0 }\n",
		},
		{
			name: "identity",
			src: `
class P { int x; }
P a = new P;
P b = new P;
print(a == a);
print(a == b);
print(hash(a) == hash(a));
print(1 == 1.0);
print(hash(1) == hash(1.0));
print(print);`,
			want: "true\nfalse\ntrue\ntrue\ntrue\n<fn print>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCycles(t *testing.T) {
	got, err := run(t, `
class Node { string name; Node next; }
Node a = new Node;
Node b = new Node;
a.name = "a";
b.name = "b";
a.next = b;
b.next = a;
print(a);
Node self = new Node;
self.next = self;
print(self);`)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(got)), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\{ name: a, next: \{ name: b, next: Node@\d+ \} \}$`, string(lines[0]))
	assert.Regexp(t, `^\{ name: , next: Node@\d+ \}$`, string(lines[1]))
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
		line string
	}{
		{
			name: "read field of null",
			src:  "class P { int x; }\nP p;\nprint(p.x);",
			want: value.ErrNullReference,
			line: "line 3",
		},
		{
			name: "write field of null",
			src:  "class P { int x; }\nP p;\n\np.x = 1;",
			want: value.ErrNullReference,
			line: "line 4",
		},
		{
			name: "missing field",
			src:  "class P { int x; }\nP p = new P;\nprint(p.y);",
			want: value.ErrMissingField,
		},
		{
			name: "object in if condition",
			src:  "class P { int x; }\nP p = new P;\nif (p) print(1);",
			want: value.ErrUnsupportedConversion,
		},
		{
			name: "object in logical",
			src:  "class P { int x; }\nP p = new P;\nprint(p and true);",
			want: value.ErrUnsupportedConversion,
		},
		{
			name: "object into int variable",
			src:  "class P { int x; }\nint n = new P;",
			want: value.ErrUnsupportedConversion,
		},
		{
			name: "object into int field",
			src:  "class P { int x; }\nP p = new P;\np.x = new P;",
			want: eval.ErrTypeMismatch,
		},
		{
			name: "unrelated class",
			src:  "class A { int x; }\nclass B { int x; }\nA a = new B;",
			want: eval.ErrTypeMismatch,
		},
		{
			name: "parse an object",
			src:  "class P { int x; }\nP p = new P;\nparse(p, \"{}\");",
			want: value.ErrUnsupportedParse,
		},
		{
			name: "unknown type",
			src:  "Foo f;",
			want: types.ErrUnknownType,
		},
		{
			name: "redeclared class",
			src:  "class A { int x; }\nclass A { int y; }",
			want: types.ErrRedeclared,
		},
		{
			name: "new of an undeclared class",
			src:  "int n = 1;\nprint(new Missing);",
			want: types.ErrUnknownType,
			line: "line 2",
		},
		{
			name: "undefined variable",
			src:  "print(nope);",
			want: env.ErrUndefined,
		},
		{
			name: "field of a scalar",
			src:  "int n = 1;\nprint(n.x);",
			want: eval.ErrNotAnObject,
		},
		{
			name: "call a scalar",
			src:  "int n = 1;\nn(2);",
			want: eval.ErrNotCallable,
		},
		{
			name: "int division by zero",
			src:  "print(1 / 0);",
			want: eval.ErrDivisionByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			if tt.line != "" {
				assert.Contains(t, err.Error(), tt.line)
			}
		})
	}
}

func TestSubclassAssignable(t *testing.T) {
	got, err := run(t, `
class Base { int id; }
class Child extends Base { string name; }
Base b = new Child;
b.id = 2;
print(b.id);`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", got)
}

func TestAliasSeesOnlyItsDeclaredFields(t *testing.T) {
	const decl = `
class Shape { string name; }
class Square extends Shape { real side; }
Square s = new Square;
Shape alias = s;
`

	got, err := run(t, decl+"print(alias == s);\nalias.name = \"sq\";\nprint(s.name);")
	require.NoError(t, err)
	assert.Equal(t, "false\nsq\n", got)

	_, err = run(t, decl+"print(alias.side);")
	assert.True(t, errors.Is(err, value.ErrMissingField), "got %v", err)

	_, err = run(t, decl+"alias.side = 3;")
	assert.True(t, errors.Is(err, value.ErrMissingField), "got %v", err)
}

func TestArity(t *testing.T) {
	_, err := run(t, "print(1, 2);")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 1 arguments, got 2")
}

func TestParseErrorsStopExecution(t *testing.T) {
	out, err := run(t, "print(1);\nint = 2;")
	require.Error(t, err)

	var pe eval.ParseErrors
	require.True(t, errors.As(err, &pe))
	assert.Len(t, pe, 1)
	assert.Empty(t, out)
}

func TestStatePersistsAcrossExec(t *testing.T) {
	var out bytes.Buffer
	e, err := eval.New(eval.WithOutput(&out))
	require.NoError(t, err)

	require.NoError(t, e.Exec("class P { int x; }"))
	require.NoError(t, e.Exec("P p = new P;"))
	require.NoError(t, e.Exec("p.x = 8;"))
	require.NoError(t, e.Exec("print(p);"))
	assert.Equal(t, "{ x: 8 }\n", out.String())

	p, ok := e.Lookup("p")
	require.True(t, ok)
	assert.Equal(t, "{ x: 8 }", p.String())

	_, err = e.Registry().LookupClass("P")
	assert.NoError(t, err)
}

func TestBlockScopeRestoredAfterError(t *testing.T) {
	e, err := eval.New(eval.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	require.Error(t, e.Exec("{ int inner = 1; print(missing); }"))
	require.NoError(t, e.Exec("int outer = 1;"))

	_, ok := e.Lookup("inner")
	assert.False(t, ok)
}

func TestFieldCacheSize(t *testing.T) {
	e, err := eval.New(eval.WithOutput(&bytes.Buffer{}), eval.WithFieldCacheSize(1))
	require.NoError(t, err)

	require.NoError(t, e.Exec(`
class A { int x; }
class B { int y; }
A a = new A;
B b = new B;
print(a);`))
	assert.Equal(t, 1, e.Registry().CachedClasses())
}

func TestDebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := run(t, "class P { int x; }\nP p = new P;", eval.WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "class declared")
	assert.Contains(t, logs.String(), "class=P")
	assert.Contains(t, logs.String(), "instance created")
}
