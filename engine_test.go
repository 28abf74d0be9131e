package main

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eval "github.com/havrydotdev/classbox/evaluator"
)

//go:embed testdata/*.cbx testdata/*.out
var scripts embed.FS

func TestScripts(t *testing.T) {
	entries, err := scripts.ReadDir("testdata")
	require.NoError(t, err)

	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".cbx")
		if !ok {
			continue
		}

		t.Run(name, func(t *testing.T) {
			src, err := scripts.ReadFile("testdata/" + name + ".cbx")
			require.NoError(t, err)
			want, err := scripts.ReadFile("testdata/" + name + ".out")
			require.NoError(t, err)

			var out bytes.Buffer
			e, err := eval.New(eval.WithOutput(&out))
			require.NoError(t, err)

			require.NoError(t, e.Exec(string(src)))
			assert.Equal(t, string(want), out.String())
		})
	}
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(append([]string{"classbox"}, args...))
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := runApp(t, "run", filepath.Join("testdata", "point.cbx"))
	require.NoError(t, err)
	assert.Equal(t, "{ x: 0, y: 0 }\n{ x: 5, y: 0 }\n5\n", out)

	out, err = runApp(t, filepath.Join("testdata", "point.cbx"))
	require.NoError(t, err)
	assert.Contains(t, out, "{ x: 5, y: 0 }")

	_, err = runApp(t, "run")
	assert.ErrorContains(t, err, "missing FILE")
}

func TestASTCommand(t *testing.T) {
	out, err := runApp(t, "ast", filepath.Join("testdata", "point.cbx"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "(class Point (int x) (int y))", lines[0])
	assert.Equal(t, "(var Point p (new Point))", lines[1])
	assert.Equal(t, "(set x p 5)", lines[3])
}

func TestConfigFlags(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "classbox.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("Prompt: \"cb> \"\nFieldCacheSize: 8\n"), 0o600))

	out, err := runApp(t, "--config", cfgPath, "--loglevel", "error", "dumpconfig")
	require.NoError(t, err)
	assert.Contains(t, out, `"cb> "`)
	assert.Contains(t, out, "FieldCacheSize = 8")
	assert.Contains(t, out, `LogLevel = "error"`)

	_, err = runApp(t, "--loglevel", "loud", "dumpconfig")
	assert.ErrorContains(t, err, "LogLevel")
}

func TestRuntimeErrorFailsRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cbx")
	require.NoError(t, os.WriteFile(path, []byte("class P { int x; }\nP p;\nprint(p.x);\n"), 0o600))

	_, err := runApp(t, "run", path)
	assert.ErrorContains(t, err, "line 3")
}

func TestIncomplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"int x = 1;", false},
		{"class P {", true},
		{"class P {\n int x;\n}", false},
		{"print(1,", true},
		{`string s = "open`, true},
		{"}", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, incomplete(tt.src), tt.src)
	}
}

func TestPrintVars(t *testing.T) {
	e, err := eval.New(eval.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	require.NoError(t, e.Exec("class P { int x; }\nP p = new P;\nint n = 3;"))

	var out bytes.Buffer
	printVars(&out, e)
	assert.Equal(t, "int n = 3\nP p = { x: 0 }\n", out.String())
}
