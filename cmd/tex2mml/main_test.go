package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgfjr/tex2mml/runtime/batch"
	"github.com/pgfjr/tex2mml/runtime/parser"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin io.Reader, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := newApp(stdin, &stdout, &stderr).execute(context.Background(), args)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertArgument(t *testing.T) {
	res := run(t, nil, "x^2")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "<math display='block'><msup><mi>x</mi><mn>2</mn></msup></math>\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestConvertFlags(t *testing.T) {
	res := run(t, nil, "--inline", "--xmlns", "x")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "<math xmlns='http://www.w3.org/1998/Math/MathML' display='inline'><mi>x</mi></math>\n", res.stdout)
}

func TestConvertStdin(t *testing.T) {
	res := run(t, strings.NewReader("\\frac12\n"))
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "<math display='block'><mfrac><mn>1</mn><mn>2</mn></mfrac></math>\n", res.stdout)

	res = run(t, strings.NewReader("y"), "-f", "-")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "<mi>y</mi>")
}

func TestConvertFile(t *testing.T) {
	path := writeFile(t, "formula.tex", "a+b\n")
	res := run(t, nil, "--file", path)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "<math display='block'><mrow><mi>a</mi><mo>+</mo><mi>b</mi></mrow></math>\n", res.stdout)

	res = run(t, nil, "--file", filepath.Join(t.TempDir(), "missing.tex"))
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "error opening file")
}

func TestConvertErrors(t *testing.T) {
	res := run(t, nil, "--no-color", `x+\badname`)
	assert.Equal(t, ExitConvertError, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, `Error: Undefined control sequence: \badname`)
	assert.Contains(t, res.stderr, "--> 1:3")
	assert.Contains(t, res.stderr, " 1 | x+\\badname\n")
	assert.Contains(t, res.stderr, "   |   ^ UNDEFINED_CONTROL_SEQUENCE\n")
	assert.NotContains(t, res.stderr, "\033[")

	path := writeFile(t, "bad.tex", "x\n+\\sqr{y}\n")
	res = run(t, nil, "--no-color", "-f", path)
	assert.Equal(t, ExitConvertError, res.code)
	assert.Contains(t, res.stderr, "--> "+path+":2:2")
	assert.Contains(t, res.stderr, `did you mean '\sqrt'?`)
}

func TestConvertUsageErrors(t *testing.T) {
	path := writeFile(t, "formula.tex", "x")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"argument and file", []string{"x", "-f", path}, "not both"},
		{"no input", nil, "no formula given"},
		{"too many arguments", []string{"x", "y"}, "accepts at most 1 arg"},
		{"unknown flag", []string{"--bogus", "x"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, nil, append([]string{"--no-color"}, tt.args...)...)
			assert.Equal(t, ExitFailure, res.code)
			assert.Contains(t, res.stderr, tt.want)
		})
	}
}

func TestDebugLogging(t *testing.T) {
	res := run(t, nil, "--debug", "x")
	require.Equal(t, ExitSuccess, res.code)
	assert.Contains(t, res.stderr, "[PARSER] convert")
	assert.NotContains(t, res.stderr, "time=")
	assert.NotContains(t, res.stderr, "level=")

	res = run(t, nil, "x")
	assert.Empty(t, res.stderr)
}

func TestBatchCommand(t *testing.T) {
	manifest := writeFile(t, "manifest.yaml", `version: "1.0.0"
display: false
formulas:
  - id: square
    tex: 'x^2'
  - id: broken
    tex: '\badname'
`)

	res := run(t, nil, "batch", manifest)
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "square", results[0]["id"])
	assert.Equal(t, "<math display='inline'><msup><mi>x</mi><mn>2</mn></msup></math>", results[0]["mathml"])
	assert.Equal(t, "broken", results[1]["id"])
	require.Contains(t, results[1], "error")
	assert.Equal(t, "UNDEFINED_CONTROL_SEQUENCE", results[1]["error"].(map[string]any)["kind"])

	out := filepath.Join(t.TempDir(), "results.yaml")
	res = run(t, nil, "batch", manifest, "--format", "yaml", "-o", out)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Empty(t, res.stdout)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- id: square")

	res = run(t, nil, "--no-color", "batch", manifest, "--format", "xml")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, `unknown format "xml"`)

	invalid := writeFile(t, "invalid.yaml", "version: nope\nformulas: []\n")
	res = run(t, nil, "--no-color", "batch", invalid)
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "invalid manifest")
}

func TestTokensCommand(t *testing.T) {
	res := run(t, nil, "tokens", `x^{\alpha}`)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, strings.Join([]string{
		`LETTER("x")@0`,
		`SUPERSCRIPT("^")@1`,
		`LBRACE("{")@2`,
		`CONTROL_NAME("alpha")@3`,
		`RBRACE("}")@9`,
		`EOF@10`,
	}, "\n")+"\n", res.stdout)
}

func TestFormatError(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, errors.New("boom"), false)
	assert.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	FormatError(&buf, errors.New("boom"), true)
	assert.Equal(t, ColorRed+"Error: "+ColorReset+"boom\n", buf.String())

	buf.Reset()
	FormatError(&buf, nil, false)
	assert.Empty(t, buf.String())

	_, err := parser.Convert("}")
	require.Error(t, err)
	buf.Reset()
	FormatError(&buf, err, false)
	assert.Contains(t, buf.String(), "^ MORE_RBRACE_THAN_LBRACE")
}

func TestShouldUseColor(t *testing.T) {
	assert.False(t, ShouldUseColor(true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColor(false))
}

func TestHasPipedInput(t *testing.T) {
	assert.False(t, hasPipedInput(nil))
	assert.True(t, hasPipedInput(strings.NewReader("x")))

	f, err := os.Open(writeFile(t, "in.tex", "x"))
	require.NoError(t, err)
	defer f.Close()
	assert.True(t, hasPipedInput(f), "regular files are not terminals")
}

type closeRecorder struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestWriteResultsReportsClose(t *testing.T) {
	results := []batch.Result{{ID: "a", MathML: "<math display='block'><mi>a</mi></math>"}}

	ok := &closeRecorder{}
	require.NoError(t, writeResults(ok, results, batch.FormatJSON))
	assert.True(t, ok.closed)
	assert.Contains(t, ok.String(), `"id": "a"`)

	flushErr := errors.New("disk full")
	failing := &closeRecorder{closeErr: flushErr}
	err := writeResults(failing, results, batch.FormatJSON)
	assert.ErrorIs(t, err, flushErr)
	assert.True(t, failing.closed)

	// An encoding error wins over the close error
	bad := &closeRecorder{closeErr: flushErr}
	err = writeResults(bad, results, batch.Format("xml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, flushErr)
	assert.True(t, bad.closed)
}
