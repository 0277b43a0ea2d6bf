package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code     int
	out, err string
}

func runWith(t *testing.T, stdin string, terminal bool, args ...string) result {
	t.Helper()
	var out, errs bytes.Buffer
	code, err := run(args, stdio{
		in:         strings.NewReader(stdin),
		out:        &out,
		err:        &errs,
		inTerminal: terminal,
	})
	require.NoError(t, err)
	return result{code: code, out: out.String(), err: errs.String()}
}

func TestRunExpression(t *testing.T) {
	cases := []struct {
		args []string
		want result
	}{
		{[]string{"6+6"}, result{0, "6+6 = 12\n", ""}},
		{[]string{"(6+10-4)/(1+1*2)+1"}, result{0, "(6+10-4)/(1+1*2)+1 = 5\n", ""}},
		{[]string{"5>6 && 4>6"}, result{0, "5>6 && 4>6 = false\n", ""}},
		{[]string{"(6>7)+(5>6)"}, result{0, "(6>7)+(5>6) = NaN\n", ""}},
		{[]string{"1/3", "--format", "%.3f"}, result{0, "1/3 = 0.333\n", ""}},
		{[]string{"1<3", "--format", "%.3f"}, result{0, "1<3 = true\n", ""}},
		{[]string{"--echo", "1+2*3"}, result{0, "(1 + (2 * 3)) : 1+2*3 = 7\n", ""}},
		{[]string{"6+"}, result{1, "", "the expression \"6+\" is invalid\n"}},
		{[]string{"6as"}, result{1, "", "value \"6as\" is not supported, only float64 and bool are supported\n"}},
		{[]string{"--color", "always", "6+"}, result{1, "", "\x1b[31mthe expression \"6+\" is invalid\x1b[0m\n"}},
		// An empty argument is an expression, not a missing one.
		{[]string{""}, result{1, "", "the expression \"\" is invalid\n"}},
		{[]string{"--", "-1+2"}, result{1, "", "the expression \"-1+2\" is invalid\n"}},
		{[]string{"--", "0-1+2"}, result{0, "0-1+2 = 1\n", ""}},
	}
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			assert.Equal(t, c.want, runWith(t, "", true, c.args...))
		})
	}
}

func TestRunMissingExpression(t *testing.T) {
	r := runWith(t, "", true)
	assert.NotZero(t, r.code)
	assert.Contains(t, r.err, "missing expression")
	assert.Contains(t, r.out, "calc")
	assert.Contains(t, r.out, "calc -- -1+2")
}

func TestRunLines(t *testing.T) {
	r := runWith(t, "1+1\n\n  \n2*3>5\n6+\n", false)
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "1+1 = 2\n2*3>5 = true\n", r.out)
	assert.Equal(t, "the expression \"6+\" is invalid\n", r.err)

	r = runWith(t, "1+1\n2+2", false)
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "1+1 = 2\n2+2 = 4\n", r.out)
}

func TestRunTokens(t *testing.T) {
	r := runWith(t, "", true, "--tokens", "1+2")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, strings.TrimSuffix(r.out, "1+2 = 3\n"), "+")
	assert.True(t, strings.HasSuffix(r.out, "1+2 = 3\n"), "output was %q", r.out)
}

func TestRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: '%.1f'\necho: true\ncolor: never\n"), 0o644))

	r := runWith(t, "", true, "--config", path, "1/4")
	assert.Equal(t, result{0, "(1 / 4) : 1/4 = 0.2\n", ""}, r)

	// Flags override the file.
	r = runWith(t, "", true, "-c", path, "--format", "%.2f", "1/4")
	assert.Equal(t, result{0, "(1 / 4) : 1/4 = 0.25\n", ""}, r)

	r = runWith(t, "", true, "-c", path, "--no-echo", "1/4")
	assert.Equal(t, result{0, "1/4 = 0.2\n", ""}, r)
}

func TestRunSetupErrors(t *testing.T) {
	cases := [][]string{
		{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "1"},
		{"--color", "rainbow", "1"},
		{"--format", "%d%d", "1"},
		{"--no-such-flag", "1"},
	}
	for _, args := range cases {
		_, err := run(args, stdio{in: strings.NewReader(""), out: new(bytes.Buffer), err: new(bytes.Buffer)})
		assert.Error(t, err, "args %q", args)
	}
}
