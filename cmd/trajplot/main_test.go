package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `step,body,x,y,vx,vy
0,0,0,0,0,0
0,1,3,4,0,0
1,0,0,0,0,0
1,1,6,8,0,0
`

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args     func(in, out string) []string
		input    string
		wantCode int
		stdout   string
		stderr   string
		written  bool
	}{
		"trajectory by default": {
			args:     func(in, out string) []string { return []string{"-o", out, in} },
			input:    sampleCSV,
			stdout:   "Wrote SVG to ",
			written:  true,
			wantCode: 0,
		},
		"distance with flags after input": {
			args:     func(in, out string) []string { return []string{in, "-t", "distance", "-pairs", "0-1", "-out", out} },
			input:    sampleCSV,
			stdout:   "Wrote distance SVG to ",
			written:  true,
			wantCode: 0,
		},
		"unsupported mode": {
			args:     func(in, out string) []string { return []string{"-type", "energy", "-o", out, in} },
			input:    sampleCSV,
			stderr:   "unsupported plot type",
			wantCode: 1,
		},
		"malformed pairs": {
			args:     func(in, out string) []string { return []string{"-t", "distance", "-pairs", "0-x", "-o", out, in} },
			input:    sampleCSV,
			stderr:   "invalid -pairs",
			wantCode: 1,
		},
		"missing column": {
			args:     func(in, out string) []string { return []string{"-o", out, in} },
			input:    "step,body,x\n0,0,1\n",
			stderr:   "missing column",
			wantCode: 1,
		},
		"no input": {
			args:     func(string, string) []string { return []string{"-o", "x.svg"} },
			stderr:   "expected exactly one input file",
			wantCode: 2,
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			in := writeInput(t, tc.input)
			out := filepath.Join(t.TempDir(), "plot.svg")

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			code := run(context.Background(), tc.args(in, out), stdout, stderr)
			assert.Equal(t, tc.wantCode, code, stderr.String())
			assert.Contains(t, stdout.String(), tc.stdout)
			assert.Contains(t, stderr.String(), tc.stderr)

			_, err := os.Stat(out)
			assert.Equal(t, tc.written, err == nil)
		})
	}
}

func TestRunStages(t *testing.T) {
	t.Parallel()

	in := writeInput(t, sampleCSV)
	dir := t.TempDir()
	out := filepath.Join(dir, "plot.svg")
	dot := filepath.Join(dir, "stages.dot")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := run(context.Background(), []string{"-v", "-stages", dot, "-o", out, in}, stdout, stderr)
	require.Equal(t, 0, code, stderr.String())

	content, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "strict digraph {"))
	assert.Contains(t, string(content), `"load" -> "series"`)
	assert.Contains(t, stderr.String(), "stage render:")
}
