package stagegraph_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-trajplot/pkg/trajplot/measure"
	"github.com/askiada/go-trajplot/pkg/trajplot/stagegraph"
)

func newMeasure(stages ...string) *measure.DefaultMeasure {
	msr := measure.NewDefaultMeasure()
	for i, name := range stages {
		msr.AddMetric(name).AddDuration(time.Duration(i+1) * time.Millisecond)
	}

	return msr
}

func TestStages(t *testing.T) {
	t.Parallel()

	sg, err := stagegraph.New(newMeasure("load", "series", "scene", "render", "write"))
	require.NoError(t, err)

	got, err := sg.Stages()
	require.NoError(t, err)
	assert.Equal(t, []string{"load", "series", "scene", "render", "write"}, got)
}

func TestDraw(t *testing.T) {
	t.Parallel()

	sg, err := stagegraph.New(newMeasure("load", "series"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sg.Draw(&buf))

	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "strict digraph {"))
	assert.Contains(t, dot, `"load" -> "series";`)
	assert.Contains(t, dot, `label=<load <BR /> <FONT POINT-SIZE="12">1ms</FONT>>`)
	assert.Contains(t, dot, `label=<series <BR /> <FONT POINT-SIZE="12">2ms</FONT>>`)
	assert.Less(t, strings.Index(dot, `"load" [`), strings.Index(dot, `"series" [`))
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	sg, err := stagegraph.New(measure.NewDefaultMeasure())
	require.NoError(t, err)

	got, err := sg.Stages()
	require.NoError(t, err)
	assert.Empty(t, got)
}
