package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-trajplot/pkg/trajplot/loader"
	"github.com/askiada/go-trajplot/pkg/trajplot/model"
)

func TestRead(t *testing.T) {
	t.Parallel()

	input := "step,body,x,y\n0,0,0,0\n1,0,1,1\n0,1,0,1\n1,1,1,0\n"

	bodies, err := loader.Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, bodies.SortedIDs())
	assert.Equal(t, []model.Record{
		{Step: 0, Body: 0, X: 0, Y: 0},
		{Step: 1, Body: 0, X: 1, Y: 1},
	}, bodies[0])
	assert.Equal(t, []model.Record{
		{Step: 0, Body: 1, X: 0, Y: 1},
		{Step: 1, Body: 1, X: 1, Y: 0},
	}, bodies[1])
}

func TestReadSimulatorColumns(t *testing.T) {
	t.Parallel()

	input := "step,body,x,y,vx,vy\n0,0,4e+07,0,0,1200\n0,1,-1.5,2.25,0,0\n"

	bodies, err := loader.Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, model.Record{Step: 0, Body: 0, X: 4e7, Y: 0}, bodies[0][0])
	assert.Equal(t, model.Record{Step: 0, Body: 1, X: -1.5, Y: 2.25}, bodies[1][0])
}

func TestReadColumnOrder(t *testing.T) {
	t.Parallel()

	input := " y , x ,body,step\n2.0,1.0,3,4\n"

	bodies, err := loader.Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []model.Record{{Step: 4, Body: 3, X: 1, Y: 2}}, bodies[3])
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		wantErr error
	}{
		"empty file":       {input: "", wantErr: model.ErrEmptyData},
		"header only":      {input: "step,body,x,y\n", wantErr: model.ErrEmptyData},
		"missing column":   {input: "step,body,x\n0,0,1\n", wantErr: model.ErrFormat},
		"float step":       {input: "step,body,x,y\n0.5,0,1,1\n", wantErr: model.ErrFormat},
		"text body":        {input: "step,body,x,y\n0,a,1,1\n", wantErr: model.ErrFormat},
		"text coordinate":  {input: "step,body,x,y\n0,0,one,1\n", wantErr: model.ErrFormat},
		"short row":        {input: "step,body,x,y\n0,0,1\n", wantErr: model.ErrFormat},
		"empty coordinate": {input: "step,body,x,y\n0,0,1,\n", wantErr: model.ErrFormat},
		"bad row after good": {
			input:   "step,body,x,y\n0,0,1,1\n1,0,1,oops\n",
			wantErr: model.ErrFormat,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			bodies, err := loader.Read(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, bodies)
		})
	}
}

func TestReadErrorNamesLine(t *testing.T) {
	t.Parallel()

	_, err := loader.Read(strings.NewReader("step,body,x,y\n0,0,1,1\n1,0,1,oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"y"`)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("step,body,x,y\n0,5,1.0,2.0\n"), 0o600))

	bodies, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, bodies.SortedIDs())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, model.ErrIO)
}
