package drawer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-trajplot/pkg/trajplot/drawer"
)

func render(t *testing.T, scene drawer.Scene) *etree.Element {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, drawer.NewSVGDrawer().Draw(&buf, scene))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	require.NotNil(t, doc.Root())

	return doc.Root()
}

func TestSVGDrawerDraw(t *testing.T) {
	t.Parallel()

	scene, err := drawer.TrajectoryScene(twoBodies(), drawer.DefaultConfig())
	require.NoError(t, err)

	root := render(t, scene)

	assert.Equal(t, "svg", root.Tag)
	assert.Equal(t, "800", root.SelectAttrValue("width", ""))
	assert.Equal(t, "600", root.SelectAttrValue("height", ""))

	rects := root.SelectElements("rect")
	require.Len(t, rects, 1)
	assert.Equal(t, "800", rects[0].SelectAttrValue("width", ""))
	assert.Equal(t, "white", rects[0].SelectAttrValue("fill", ""))

	lines := root.SelectElements("polyline")
	require.Len(t, lines, 2)

	for _, line := range lines {
		points := strings.Fields(line.SelectAttrValue("points", ""))
		assert.Len(t, points, 2)

		for _, pt := range points {
			assert.Len(t, strings.Split(pt, ","), 2)
		}

		assert.Equal(t, "none", line.SelectAttrValue("fill", ""))
		assert.Equal(t, "2", line.SelectAttrValue("stroke-width", ""))
	}

	assert.Len(t, root.SelectElements("circle"), 4)

	texts := root.SelectElements("text")
	require.Len(t, texts, 5)

	got := []string{}
	for _, text := range texts {
		got = append(got, text.Text())
	}

	assert.Equal(t, []string{"Gravity simulation", "body 0", "body 1", "x (m)", "y (m)"}, got)
	assert.Equal(t, "rotate(-90 10,30)", texts[4].SelectAttrValue("transform", ""))
	assert.Empty(t, texts[3].SelectAttrValue("transform", ""))
}

func TestSVGDrawerEscapesText(t *testing.T) {
	t.Parallel()

	scene := drawer.Scene{
		Width:      100,
		Height:     100,
		Primitives: []drawer.Primitive{drawer.Text{X: 1, Y: 2, Content: "a < b & c", FontSize: 12}},
	}

	root := render(t, scene)

	texts := root.SelectElements("text")
	require.Len(t, texts, 1)
	assert.Equal(t, "a < b & c", texts[0].Text())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestSVGDrawerWriteError(t *testing.T) {
	t.Parallel()

	scene, err := drawer.TrajectoryScene(twoBodies(), drawer.DefaultConfig())
	require.NoError(t, err)

	err = drawer.NewSVGDrawer().Draw(failingWriter{}, scene)
	assert.ErrorIs(t, err, assert.AnError)
}
