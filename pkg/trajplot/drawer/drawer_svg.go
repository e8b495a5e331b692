package drawer

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

// SVGDrawer is a drawer that serialises a scene as an SVG document.
type SVGDrawer struct{}

// NewSVGDrawer creates a new SVG drawer.
func NewSVGDrawer() *SVGDrawer {
	return &SVGDrawer{}
}

// Draw writes the scene as an SVG document.
func (d *SVGDrawer) Draw(wrt io.Writer, scene Scene) error {
	ew := &errWriter{w: wrt}
	canvas := svg.New(ew)

	canvas.Start(scene.Width, scene.Height)

	for _, prim := range scene.Primitives {
		switch p := prim.(type) {
		case Rect:
			canvas.Rect(p.X, p.Y, p.Width, p.Height, attr("fill", p.Fill))
		case Text:
			canvas.Text(p.X, p.Y, p.Content, textAttrs(p)...)
		case Polyline:
			canvas.Polyline(p.X, p.Y,
				attr("fill", "none"),
				attr("stroke", p.Stroke),
				attr("stroke-width", p.StrokeWidth),
			)
		case Circle:
			canvas.Circle(p.X, p.Y, p.Radius, attr("fill", p.Fill))
		default:
			return errors.Errorf("unknown primitive %T", prim)
		}
	}

	canvas.End()

	if ew.err != nil {
		return errors.Wrap(ew.err, "unable to write svg")
	}

	return nil
}

func textAttrs(t Text) []string {
	attrs := []string{attr("font-size", t.FontSize)}
	if t.Fill != "" {
		attrs = append(attrs, attr("fill", t.Fill))
	}

	if t.Rotate != 0 {
		attrs = append(attrs, attr("transform", fmt.Sprintf("rotate(%d %d,%d)", t.Rotate, t.X, t.Y)))
	}

	return attrs
}

// attr formats a raw attribute; svgo passes strings holding '=' through untouched.
func attr(name string, value any) string {
	return fmt.Sprintf(`%s="%v"`, name, value)
}

// errWriter keeps the first write error, svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}

	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}

	return n, err
}

var _ Drawer = (*SVGDrawer)(nil)
