package drawer

// Primitive is one drawing instruction of a scene.
// It is implemented by Rect, Text, Polyline and Circle.
type Primitive interface {
	primitive()
}

// Rect is a filled rectangle.
type Rect struct {
	X, Y, Width, Height int
	Fill                string
}

// Text is a text label anchored at X, Y. A non zero Rotate turns it about its anchor, in degrees.
type Text struct {
	X, Y     int
	Content  string
	FontSize int
	Fill     string
	Rotate   int
}

// Polyline connects its points in order.
type Polyline struct {
	X, Y        []int
	Stroke      string
	StrokeWidth int
}

// Circle is a filled point marker.
type Circle struct {
	X, Y, Radius int
	Fill         string
}

func (Rect) primitive()     {}
func (Text) primitive()     {}
func (Polyline) primitive() {}
func (Circle) primitive()   {}

// Scene is an ordered list of primitives drawn on a fixed size canvas.
type Scene struct {
	Width      int
	Height     int
	Primitives []Primitive
}

func (s *Scene) add(p Primitive) {
	s.Primitives = append(s.Primitives, p)
}
