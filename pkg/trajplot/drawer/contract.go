package drawer

import "io"

// Drawer is an interface that defines the methods for serialising a plot scene.
type Drawer interface {
	// Draw writes the scene as a complete document to wrt.
	Draw(wrt io.Writer, scene Scene) error
}
