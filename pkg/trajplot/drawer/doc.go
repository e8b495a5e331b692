// Package drawer turns series into drawing primitives and serialises them.
//
// A Scene is built in two steps. The series are fitted onto the canvas through the
// transform package, then every series contributes a polyline, one marker per point and
// a legend entry coloured from the palette in key order. The SVG drawer writes the
// resulting primitives with github.com/ajstarks/svgo.
package drawer
