// Package trajplot converts simulation output into SVG plots.
//
// A plot run reads records of the form step, body, x, y and renders them in one of two
// modes. Trajectory mode draws the path of every body in data space. Distance mode
// draws, for selected pairs of bodies, the euclidean distance between them at every step
// both were sampled at.
//
// The run is a fixed chain of stages: load, series, scene, render and write. Every stage
// fails fast and the output file is only touched once the whole document has been
// rendered in memory, so a failed run never leaves a partial plot behind. Errors wrap
// the sentinels of the model package and can be matched with errors.Is.
//
// Stage durations can be collected with a measure.Measure and drawn with the stagegraph
// package.
package trajplot
