// Package model provides the data structures shared by the trajplot packages.
// It defines the records read from simulation output, the per-body and per-pair series
// derived from them, and the errors every stage of a plot run reports.
package model
