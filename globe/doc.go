// Package globe implements the draw globe: a Fibonacci-sphere point cloud with
// an idle/spin camera, pointer momentum, and a per-frame perspective projection.
//
// The package is presentation only. It consumes an entity list and a spin flag
// through Inputs and produces a Frame per tick. Painters in package render turn
// a Frame into terminal cells or raster pixels.
//
// A Visualizer is single-owner: Tick and the gesture handlers must be called
// from the same goroutine, normally the frame loop's.
package globe
