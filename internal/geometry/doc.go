// Package geometry defines the box-space coordinate types shared by the
// region extraction, selection and rendering packages.
//
// # Coordinate System
//
// Box-space is 1-based and derived from 0-based grid positions:
//   - X = row + 1 (increases downward)
//   - Y = column + 1 (increases rightward)
//
// Both corners of a Box are inclusive, so a single cell at grid position
// (0, 0) is the box (1,1)(1,1) with area 1.
//
// # Formatting
//
// A box renders as "(x1,y1)(x2,y2)". A sequence of boxes renders as the
// concatenation of its members with no delimiter, in the order given.
package geometry
