// Package coord edits the components of a Vec3 selectively.
//
// An Axis names the components to touch; Set, Add, Subtract, Multiply
// and Divide apply their operator to those components and copy the
// others. All functions are pure and safe for concurrent use.
package coord
