// Package geom provides the planar line primitives the offset engine
// relies on: line-line intersection, a tolerance-based parallel test,
// projection onto a line and a side-of-line test.
//
// All functions operate on infinite lines given by two points each.
package geom
