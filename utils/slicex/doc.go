// Package slicex provides generic search helpers over slices.
package slicex
