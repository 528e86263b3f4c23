// Package storage
// Author: momentics <momentics@gmail.com>
//
// Storage engine for the nexvec container. A Buffer owns exactly one
// contiguous heap region and tracks the live-prefix size separately from
// the reserved capacity. All growth, relocation, and element lifecycle
// (construct, destroy, copy- and move-transfer) funnels through this
// package; the vector package on top is a thin surface over it.
// See buffer.go and lifecycle.go for implementation details.
package storage
