// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2polyhedral

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTree is wrapped by every *MalformedTreeError.
	ErrMalformedTree = errors.New("s2polyhedral: malformed face tree")
	// ErrDegenerateEdge is wrapped by every *DegenerateEdgeError.
	ErrDegenerateEdge = errors.New("s2polyhedral: degenerate shared edge")
	// ErrLocationNotFound is returned when a point on the sphere lies in no face.
	ErrLocationNotFound = errors.New("s2polyhedral: point is outside all faces")
	// ErrInversionNotFound is returned when a planar point lies in no placed face.
	ErrInversionNotFound = errors.New("s2polyhedral: planar point maps to no face")
)

// MalformedTreeError reports an invalid parent array: an index out of range,
// a cycle, or a face that shares no edge with its declared parent.
type MalformedTreeError struct {
	Face   int
	Reason string
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("s2polyhedral: malformed face tree at face %d: %s", e.Face, e.Reason)
}

func (e *MalformedTreeError) Unwrap() error {
	return ErrMalformedTree
}

// DegenerateEdgeError reports a shared edge whose planar image cannot define
// a rigid placement.
type DegenerateEdgeError struct {
	Face   int
	Parent int
	Reason string
}

func (e *DegenerateEdgeError) Error() string {
	return fmt.Sprintf("s2polyhedral: cannot unfold face %d onto %d: %s", e.Face, e.Parent, e.Reason)
}

func (e *DegenerateEdgeError) Unwrap() error {
	return ErrDegenerateEdge
}
