package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnrecognizedItem is returned when an identifier matches no catalog keyword.
	ErrUnrecognizedItem = errors.New("unrecognized item")
	// ErrContainerOverflow is returned when the pending items cannot all fit in the box.
	ErrContainerOverflow = errors.New("container overflow")
	// ErrGeometryInvariant is returned when a volume has a minimum corner past its maximum.
	ErrGeometryInvariant = errors.New("volume minimum exceeds maximum")
	// ErrUnknownBoxSize is returned for box letters other than S, M or L.
	ErrUnknownBoxSize = errors.New("unknown box size")
)

// UnrecognizedItemError names the identifier that failed catalog lookup.
type UnrecognizedItemError struct {
	Identifier string
}

func (e *UnrecognizedItemError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedItem, e.Identifier)
}

func (e *UnrecognizedItemError) Unwrap() error { return ErrUnrecognizedItem }

// OverflowError reports which items were left over when a box ran out of room.
type OverflowError struct {
	Box     BoxSize
	Pending []string
	Placed  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: box %s holds %d item(s), %d left over [%s]",
		ErrContainerOverflow, e.Box, e.Placed, len(e.Pending), strings.Join(e.Pending, ", "))
}

func (e *OverflowError) Unwrap() error { return ErrContainerOverflow }

// GeometryError carries the offending corners of an invalid volume.
type GeometryError struct {
	Min Point3
	Max Point3
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: min %s max %s", ErrGeometryInvariant, e.Min, e.Max)
}

func (e *GeometryError) Unwrap() error { return ErrGeometryInvariant }
