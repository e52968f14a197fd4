package pathgeom

import "errors"

var (
	// ErrEmptyPath indicates an entity path with no entities was passed to
	// the discretizer.
	ErrEmptyPath = errors.New("pathgeom: cannot discretize empty path")

	// ErrEdgesNotConnected indicates two entities that are adjacent in a
	// path share no endpoint vertex. The path is malformed or the cycle is
	// not simple; resolution of that path is aborted.
	ErrEdgesNotConnected = errors.New("pathgeom: edges are not connected")

	// ErrResampleArgs indicates that not exactly one of count and step was
	// given to Resample.
	ErrResampleArgs = errors.New("pathgeom: exactly one of count or step must be specified")
)
