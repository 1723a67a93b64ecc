package hintmap

import "github.com/pkg/errors"

var (
	// ErrStaleHandle is returned when a Position refers to an entry
	// that has been removed, or to a map that has been cleared.
	ErrStaleHandle = errors.New("stale position handle")

	// ErrCorrupted is returned by Validate when the links between entries are broken.
	ErrCorrupted = errors.New("linked list is corrupted")
)
