package tabs

import "errors"

var (
	// ErrOutOfRange reports a positional index with no corresponding handle.
	ErrOutOfRange = errors.New("tab index out of range")
	// ErrInvalidReference reports a nil, destroyed or foreign tab reference.
	ErrInvalidReference = errors.New("invalid tab reference")
	// ErrStaleDrag reports a drag identifier that no longer resolves to a live
	// item. Drop treats it as a silent no-op.
	ErrStaleDrag = errors.New("drag session does not resolve to a live item")
)
