package mconstraint

import "errors"

// Validation errors. None of them is returned after the scene was modified.
var (
	ErrInsufficientNodes = errors.New("mconstraint: at least one driver and one driven node are required")
	ErrNoChannelSelected = errors.New("mconstraint: no channel selected")
	ErrNoAxisSelected    = errors.New("mconstraint: no axis selected")
	ErrInvalidObjectList = errors.New("mconstraint: invalid object list")
	ErrDrivenIsDriver    = errors.New("mconstraint: driven node is also a driver")
)

// Build errors.
var (
	// ErrHostOperation wraps a host failure during commit. Staged changes of
	// the call have been rolled back when it is returned.
	ErrHostOperation   = errors.New("mconstraint: host operation failed")
	ErrNameCollision   = errors.New("mconstraint: node name already in use")
	ErrChannelConflict = errors.New("mconstraint: channel already driven")
)

// Settings errors.
var (
	ErrNotConstrained = errors.New("mconstraint: no constraint on channel")
	ErrUnknownDriver  = errors.New("mconstraint: unknown driver")
	ErrZeroWeights    = errors.New("mconstraint: weights sum to zero")
)
