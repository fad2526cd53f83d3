package engine

import (
	"errors"

	"github.com/dshills/gaptext/internal/engine/buffer"
)

// Errors returned by session operations.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrCapacityExceeded indicates a snapshot output was too small.
	ErrCapacityExceeded = buffer.ErrCapacityExceeded
)
