package slotmap

import "errors"

// Sentinel errors returned by slotmap operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, slotmap.ErrFull) {
//	    m.Remove(oldest.Key)
//	    // retry
//	}
var (
	// ErrFull indicates every slot on the probe path holds a different key.
	//
	// The map is left unchanged. Updates of present keys never return it.
	//
	// Recovery: remove entries, or rebuild into a map with a larger
	// [Options.Capacity].
	ErrFull = errors.New("slotmap: full")

	// ErrKeyTooLong indicates a key exceeds [Options.MaxKeyLen] of an
	// [Array] map. It is reported before any probing.
	//
	// Recovery: truncate or reject the key upstream.
	ErrKeyTooLong = errors.New("slotmap: key too long")

	// ErrInvalidInput indicates invalid construction options.
	//
	// This is a programming error.
	ErrInvalidInput = errors.New("slotmap: invalid input")
)
