package slotmap

// Defaults used by [NewArray] when the corresponding option is zero.
const (
	// DefaultCapacity is the slot count of an [Array] built with a zero
	// [Options.Capacity].
	DefaultCapacity = 12134

	// DefaultMaxKeyLen is the key buffer length of an [Array] built with a
	// zero [Options.MaxKeyLen].
	DefaultMaxKeyLen = 30
)

// Hardcoded implementation limits.
//
// Slot indices are stored as int32 in the order lists, and key lengths as
// uint16 in the array arena. Violations return ErrInvalidInput.
const (
	// Maximum allowed slot capacity.
	maxCapacity = 1 << 30

	// Maximum allowed fixed key buffer length (bytes).
	maxKeyLen = 1<<16 - 1

	// Maximum allowed arena size for an Array (bytes).
	maxArenaBytes = uint64(1) << 32
)
