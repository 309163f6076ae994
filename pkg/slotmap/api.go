package slotmap

// Entry is a live key/value pair returned by First and Last.
//
// Key is a copy; modifying it does not affect the map.
type Entry struct {
	Key   []byte
	Value int32
}

// Map is the capability set shared by [Array], [Vector] and [Ordered].
type Map interface {
	// Insert stores value under key, replacing the value of a present key.
	// A failed Insert leaves the map unchanged.
	Insert(key []byte, value int32) error

	// Get returns the value stored under key.
	Get(key []byte) (int32, bool)

	// Remove deletes key and reports whether it was present. Removing an
	// absent key is a no-op.
	Remove(key []byte) bool

	// First returns the oldest live entry; false iff the map is empty.
	First() (Entry, bool)

	// Last returns the newest live entry; false iff the map is empty.
	Last() (Entry, bool)

	// Len returns the number of live entries.
	Len() int

	// Cap returns the fixed capacity.
	Cap() int
}

var (
	_ Map = (*Array)(nil)
	_ Map = (*Vector)(nil)
	_ Map = (*Ordered)(nil)
)

// New builds the map selected by opts.Storage.
//
// Possible errors: [ErrInvalidInput].
func New(opts Options) (Map, error) {
	var (
		m   Map
		err error
	)

	// Assign through typed results so a failed constructor yields a nil Map,
	// not a Map holding a nil pointer.
	switch opts.Storage {
	case StorageArray:
		var a *Array

		a, err = NewArray(opts)
		if err == nil {
			m = a
		}
	case StorageVector:
		var v *Vector

		v, err = NewVector(opts)
		if err == nil {
			m = v
		}
	case StorageOrdered:
		var o *Ordered

		o, err = NewOrdered(opts)
		if err == nil {
			m = o
		}
	default:
		_, err = opts.normalize(opts.Storage)
	}

	if err != nil {
		return nil, err
	}

	return m, nil
}
