package slotmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Storage selects the implementation built by [New].
type Storage int

const (
	// StorageArray builds an [Array]: fixed-length key buffers.
	StorageArray Storage = iota

	// StorageVector builds a [Vector]: variable-length keys.
	StorageVector

	// StorageOrdered builds an [Ordered]: insertion-order list over a Go map.
	StorageOrdered
)

var storageNames = map[Storage]string{
	StorageArray:   "array",
	StorageVector:  "vector",
	StorageOrdered: "ordered",
}

func (s Storage) String() string {
	if name, ok := storageNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Storage(%d)", int(s))
}

// MarshalText implements [encoding.TextMarshaler].
func (s Storage) MarshalText() ([]byte, error) {
	name, ok := storageNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown storage %d: %w", int(s), ErrInvalidInput)
	}

	return []byte(name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Storage) UnmarshalText(text []byte) error {
	for storage, name := range storageNames {
		if string(text) == name {
			*s = storage

			return nil
		}
	}

	return fmt.Errorf("unknown storage %q: %w", text, ErrInvalidInput)
}

// Hasher maps key bytes to a 64-bit hash. It must be deterministic.
type Hasher func(key []byte) uint64

// Options configure a map.
type Options struct {
	// Storage selects the implementation built by [New].
	Storage Storage `json:"storage"`

	// Capacity is the fixed number of slots. Required for [StorageVector]
	// and [StorageOrdered]; zero means [DefaultCapacity] for [StorageArray].
	Capacity int `json:"capacity"`

	// MaxKeyLen is the key buffer length of an [Array]; zero means
	// [DefaultMaxKeyLen]. Other storages accept keys of any length.
	MaxKeyLen int `json:"max_key_len"` //nolint:tagliatelle // snake_case for config file

	// Tombstones makes Remove leave a tombstone so that probe chains
	// crossing the vacated slot stay intact. Ignored by [StorageOrdered].
	Tombstones bool `json:"tombstones"`

	// TrackOrder keeps First/Last in exact insertion/recency order with
	// O(1) maintenance instead of rescanning on endpoint removal.
	// Ignored by [StorageOrdered].
	TrackOrder bool `json:"track_order"` //nolint:tagliatelle // snake_case for config file

	// Hasher overrides the default xxHash64 key hash. Not configurable
	// from a file.
	Hasher Hasher `json:"-"`
}

// normalize validates opts for the given storage and fills defaults.
func (opts Options) normalize(storage Storage) (Options, error) {
	opts.Storage = storage

	if opts.Capacity < 0 || opts.Capacity > maxCapacity {
		return Options{}, fmt.Errorf("capacity %d out of range [0, %d]: %w", opts.Capacity, maxCapacity, ErrInvalidInput)
	}

	if opts.MaxKeyLen < 0 || opts.MaxKeyLen > maxKeyLen {
		return Options{}, fmt.Errorf("max_key_len %d out of range [0, %d]: %w", opts.MaxKeyLen, maxKeyLen, ErrInvalidInput)
	}

	if opts.Hasher == nil {
		opts.Hasher = defaultHasher
	}

	switch storage {
	case StorageArray:
		if opts.Capacity == 0 {
			opts.Capacity = DefaultCapacity
		}

		if opts.MaxKeyLen == 0 {
			opts.MaxKeyLen = DefaultMaxKeyLen
		}

		arena := uint64(opts.Capacity) * uint64(opts.MaxKeyLen)
		if arena > maxArenaBytes {
			return Options{}, fmt.Errorf("key arena of %d bytes exceeds %d: %w", arena, maxArenaBytes, ErrInvalidInput)
		}
	case StorageVector, StorageOrdered:
		if opts.Capacity == 0 {
			return Options{}, fmt.Errorf("%s storage requires a capacity: %w", storage, ErrInvalidInput)
		}
	default:
		return Options{}, fmt.Errorf("unknown storage %d: %w", int(storage), ErrInvalidInput)
	}

	return opts, nil
}

// ParseOptions decodes options from a HuJSON document (JSON with comments
// and trailing commas) and validates them. Unknown fields are rejected.
//
//	{
//	  // fixed key buffers, default capacity
//	  "storage": "array",
//	  "max_key_len": 30,
//	  "tombstones": true,
//	}
func ParseOptions(data []byte) (Options, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Options{}, fmt.Errorf("%w: invalid JSONC: %w", ErrInvalidInput, err)
	}

	var opts Options

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()

	decodeErr := dec.Decode(&opts)
	if decodeErr != nil {
		return Options{}, fmt.Errorf("%w: invalid JSON: %w", ErrInvalidInput, decodeErr)
	}

	_, validateErr := opts.normalize(opts.Storage)
	if validateErr != nil {
		return Options{}, validateErr
	}

	return opts, nil
}

// LoadOptions reads and parses an options file. See [ParseOptions].
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally caller-controlled
	if err != nil {
		return Options{}, fmt.Errorf("read options %s: %w", path, err)
	}

	opts, parseErr := ParseOptions(data)
	if parseErr != nil {
		return Options{}, fmt.Errorf("options %s: %w", path, parseErr)
	}

	return opts, nil
}
