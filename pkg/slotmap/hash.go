package slotmap

import "github.com/cespare/xxhash/v2"

func defaultHasher(key []byte) uint64 {
	return xxhash.Sum64(key)
}
