package slotmap_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/slotmap/pkg/slotmap"
)

// mapConfig is a named set of options applied to every contract test.
type mapConfig struct {
	name string
	opts slotmap.Options
}

// contractConfigs covers each storage in its default and hardened form.
var contractConfigs = []mapConfig{
	{"Array", slotmap.Options{Storage: slotmap.StorageArray}},
	{"Array_Hardened", slotmap.Options{Storage: slotmap.StorageArray, Tombstones: true, TrackOrder: true}},
	{"Vector", slotmap.Options{Storage: slotmap.StorageVector}},
	{"Vector_Hardened", slotmap.Options{Storage: slotmap.StorageVector, Tombstones: true, TrackOrder: true}},
	{"Ordered", slotmap.Options{Storage: slotmap.StorageOrdered}},
}

// newMap builds cfg with the given capacity.
func newMap(t *testing.T, cfg mapConfig, capacity int) slotmap.Map {
	t.Helper()

	opts := cfg.opts
	opts.Capacity = capacity

	m, err := slotmap.New(opts)
	require.NoError(t, err, "New(%+v)", opts)

	return m
}

// constHasher sends every key to the same home slot.
func constHasher(h uint64) slotmap.Hasher {
	return func([]byte) uint64 { return h }
}

// placedHasher sends listed keys to fixed home slots and everything else to 0.
func placedHasher(homes map[string]uint64) slotmap.Hasher {
	return func(key []byte) uint64 { return homes[string(key)] }
}

func newVector(t *testing.T, opts slotmap.Options) *slotmap.Vector {
	t.Helper()

	v, err := slotmap.NewVector(opts)
	require.NoError(t, err, "NewVector(%+v)", opts)

	return v
}

func newArray(t *testing.T, opts slotmap.Options) *slotmap.Array {
	t.Helper()

	a, err := slotmap.NewArray(opts)
	require.NoError(t, err, "NewArray(%+v)", opts)

	return a
}

func mustInsert(t *testing.T, m slotmap.Map, key string, value int32) {
	t.Helper()

	require.NoError(t, m.Insert([]byte(key), value), "Insert(%q, %d)", key, value)
}

func requireFirst(t *testing.T, m slotmap.Map, key string, value int32) {
	t.Helper()

	e, ok := m.First()
	require.True(t, ok, "First() should report an entry")
	require.Equal(t, slotmap.Entry{Key: []byte(key), Value: value}, e, "First()")
}

func requireLast(t *testing.T, m slotmap.Map, key string, value int32) {
	t.Helper()

	e, ok := m.Last()
	require.True(t, ok, "Last() should report an entry")
	require.Equal(t, slotmap.Entry{Key: []byte(key), Value: value}, e, "Last()")
}

func requireEmptyEndpoints(t *testing.T, m slotmap.Map) {
	t.Helper()

	_, ok := m.First()
	require.False(t, ok, "First() on empty map")

	_, ok = m.Last()
	require.False(t, ok, "Last() on empty map")
}

func requireGet(t *testing.T, m slotmap.Map, key string, want int32) {
	t.Helper()

	got, ok := m.Get([]byte(key))
	require.True(t, ok, "Get(%q) should find the key", key)
	require.Equal(t, want, got, "Get(%q)", key)
}

func requireMissing(t *testing.T, m slotmap.Map, key string) {
	t.Helper()

	_, ok := m.Get([]byte(key))
	require.False(t, ok, "Get(%q) should not find the key", key)
}

func fillRandom(rng *rand.Rand, buf []byte) {
	for i := range buf {
		buf[i] = byte(rng.UintN(256))
	}
}
