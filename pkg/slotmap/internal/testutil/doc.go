// Package testutil provides test-only infrastructure for slotmap behavior,
// property and fuzz testing.
//
// It includes deterministic byte streams, an operation generator and a
// model/real harness used by the slotmap tests.
package testutil
