package testutil

// DefaultMaxFuzzOperations is the default maximum number of operations
// to run in a single fuzz iteration or deterministic behavior test.
//
// It is large enough to fill small maps several times over, so that
// ErrFull, endpoint removal and slot reuse all show up in one run.
const DefaultMaxFuzzOperations = 300
