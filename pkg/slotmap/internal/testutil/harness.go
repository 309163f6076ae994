package testutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/calvinalkan/slotmap/pkg/slotmap/model"
)

// BehaviorRunConfig controls how often RunBehavior compares full state.
type BehaviorRunConfig struct {
	// MaxOps caps the number of operations; zero means DefaultMaxFuzzOperations.
	MaxOps int

	// CompareEveryN compares Get for every seen key every N operations.
	// Zero disables it. Len/First/Last are compared after every operation.
	CompareEveryN int
}

// RunBehavior applies generated operations to subject and mdl, failing tb on
// the first divergence. The failure message includes the operation history.
func RunBehavior(tb testing.TB, subject Target, mdl *model.Map, gen *OpGenerator, cfg BehaviorRunConfig) {
	tb.Helper()

	maxOps := cfg.MaxOps
	if maxOps == 0 {
		maxOps = DefaultMaxFuzzOperations
	}

	var history []string

	for step := 0; step < maxOps && gen.HasMore(); step++ {
		op := gen.Next()
		history = append(history, op.String())

		want := Apply(mdl, op)
		got := Apply(subject, op)

		if diff := DiffResult(want, got); diff != "" {
			tb.Fatalf("step %d %s: result mismatch (-model +real):\n%s\nhistory:\n%s",
				step, op, diff, strings.Join(history, "\n"))
		}

		if diff := DiffObservable(mdl, subject, nil); diff != "" {
			tb.Fatalf("step %d %s: state mismatch (-model +real):\n%s\nhistory:\n%s",
				step, op, diff, strings.Join(history, "\n"))
		}

		if cfg.CompareEveryN > 0 && step%cfg.CompareEveryN == 0 {
			if diff := DiffObservable(mdl, subject, gen.SeenKeys()); diff != "" {
				tb.Fatalf("step %d %s: lookup mismatch (-model +real):\n%s\nhistory:\n%s",
					step, op, diff, strings.Join(history, "\n"))
			}
		}
	}
}

// DiffResult compares two operation results. Errors match when the real
// error wraps the model's sentinel.
func DiffResult(want, got Result) string {
	if want.Err != nil || got.Err != nil {
		if want.Err == nil || got.Err == nil || !errors.Is(got.Err, want.Err) {
			return cmp.Diff(errString(want.Err), errString(got.Err))
		}
	}

	want.Err, got.Err = nil, nil

	return cmp.Diff(want, got, cmpopts.EquateEmpty(), cmpopts.EquateErrors())
}

type observable struct {
	Len    int
	First  *Result
	Last   *Result
	Lookup map[string]*Result
}

// DiffObservable compares Len, First, Last and Get of every key in keys.
func DiffObservable(want, got Target, keys [][]byte) string {
	return cmp.Diff(snapshot(want, keys), snapshot(got, keys), cmpopts.EquateEmpty())
}

func snapshot(target Target, keys [][]byte) observable {
	first := Apply(target, OpFirst{})
	last := Apply(target, OpLast{})

	obs := observable{Len: target.Len(), First: &first, Last: &last}

	if len(keys) > 0 {
		obs.Lookup = make(map[string]*Result, len(keys))

		for _, key := range keys {
			r := Apply(target, OpGet{Key: key})
			obs.Lookup[string(key)] = &r
		}
	}

	return obs
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}

	return err.Error()
}
