package testutil

import (
	"fmt"

	"github.com/calvinalkan/slotmap/pkg/slotmap"
)

// Operation is a single public-API call we apply to both the model and the
// real map.
type Operation interface {
	Name() string
	String() string
}

// OpInsert represents an Insert(key, value) call.
type OpInsert struct {
	Key   []byte
	Value int32
}

// Name returns the operation name.
func (OpInsert) Name() string { return "Insert" }
func (operation OpInsert) String() string {
	return fmt.Sprintf("Insert(%q,%d)", operation.Key, operation.Value)
}

// OpGet represents a Get(key) call.
type OpGet struct {
	Key []byte
}

// Name returns the operation name.
func (OpGet) Name() string { return "Get" }
func (operation OpGet) String() string {
	return fmt.Sprintf("Get(%q)", operation.Key)
}

// OpRemove represents a Remove(key) call.
type OpRemove struct {
	Key []byte
}

// Name returns the operation name.
func (OpRemove) Name() string { return "Remove" }
func (operation OpRemove) String() string {
	return fmt.Sprintf("Remove(%q)", operation.Key)
}

// OpFirst represents a First() call.
type OpFirst struct{}

// Name returns the operation name.
func (OpFirst) Name() string   { return "First" }
func (OpFirst) String() string { return "First()" }

// OpLast represents a Last() call.
type OpLast struct{}

// Name returns the operation name.
func (OpLast) Name() string   { return "Last" }
func (OpLast) String() string { return "Last()" }

// OpLen represents a Len() call.
type OpLen struct{}

// Name returns the operation name.
func (OpLen) Name() string   { return "Len" }
func (OpLen) String() string { return "Len()" }

// Target is the method set shared by slotmap maps and the model.
type Target interface {
	Insert(key []byte, value int32) error
	Get(key []byte) (int32, bool)
	Remove(key []byte) bool
	First() (slotmap.Entry, bool)
	Last() (slotmap.Entry, bool)
	Len() int
}

// Result is the observable outcome of one operation. Fields not produced by
// the operation stay zero.
type Result struct {
	Err   error
	Value int32
	OK    bool
	Entry slotmap.Entry
	Len   int
}

// Apply runs operation against target.
func Apply(target Target, operation Operation) Result {
	switch op := operation.(type) {
	case OpInsert:
		return Result{Err: target.Insert(op.Key, op.Value)}
	case OpGet:
		v, ok := target.Get(op.Key)

		return Result{Value: v, OK: ok}
	case OpRemove:
		return Result{OK: target.Remove(op.Key)}
	case OpFirst:
		e, ok := target.First()

		return Result{Entry: e, OK: ok}
	case OpLast:
		e, ok := target.Last()

		return Result{Entry: e, OK: ok}
	case OpLen:
		return Result{Len: target.Len()}
	default:
		panic(fmt.Sprintf("testutil: unknown operation %T", operation))
	}
}
