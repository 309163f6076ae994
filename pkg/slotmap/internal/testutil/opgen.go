package testutil

// OpKind selects an operation type in [OpGenConfig.AllowedOps].
type OpKind uint8

// Operation kinds.
const (
	KindInsert OpKind = iota
	KindGet
	KindRemove
	KindFirst
	KindLast
	KindLen
)

// Operation sets. Repeated kinds weight the choice.
var (
	// FullOpSet exercises every operation, biased towards inserts so that
	// small maps fill up.
	FullOpSet = []OpKind{
		KindInsert, KindInsert, KindInsert, KindInsert,
		KindGet, KindGet,
		KindRemove, KindRemove,
		KindFirst, KindLast, KindLen,
	}

	// NoRemoveOpSet never removes. Used for configurations whose endpoint
	// semantics after removal differ from the model.
	NoRemoveOpSet = []OpKind{
		KindInsert, KindInsert, KindInsert,
		KindGet, KindGet,
		KindFirst, KindLast, KindLen,
	}
)

// OpGenConfig controls key and operation generation.
type OpGenConfig struct {
	// AllowedOps is the weighted list of operation kinds to draw from.
	AllowedOps []OpKind

	// MaxKeyLen is the longest generated key.
	MaxKeyLen int

	// Alphabet is the number of distinct key bytes ('a', 'b', ...). A
	// small alphabet makes equal keys and collisions likely.
	Alphabet int

	// ReusePercent is the chance, out of 100, of reusing a key seen before.
	ReusePercent int
}

// DefaultOpGenConfig returns a config suited to maps of 1-16 slots.
func DefaultOpGenConfig() OpGenConfig {
	return OpGenConfig{
		AllowedOps:   FullOpSet,
		MaxKeyLen:    4,
		Alphabet:     3,
		ReusePercent: 60,
	}
}

// OpGenerator derives a deterministic operation sequence from bytes.
type OpGenerator struct {
	stream *ByteStream
	cfg    OpGenConfig
	seen   [][]byte
}

// NewOpGenerator creates a generator over data.
func NewOpGenerator(data []byte, cfg OpGenConfig) *OpGenerator {
	if len(cfg.AllowedOps) == 0 {
		cfg.AllowedOps = FullOpSet
	}

	if cfg.Alphabet <= 0 {
		cfg.Alphabet = 1
	}

	return &OpGenerator{stream: NewByteStream(data), cfg: cfg}
}

// HasMore reports whether unread input remains.
func (g *OpGenerator) HasMore() bool {
	return g.stream.HasMore()
}

// SeenKeys returns every key generated so far, in generation order.
func (g *OpGenerator) SeenKeys() [][]byte {
	return g.seen
}

// Next returns the next operation.
func (g *OpGenerator) Next() Operation {
	switch g.cfg.AllowedOps[g.stream.NextIntn(len(g.cfg.AllowedOps))] {
	case KindInsert:
		return OpInsert{Key: g.key(), Value: g.stream.NextInt32()}
	case KindGet:
		return OpGet{Key: g.key()}
	case KindRemove:
		return OpRemove{Key: g.key()}
	case KindFirst:
		return OpFirst{}
	case KindLast:
		return OpLast{}
	default:
		return OpLen{}
	}
}

func (g *OpGenerator) key() []byte {
	if len(g.seen) > 0 && g.stream.NextIntn(100) < g.cfg.ReusePercent {
		return g.seen[g.stream.NextIntn(len(g.seen))]
	}

	key := make([]byte, g.stream.NextIntn(g.cfg.MaxKeyLen+1))
	for i := range key {
		key[i] = 'a' + byte(g.stream.NextIntn(g.cfg.Alphabet))
	}

	g.seen = append(g.seen, key)

	return key
}
