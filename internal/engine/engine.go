package engine

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/elijahg12/checkers-studio/internal/checkers"
)

// Engine runs one synchronous search at a time. It owns exclusive mutable
// access to its working board copy for the duration of a Search call and is
// not safe for concurrent use; give each concurrent search its own Engine.
type Engine struct {
	tt  map[uint64]ttEntry
	rng *rand.Rand
	log zerolog.Logger

	// per-search state
	work     checkers.Position
	rootSide checkers.Color
	deadline time.Time
	nodes    int64
	stopped  bool
}

// New creates an engine with an explicitly seeded generator so runs are
// reproducible under test.
func New(seed uint64) *Engine {
	return &Engine{
		rng: rand.New(rand.NewSource(seed)),
		log: zerolog.Nop(),
	}
}

// SetLogger enables per-depth search logging (debug level).
func (e *Engine) SetLogger(l zerolog.Logger) { e.log = l }
