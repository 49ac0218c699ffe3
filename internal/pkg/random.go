package pkg

import (
	"math/rand/v2"
	"sync"
)

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (that *lockedSource) Uint64() uint64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.src.Uint64()
}

// NewRandom returns a generator that is safe for concurrent use.
// A zero seed draws one from the runtime.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(&lockedSource{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)})
}
