package service

import "math/rand/v2"

// NewRand returns a PCG-backed random source. A zero seed picks a fresh one,
// so only callers that pass a seed get repeatable output.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
