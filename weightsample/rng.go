package weightsample

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers construct a WeightSampler
// with seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 maps to
// defaultRNGSeed so callers always get reproducible output by default.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
