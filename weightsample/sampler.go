package weightsample

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/distuv"

	"github.com/katalvlaran/shaperun/costmodel"
)

// ErrInvalidSampleCount is returned when a requested sample count is <= 0.
var ErrInvalidSampleCount = errors.New("weightsample: sample count must be positive")

// ErrInvalidBias is returned when a bias value passed to SampleWithBias is <= 0.
var ErrInvalidBias = errors.New("weightsample: bias must be positive")

// WeightSampler draws costmodel.WeightVector values from a Dirichlet
// distribution, exploring the 2-simplex of shape/length/crossing trade-offs.
type WeightSampler struct {
	rng *rand.Rand
}

// NewWeightSampler returns a WeightSampler seeded for reproducibility.
// seed==0 selects a fixed default seed.
func NewWeightSampler(seed int64) *WeightSampler {
	return &WeightSampler{rng: rngFromSeed(seed)}
}

// Sample draws n weight vectors from Dir(1,1,1), the uniform Dirichlet
// distribution over the simplex.
func (s *WeightSampler) Sample(n int) ([]costmodel.WeightVector, error) {
	return s.SampleWithBias(n, 1, 1, 1)
}

// SampleWithBias draws n weight vectors from Dir(shapeBias, lengthBias,
// crossingBias). Higher bias on a component concentrates mass there.
//
// Implementation: a Dirichlet(a1,a2,a3) sample is three independent
// Gamma(aI, 1) draws normalized to sum to 1.
func (s *WeightSampler) SampleWithBias(n int, shapeBias, lengthBias, crossingBias float64) ([]costmodel.WeightVector, error) {
	if n <= 0 {
		return nil, ErrInvalidSampleCount
	}
	if shapeBias <= 0 || lengthBias <= 0 || crossingBias <= 0 {
		return nil, ErrInvalidBias
	}

	gammas := [3]distuv.Gamma{
		{Alpha: shapeBias, Beta: 1, Source: s.rng},
		{Alpha: lengthBias, Beta: 1, Source: s.rng},
		{Alpha: crossingBias, Beta: 1, Source: s.rng},
	}

	out := make([]costmodel.WeightVector, 0, n)
	for i := 0; i < n; i++ {
		var draws [3]float64
		sum := 0.0
		for j, g := range gammas {
			draws[j] = g.Rand()
			sum += draws[j]
		}

		wv, err := costmodel.NewWeightVector(draws[0]/sum, draws[1]/sum, draws[2]/sum)
		if err != nil {
			// NewWeightVector rejects the triple only if floating-point
			// error pushes its sum outside the simplex tolerance; force it
			// back onto the simplex rather than propagate the error.
			wv = normalizeToSimplex(draws, sum)
		}

		out = append(out, wv)
	}

	return out, nil
}

// normalizeToSimplex force-normalizes draws onto the 2-simplex, clamping the
// last component so the three sum to exactly 1 after floating-point error.
func normalizeToSimplex(draws [3]float64, sum float64) costmodel.WeightVector {
	alpha := draws[0] / sum
	beta := draws[1] / sum
	gamma := 1 - alpha - beta
	if gamma < 0 {
		gamma = 0
	}

	wv, _ := costmodel.NewWeightVector(alpha, beta, gamma)
	return wv
}

// CornerWeights returns four fixed extreme weight vectors: shape-dominant,
// length-dominant, crossing-dominant, and balanced. These anchor the sweep
// at the edges and center of the simplex regardless of what random sampling
// happens to draw.
func (s *WeightSampler) CornerWeights() []costmodel.WeightVector {
	corners := make([]costmodel.WeightVector, 0, 4)
	for _, t := range [4][3]float64{
		{0.8, 0.1, 0.1},
		{0.1, 0.8, 0.1},
		{0.1, 0.1, 0.8},
		{0.34, 0.33, 0.33},
	} {
		wv, _ := costmodel.NewWeightVector(t[0], t[1], t[2])
		corners = append(corners, wv)
	}

	return corners
}

// SampleWithCorners returns CornerWeights() followed by n additional
// Dir(1,1,1) samples, for a total of 4+n weight vectors.
func (s *WeightSampler) SampleWithCorners(n int) ([]costmodel.WeightVector, error) {
	additional, err := s.Sample(n)
	if err != nil {
		return nil, err
	}

	return append(s.CornerWeights(), additional...), nil
}
