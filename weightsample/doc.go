// Package weightsample draws WeightVector combinations from a Dirichlet
// distribution so a search can explore many shape/length/crossing
// trade-offs in one sweep.
//
// A Dirichlet(alpha1, alpha2, alpha3) sample is constructed as three
// independent Gamma(alphaI, 1) draws normalized to sum to 1, using gonum's
// distuv.Gamma with a math/rand source seeded for reproducibility: each
// search gets its own dedicated, explicitly seeded RNG rather than sharing a
// package-level generator.
package weightsample
