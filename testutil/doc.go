// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bools(1000, 0.3)   // random pattern, ~30% ones
//	idx := rng.Indices(1000, 50)   // 50 distinct sorted positions
package testutil
