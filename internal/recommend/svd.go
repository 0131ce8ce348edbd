// CI-Connect Recommender - Research Collaboration Recommendation Engine
// Copyright 2026 CI-Connect Team
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ciconnect/recommender

package recommend

import "math"

// deflationEpsilon is the norm below which a power-iteration vector is
// considered to have collapsed, meaning the matrix has no further
// significant singular directions.
const deflationEpsilon = 1e-12

// userFactors computes the left factor rows of a truncated SVD, scaled by
// the singular values (U·Σ restricted to the top components). Each output
// row is the dense latent representation of the corresponding input row.
//
// The decomposition runs power iteration with Gram-Schmidt deflation on
// AᵀA to extract the dominant right singular vectors v_j, then projects
// the input rows onto them (A·v_j = σ_j·u_j). Starting vectors are fixed,
// so the result is deterministic for a fixed input. The effective rank is
// bounded by both matrix dimensions; extraction stops early when the
// residual spectrum collapses.
func userFactors(cells [][]float64, components, iterations int) [][]float64 {
	rows := len(cells)
	if rows == 0 {
		return nil
	}
	cols := len(cells[0])
	if cols == 0 {
		return nil
	}

	k := components
	if k > rows {
		k = rows
	}
	if k > cols {
		k = cols
	}
	if k < 1 {
		k = 1
	}

	gram := gramMatrix(cells)

	basis := make([][]float64, 0, k)
	for j := 0; j < k; j++ {
		v := powerIterate(gram, basis, j, iterations)
		if v == nil {
			break
		}
		basis = append(basis, v)
	}

	factors := make([][]float64, rows)
	for i := range cells {
		f := make([]float64, len(basis))
		for j, v := range basis {
			f[j] = dot(cells[i], v)
		}
		factors[i] = f
	}
	return factors
}

// gramMatrix computes AᵀA for a row-major matrix.
func gramMatrix(cells [][]float64) [][]float64 {
	cols := len(cells[0])
	gram := make([][]float64, cols)
	for i := range gram {
		gram[i] = make([]float64, cols)
	}
	for _, row := range cells {
		for i, x := range row {
			if x == 0 {
				continue
			}
			for j, y := range row {
				gram[i][j] += x * y
			}
		}
	}
	return gram
}

// powerIterate extracts the dominant eigenvector of gram orthogonal to
// the given basis. The starting vector is a fixed function of the
// component index so repeated runs agree exactly. Returns nil when the
// residual spectrum has collapsed.
func powerIterate(gram [][]float64, basis [][]float64, component, iterations int) []float64 {
	n := len(gram)
	v := make([]float64, n)
	for i := range v {
		// Deterministic, component-dependent start that is unlikely to be
		// orthogonal to the target eigenvector.
		v[i] = 1 / float64(i+component+1)
	}
	orthogonalize(v, basis)
	if !normalize(v) {
		return nil
	}

	for it := 0; it < iterations; it++ {
		w := make([]float64, n)
		for i := range gram {
			w[i] = dot(gram[i], v)
		}
		orthogonalize(w, basis)
		if !normalize(w) {
			return nil
		}
		v = w
	}
	return v
}

// orthogonalize removes the projections of v onto each basis vector.
func orthogonalize(v []float64, basis [][]float64) {
	for _, b := range basis {
		p := dot(v, b)
		for i := range v {
			v[i] -= p * b[i]
		}
	}
}

// normalize scales v to unit length in place. Reports false when the
// vector norm is below the deflation threshold.
func normalize(v []float64) bool {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum < deflationEpsilon {
		return false
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return true
}

// dot computes the inner product of two equal-length vectors.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
