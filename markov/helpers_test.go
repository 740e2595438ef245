// SPDX-License-Identifier: MIT
// Package markov_test contains shared fixtures.
//
// Fixtures are deterministic: every random chain or likelihood table is drawn
// from a seeded source and kept strictly positive so no scale factor vanishes.

package markov_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pattrec/markov"
	"github.com/katalvlaran/pattrec/matrix"
	"github.com/stretchr/testify/require"
)

// weatherQ and weatherA describe a two-state finite chain: every state exits
// with probability 0.3, so durations are geometric with P(D=k) = 0.7^(k-1)·0.3.
var (
	weatherQ = []float64{0.6, 0.4}
	weatherA = [][]float64{
		{0.5, 0.2, 0.3},
		{0.1, 0.6, 0.3},
	}
)

// mustDense builds a *matrix.Dense from a literal or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// mustChain builds a chain through markov.New or fails the test.
func mustChain(t testing.TB, q []float64, A [][]float64) *markov.Chain {
	t.Helper()
	ch, err := markov.New(q, mustDense(t, A))
	require.NoError(t, err)

	return ch
}

// ones returns an n×T likelihood table filled with 1 (uninformative observations).
func ones(n, T int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, T)
		for j := range out[i] {
			out[i][j] = 1
		}
	}

	return out
}

// randomStochastic returns n rows of length cols, each normalized to sum 1.
func randomStochastic(rng *rand.Rand, n, cols int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, cols)
		sum := 0.0
		for j := range rows[i] {
			rows[i][j] = rng.Float64() + 0.05
			sum += rows[i][j]
		}
		for j := range rows[i] {
			rows[i][j] /= sum
		}
	}

	return rows
}

// randomChain draws an n-state chain; finite chains get an exit column.
func randomChain(t testing.TB, n int, finite bool, seed int64) *markov.Chain {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	cols := n
	if finite {
		cols++
	}
	q := randomStochastic(rng, 1, n)[0]

	return mustChain(t, q, randomStochastic(rng, n, cols))
}

// randomLikelihood draws an n×T table with entries in [0.1, 1.1).
func randomLikelihood(n, T int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, T)
		for j := range out[i] {
			out[i][j] = 0.1 + rng.Float64()
		}
	}

	return out
}

// bruteLikelihood sums P(path)·P(x | path) over every state path of length T.
// Exponential in T; keep fixtures small.
func bruteLikelihood(ch *markov.Chain, pX [][]float64) float64 {
	q := ch.InitialProb()
	A := ch.TransitionProb()
	n, T := ch.NStates(), len(pX[0])

	var walk func(t, s int, p float64) float64
	walk = func(t, s int, p float64) float64 {
		if t == T-1 {
			if ch.IsFinite() {
				e, _ := A.At(s, n)
				return p * e
			}
			return p
		}
		total := 0.0
		for j := 0; j < n; j++ {
			a, _ := A.At(s, j)
			total += walk(t+1, j, p*a*pX[j][t+1])
		}
		return total
	}

	total := 0.0
	for s := 0; s < n; s++ {
		total += walk(0, s, q[s]*pX[s][0])
	}

	return total
}

// colSum returns Σ_i m[i,t].
func colSum(t testing.TB, m *matrix.Dense, col int) float64 {
	t.Helper()
	v, err := m.Col(col)
	require.NoError(t, err)
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s
}
