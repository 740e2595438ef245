// SPDX-License-Identifier: MIT
package markov_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pattrec/markov"
	"github.com/katalvlaran/pattrec/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_KindDispatch verifies that the matrix shape selects the chain kind.
func TestNew_KindDispatch(t *testing.T) {
	fin := mustChain(t, weatherQ, weatherA)
	assert.Equal(t, markov.Finite, fin.Kind())
	assert.True(t, fin.IsFinite())
	assert.Equal(t, 2, fin.NStates())
	assert.Equal(t, 3, fin.End())
	assert.Equal(t, []float64{0.3, 0.3}, fin.ExitProb())
	assert.Equal(t, "finite", fin.Kind().String())

	inf := mustChain(t, []float64{1, 0}, [][]float64{{0.9, 0.1}, {0.2, 0.8}})
	assert.Equal(t, markov.Infinite, inf.Kind())
	assert.False(t, inf.IsFinite())
	assert.Nil(t, inf.ExitProb())
	assert.Equal(t, "infinite", inf.Kind().String())
}

// TestNew_AccessorsReturnCopies ensures callers cannot mutate chain state.
func TestNew_AccessorsReturnCopies(t *testing.T) {
	A := mustDense(t, weatherA)
	q := append([]float64(nil), weatherQ...)
	ch, err := markov.New(q, A)
	require.NoError(t, err)

	q[0] = 0
	require.NoError(t, A.Set(0, 0, 0))
	assert.Equal(t, weatherQ, ch.InitialProb())

	got := ch.TransitionProb()
	require.Equal(t, 3, got.Cols())
	for i, row := range weatherA {
		for j, want := range row {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		}
	}

	require.NoError(t, got.Set(0, 0, 1))
	got2 := ch.TransitionProb()
	v, _ := got2.At(0, 0)
	assert.Equal(t, 0.5, v)

	ch.InitialProb()[0] = 42
	assert.Equal(t, 0.6, ch.InitialProb()[0])
	ch.ExitProb()[1] = 42
	assert.Equal(t, 0.3, ch.ExitProb()[1])
}

// TestNew_ShapeErrors covers every shape contract violation.
func TestNew_ShapeErrors(t *testing.T) {
	_, err := markov.New(weatherQ, nil)
	require.ErrorIs(t, err, markov.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = markov.New([]float64{1}, mustDense(t, weatherA))
	require.ErrorIs(t, err, markov.ErrShapeMismatch)

	_, err = markov.New(weatherQ, mustDense(t, [][]float64{{0.5, 0.2, 0.2, 0.1}, {0.1, 0.6, 0.2, 0.1}}))
	require.ErrorIs(t, err, markov.ErrShapeMismatch)

	_, err = markov.NewInfinite(weatherQ, mustDense(t, weatherA))
	require.ErrorIs(t, err, markov.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = markov.NewFinite(weatherQ, mustDense(t, [][]float64{{0.5, 0.2}, {0.1, 0.6}}), []float64{0.3})
	require.ErrorIs(t, err, markov.ErrShapeMismatch)
}

// TestNew_DistributionErrors checks eager validation of q and every row of A.
func TestNew_DistributionErrors(t *testing.T) {
	_, err := markov.New([]float64{0.7, 0.4}, mustDense(t, weatherA))
	require.ErrorIs(t, err, markov.ErrInvalidDistribution)
	require.ErrorIs(t, err, matrix.ErrNotStochastic)

	_, err = markov.New([]float64{1.2, -0.2}, mustDense(t, weatherA))
	require.ErrorIs(t, err, markov.ErrInvalidDistribution)
	require.ErrorIs(t, err, matrix.ErrNegativeEntry)

	_, err = markov.New(weatherQ, mustDense(t, [][]float64{{0.5, 0.2, 0.3}, {0.1, 0.6, 0.2}}))
	require.ErrorIs(t, err, markov.ErrInvalidDistribution)
	require.ErrorIs(t, err, matrix.ErrNotStochastic)

	_, err = markov.NewFinite(weatherQ,
		mustDense(t, [][]float64{{0.5, 0.2}, {0.1, 0.6}}),
		[]float64{0.3, math.NaN()})
	require.ErrorIs(t, err, markov.ErrInvalidDistribution)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewFinite_MatchesAugmentedLayout builds the same chain both ways.
func TestNewFinite_MatchesAugmentedLayout(t *testing.T) {
	fin, err := markov.NewFinite(weatherQ,
		mustDense(t, [][]float64{{0.5, 0.2}, {0.1, 0.6}}),
		[]float64{0.3, 0.3})
	require.NoError(t, err)
	ref := mustChain(t, weatherQ, weatherA)

	ok, err := matrix.AllClose(fin.TransitionProb(), ref.TransitionProb(), 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, markov.Finite, fin.Kind())

	inf, err := markov.NewInfinite([]float64{0.5, 0.5}, mustDense(t, [][]float64{{0.9, 0.1}, {0.2, 0.8}}))
	require.NoError(t, err)
	assert.Equal(t, markov.Infinite, inf.Kind())
}

// TestWithEpsilon verifies the tolerance option and its panic policy.
func TestWithEpsilon(t *testing.T) {
	q := []float64{0.6, 0.4 + 1e-6}

	_, err := markov.New(q, mustDense(t, weatherA))
	require.ErrorIs(t, err, markov.ErrInvalidDistribution)

	ch, err := markov.New(q, mustDense(t, weatherA), markov.WithEpsilon(1e-5))
	require.NoError(t, err)
	assert.Equal(t, 1e-5, ch.Epsilon())
	assert.Equal(t, matrix.DefaultEpsilon, mustChain(t, weatherQ, weatherA).Epsilon())

	assert.Panics(t, func() { markov.WithEpsilon(-1) })
	assert.Panics(t, func() { markov.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { markov.WithEpsilon(math.Inf(1)) })
}

// TestNilChain ensures every algorithm reports ErrNilChain instead of panicking.
func TestNilChain(t *testing.T) {
	var ch *markov.Chain
	pX := mustDense(t, ones(2, 2))

	_, err := ch.Forward(pX)
	assert.ErrorIs(t, err, markov.ErrNilChain)
	_, err = ch.Backward([]float64{1, 1}, pX)
	assert.ErrorIs(t, err, markov.ErrNilChain)
	_, _, err = ch.Posterior(pX)
	assert.ErrorIs(t, err, markov.ErrNilChain)
	_, err = ch.ForwardAll([]matrix.Matrix{pX}, 1)
	assert.ErrorIs(t, err, markov.ErrNilChain)
	_, err = ch.Rand(nil, 1)
	assert.ErrorIs(t, err, markov.ErrNilChain)
	_, err = ch.ProbDuration(1)
	assert.ErrorIs(t, err, markov.ErrNilChain)
	_, err = ch.ProbStateDuration(1)
	assert.ErrorIs(t, err, markov.ErrNilChain)
	assert.Nil(t, ch.MeanStateDuration())
}
