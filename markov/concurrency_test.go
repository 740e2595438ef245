// Package markov_test verifies that a single Chain is safe for concurrent readers.
package markov_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentReaders runs Forward, Backward, Rand and the duration
// statistics on one chain from many goroutines and compares with a
// sequential reference.
func TestConcurrentReaders(t *testing.T) {
	ch := randomChain(t, 3, true, 71)
	pX := mustDense(t, randomLikelihood(3, 20, 72))

	ref, err := ch.Forward(pX)
	require.NoError(t, err)
	refPath, err := ch.Rand(rand.New(rand.NewSource(73)), 30)
	require.NoError(t, err)

	const num = 64
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()

			fr, err := ch.Forward(pX)
			require.NoError(t, err)
			require.Equal(t, ref.Scale, fr.Scale)

			_, err = ch.Backward(fr.Scale, pX)
			require.NoError(t, err)

			// Each goroutine owns its RNG.
			path, err := ch.Rand(rand.New(rand.NewSource(73)), 30)
			require.NoError(t, err)
			require.Equal(t, refPath, path)

			_, err = ch.ProbDuration(50)
			require.NoError(t, err)
			require.Len(t, ch.MeanStateDuration(), 3)
		}()
	}
	wg.Wait()
}
