// SPDX-License-Identifier: MIT
// Package: markov

package markov

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/pattrec/matrix"
	"golang.org/x/sync/errgroup"
)

const opForwardAll = "ForwardAll"

// ForwardAll runs Forward over independent observation sequences using at
// most workers goroutines (workers <= 0 means runtime.GOMAXPROCS(0)).
//
// Results are returned in input order. Every sequence is attempted; the first
// error observed is returned, wrapped with its sequence index.
//
// Complexity: O(Σ T_k·n^2) total work.
func (ch *Chain) ForwardAll(pXs []matrix.Matrix, workers int) ([]*ForwardResult, error) {
	if ch == nil {
		return nil, markovErrorf(opForwardAll, ErrNilChain)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]*ForwardResult, len(pXs))
	var g errgroup.Group
	g.SetLimit(workers)
	for k, pX := range pXs {
		k, pX := k, pX
		g.Go(func() error {
			res, err := ch.Forward(pX)
			if err != nil {
				return fmt.Errorf("sequence %d: %w", k, err)
			}
			out[k] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, markovErrorf(opForwardAll, err)
	}

	return out, nil
}
