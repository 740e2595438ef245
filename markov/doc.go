// SPDX-License-Identifier: MIT

// Package markov implements discrete first-order Markov chains and the
// inference primitives used by hidden Markov models built on top of them.
//
// 🚀 What is a Chain?
//
//	A Chain has n emitting states, an initial distribution q and a transition
//	matrix A. It comes in two kinds:
//	  • Infinite — A is n×n; the chain runs for as long as observations arrive.
//	  • Finite   — A is n×(n+1); column n holds the probability of moving to
//	               the absorbing END state, which emits nothing.
//
// ✨ Operations:
//   - Forward    — scaled forward recursion over a likelihood matrix pX (n×T).
//   - Backward   — scaled backward recursion reusing Forward's scale factors.
//   - Posterior  — per-step state posteriors from the two tables.
//   - ForwardAll — Forward over many independent sequences in parallel.
//   - Rand       — random state paths with 1-based labels.
//   - ProbDuration, ProbStateDuration, MeanStateDuration — duration statistics.
//
// ⚙️ Usage:
//
//	A, _ := matrix.NewDenseFrom([][]float64{
//	  {0.5, 0.2, 0.3},
//	  {0.1, 0.6, 0.3},
//	})
//	ch, err := markov.New([]float64{0.6, 0.4}, A) // Finite: 2 states + END
//	fr, err := ch.Forward(pX)
//	fmt.Println(fr.LogLikelihood())
//
// Scaling:
//
//	Column t of AlphaHat sums to 1 and Π Scale equals the sequence likelihood,
//	so long sequences never underflow. A zero scale factor means the sequence
//	is impossible under the chain and is reported as ErrDegenerateScale.
//
// Errors:
//
//	All failures are sentinel errors (see errors.go) wrapped with the
//	operation name; use errors.Is. Nothing in this package panics on user data.
//
// Concurrency:
//
//	A *Chain is immutable after construction and safe for concurrent use.
//	Rand takes the caller's *rand.Rand so that each goroutine can own one.
package markov
