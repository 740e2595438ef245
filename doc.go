// Package pattrec is a small toolkit for pattern recognition with discrete
// Markov models.
//
// 🚀 What is in here?
//
//	• matrix/  — row-major Dense storage, probability validators and the
//	             linear-algebra kernels used by the models
//	• markov/  — Markov chains (finite and infinite) with scaled
//	             forward/backward recursions, posteriors, path sampling and
//	             duration statistics
//
// ✨ Why pattrec?
//
//   - Explicit errors: every failure is a sentinel you can match with errors.Is
//   - Numerically safe: forward/backward tables are scaled per step
//   - Concurrency-friendly: chains are immutable; randomness is injected
//
// The emission side of an HMM (whatever produces the likelihood matrix pX)
// is left to the caller. See examples/ for a runnable walkthrough.
//
//	go get github.com/katalvlaran/pattrec
package pattrec
