// Package tsp - validation helpers shared by Search and MultiStart.
//
// Deterministic, side-effect free; sentinel errors from types.go only.
package tsp

import "github.com/katalvlaran/twoopt/geom"

// validateOptions checks Options combinations independent of the input size.
func validateOptions(opts Options) error {
	switch opts.Policy {
	case Exhaustive, Sampled:
	default:
		return ErrUnknownPolicy
	}
	switch opts.Start {
	case StartRotate, StartShuffle, StartMST:
	default:
		return ErrUnknownStartMode
	}
	if opts.Restarts < 0 {
		return ErrBadRestarts
	}
	if opts.Parallel < 0 {
		return ErrBadParallel
	}
	// Sampling parameters only bind the sampled engine.
	if opts.Policy == Sampled {
		if opts.Iterations <= 0 {
			return ErrBadIterations
		}
		if opts.Neighbors <= 0 {
			return ErrBadNeighbors
		}
	}

	return nil
}

// validateSearch checks everything Search needs before touching the tour.
func validateSearch(m geom.Metric, start Tour, rng Stream, opts Options) error {
	if m == nil || m.Len() == 0 {
		return ErrEmptyInput
	}
	if err := start.Validate(m.Len()); err != nil {
		return err
	}
	if rng == nil {
		return ErrNilStream
	}

	return validateOptions(opts)
}
