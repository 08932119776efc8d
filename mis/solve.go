// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: Unified dispatcher over the three solvers.

package mis

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/exhaustive"
	"github.com/katalvlaran/indset/genetic"
	"github.com/katalvlaran/indset/greedy"
)

// Solve validates opts, runs the selected solver on g and returns a Report.
//
// Steps:
//  1. Reject nil graphs and unknown algorithms.
//  2. Route by opts.Algo.
//  3. Re-validate every reported set against g.
//
// Errors: ErrNilGraph, ErrUnsupportedAlgorithm, ErrInvalidSolution and the
// solver sentinels (e.g. genetic.ErrInvalidPopulation).
func Solve(ctx context.Context, g *core.Graph, opts Options) (Report, error) {
	return solve(ctx, g, opts, false)
}

// SolveAll behaves like Solve but, for Exhaustive, also keeps the full
// enumeration (Report.All) and its maximal members (Report.Maximal).
func SolveAll(ctx context.Context, g *core.Graph, opts Options) (Report, error) {
	return solve(ctx, g, opts, true)
}

func solve(ctx context.Context, g *core.Graph, opts Options, keepAll bool) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		rep   Report
		err   error
		start = time.Now()
	)

	// Stage 1: route.
	switch opts.Algo {
	case Exhaustive:
		rep, err = runExhaustive(ctx, g, opts, keepAll)
	case Greedy:
		rep, err = runGreedy(g)
	case Genetic:
		rep, err = runGenetic(g, opts)
	default:
		return Report{}, fmt.Errorf("mis: %s: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
	if err != nil {
		return Report{}, err
	}
	rep.Algo = opts.Algo
	rep.Elapsed = time.Since(start)

	// Stage 2: re-validate.
	for _, s := range rep.Sets {
		if !g.IsIndependent(s) {
			return Report{}, fmt.Errorf("mis: %s: set %v: %w", opts.Algo, s, ErrInvalidSolution)
		}
	}

	if opts.Logger != nil {
		opts.Logger.Debug("solved", "algo", rep.Algo, "size", rep.Size,
			"found", rep.Found, "certified", rep.Exhaustive, "elapsed", rep.Elapsed)
	}

	return rep, nil
}

func runExhaustive(ctx context.Context, g *core.Graph, opts Options, keepAll bool) (Report, error) {
	eopts := []exhaustive.Option{
		exhaustive.WithBudget(opts.Budget),
		exhaustive.WithContext(ctx),
		exhaustive.WithMaxSets(opts.MaxSets),
	}
	if opts.Logger != nil {
		eopts = append(eopts, exhaustive.WithLogger(opts.Logger))
	}

	res, err := exhaustive.Enumerate(g, eopts...)
	if err != nil {
		return Report{}, err
	}
	ext := exhaustive.Maximum(res)

	rep := Report{
		Sets:       ext.Sets,
		Best:       []int{},
		Size:       ext.Size,
		Exhaustive: ext.Certified,
		Truncated:  res.Truncated,
		Enumerated: len(res.Sets),
	}
	if len(ext.Sets) > 0 {
		rep.Best = ext.Sets[0]
	}
	rep.Found = rep.Size > 0
	if keepAll {
		rep.All = res.Sets
		rep.Maximal = exhaustive.Maximal(g, res)
	}

	return rep, nil
}

func runGreedy(g *core.Graph) (Report, error) {
	res, err := greedy.Construct(g)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Sets:  [][]int{res.Set},
		Best:  res.Set,
		Size:  len(res.Set),
		Found: len(res.Set) > 0,
	}, nil
}

func runGenetic(g *core.Graph, opts Options) (Report, error) {
	gopts := opts.Genetic
	if gopts.Logger == nil {
		gopts.Logger = opts.Logger
	}

	res, err := genetic.Optimize(g, gopts)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Sets:       [][]int{},
		Best:       []int{},
		Found:      res.Found,
		Generation: res.Generation,
	}
	if res.Found {
		rep.Sets = [][]int{res.Set}
		rep.Best = res.Set
		rep.Size = len(res.Set)
	}

	return rep, nil
}
