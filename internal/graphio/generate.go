package graphio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/indset/builder"
	"github.com/katalvlaran/indset/core"
)

// ErrUnknownGenerator marks a generator spec that names no known family
// or carries the wrong number of arguments.
var ErrUnknownGenerator = errors.New("graphio: unknown generator")

// Generators lists the accepted spec forms.
var Generators = []string{
	"empty:N", "complete:N", "path:N", "cycle:N", "star:N", "wheel:N",
	"bipartite:A:B", "grid:R:C", "random:N:P",
}

// Generate builds a graph from a spec such as "cycle:8" or "random:30:0.2".
// seed drives the random family.
func Generate(spec string, seed int64) (*core.Graph, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), ":")
	name, args := parts[0], parts[1:]

	var (
		ctor builder.Constructor
		err  error
	)
	switch name {
	case "empty", "complete", "path", "cycle", "star", "wheel":
		ctor, err = unary(name, args)
	case "bipartite", "grid":
		ctor, err = binary(name, args)
	case "random":
		ctor, err = random(args)
	default:
		err = fmt.Errorf("graphio: %q (want one of %s): %w",
			spec, strings.Join(Generators, ", "), ErrUnknownGenerator)
	}
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, ctor)
}

func unary(name string, args []string) (builder.Constructor, error) {
	n, err := ints(name, args, 1)
	if err != nil {
		return nil, err
	}
	switch name {
	case "empty":
		return builder.Empty(n[0]), nil
	case "complete":
		return builder.Complete(n[0]), nil
	case "path":
		return builder.Path(n[0]), nil
	case "cycle":
		return builder.Cycle(n[0]), nil
	case "star":
		return builder.Star(n[0]), nil
	default:
		return builder.Wheel(n[0]), nil
	}
}

func binary(name string, args []string) (builder.Constructor, error) {
	n, err := ints(name, args, 2)
	if err != nil {
		return nil, err
	}
	if name == "grid" {
		return builder.Grid(n[0], n[1]), nil
	}

	return builder.CompleteBipartite(n[0], n[1]), nil
}

func random(args []string) (builder.Constructor, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("graphio: random wants N:P: %w", ErrUnknownGenerator)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("graphio: random: N=%q: %w", args[0], ErrUnknownGenerator)
	}
	p, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, fmt.Errorf("graphio: random: P=%q: %w", args[1], ErrUnknownGenerator)
	}

	return builder.RandomSparse(n, p), nil
}

func ints(name string, args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("graphio: %s wants %d argument(s), got %d: %w",
			name, want, len(args), ErrUnknownGenerator)
	}
	out := make([]int, want)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("graphio: %s: %q: %w", name, a, ErrUnknownGenerator)
		}
		out[i] = v
	}

	return out, nil
}
