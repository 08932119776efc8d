package graphio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/indset/core"
)

var (
	// ErrInvalidEdge marks a rejected edge (self-loop or out of range).
	ErrInvalidEdge = errors.New("graphio: invalid edge")

	// ErrMalformedHeader marks a header line that is not "V E" with V, E ≥ 0.
	ErrMalformedHeader = errors.New("graphio: malformed header")

	// ErrMissingEdges is returned when the stream ends before E valid edges.
	ErrMissingEdges = errors.New("graphio: input ended before all edges were read")
)

// Base converts between external identifiers and 0-based vertex ids.
type Base int

const (
	// ZeroBased accepts identifiers 0..V-1.
	ZeroBased Base = 0

	// OneBased accepts identifiers 1..V.
	OneBased Base = 1
)

// Internal maps an external identifier to a vertex id.
func (b Base) Internal(id int) int { return id - int(b) }

// External maps a vertex id to its external identifier.
func (b Base) External(v int) int { return v + int(b) }

// ExternalSet maps a whole set; the input is left untouched.
func (b Base) ExternalSet(set []int) []int {
	out := make([]int, len(set))
	for i, v := range set {
		out[i] = b.External(v)
	}

	return out
}

// ParseEdge parses "u v" and validates it against n vertices.
// It returns 0-based endpoints.
func ParseEdge(line string, n int, base Base) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("graphio: %q: want two identifiers: %w", line, ErrInvalidEdge)
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("graphio: %q: %w", fields[0], ErrInvalidEdge)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("graphio: %q: %w", fields[1], ErrInvalidEdge)
	}

	return ValidateEdge(u, v, n, base)
}

// ValidateEdge checks external identifiers u, v and converts them.
func ValidateEdge(u, v, n int, base Base) (int, int, error) {
	if u == v {
		return 0, 0, fmt.Errorf("graphio: %d-%d: self-loop: %w", u, v, ErrInvalidEdge)
	}
	iu, iv := base.Internal(u), base.Internal(v)
	if iu < 0 || iu >= n || iv < 0 || iv >= n {
		return 0, 0, fmt.Errorf("graphio: %d-%d: identifiers must be in [%d,%d]: %w",
			u, v, base.External(0), base.External(n-1), ErrInvalidEdge)
	}

	return iu, iv, nil
}

// parseHeader parses "V E".
func parseHeader(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("graphio: %q: want \"V E\": %w", line, ErrMalformedHeader)
	}
	n, err := parseCount(fields[0])
	if err != nil {
		return 0, 0, err
	}
	if n > core.MaxVertices {
		return 0, 0, fmt.Errorf("graphio: V=%d > max=%d: %w", n, core.MaxVertices, ErrMalformedHeader)
	}
	e, err := parseCount(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return n, e, nil
}

// parseCount parses a non-negative count.
func parseCount(s string) (int, error) {
	c, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || c < 0 {
		return 0, fmt.Errorf("graphio: %q: want a non-negative integer: %w", s, ErrMalformedHeader)
	}

	return c, nil
}
