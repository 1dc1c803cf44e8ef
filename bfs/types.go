// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when fetching neighbours from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")

	// ErrOddCycle is matched by every *OddCycleError.
	ErrOddCycle = errors.New("bfs: odd cycle")
)

// OddCycleError reports a link between two vertices on the same layer
// parity. Cycle is closed: it starts and ends at the lowest common ancestor
// of the two endpoints and has an odd number of links.
type OddCycleError struct {
	From, To string
	Cycle    []string
}

func (e *OddCycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrOddCycle, strings.Join(e.Cycle, " - "))
}

func (e *OddCycleError) Unwrap() error { return ErrOddCycle }

// Option configures a traversal.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context

	// DetectOddCycle aborts the traversal with *OddCycleError as soon as a
	// link joins two reached vertices of equal depth parity.
	DetectOddCycle bool
}

// DefaultOptions returns Options with context.Background() and no checks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOddCycleCheck turns the traversal into a 2-colouring: depth parity is
// the colour, and the first same-colour link is returned as *OddCycleError.
func WithOddCycleCheck() Option {
	return func(o *Options) { o.DetectOddCycle = true }
}

// BFSResult is one breadth-first tree:
//   - Start: the root vertex.
//   - Order: vertices in visit sequence.
//   - Depth: distance in links from Start.
//   - Parent: predecessor in the tree (Start has none).
type BFSResult struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Side returns 0 for vertices at even depth (the start's side), 1 for odd
// depth. ok is false when id was not reached.
func (r *BFSResult) Side(id string) (side int, ok bool) {
	d, ok := r.Depth[id]
	if !ok {
		return 0, false
	}

	return d & 1, true
}

// PathTo returns the tree path Start → dest, or ErrNoPath.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: to %q", ErrNoPath, dest)
	}
	path := make([]string, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// oddCycle closes the cycle through the tree paths of u and w, which sit
// on the same layer.
func (r *BFSResult) oddCycle(u, w string) []string {
	pu, _ := r.PathTo(u)
	pw, _ := r.PathTo(w)

	k := 0 // length of the shared prefix; ≥ 1 since both paths start at Start
	for k < len(pu) && k < len(pw) && pu[k] == pw[k] {
		k++
	}

	cycle := append([]string(nil), pu[k-1:]...)
	for i := len(pw) - 1; i >= k-1; i-- {
		cycle = append(cycle, pw[i])
	}

	return cycle
}
