// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker carries the state of one traversal. seen may outlive a single
// tree: Forest shares it across all roots.
type walker struct {
	graph *core.Graph
	opts  Options
	seen  map[string]bool
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from startID.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, *OddCycleError
// (with WithOddCycleCheck) and ctx.Err() on cancellation. The partial tree
// is returned alongside any traversal error.
//
// Complexity: O(V + E) time and O(V) memory for the reached component.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	w := newWalker(g, opts, make(map[string]bool))

	return w.tree(startID)
}

func newWalker(g *core.Graph, opts []Option, seen map[string]bool) *walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &walker{graph: g, opts: o, seen: seen}
}

// tree grows one BFS tree from root. Result maps start empty and grow with
// the component, so a forest of many small trees stays linear.
func (w *walker) tree(root string) (*BFSResult, error) {
	w.res = &BFSResult{
		Start:  root,
		Depth:  make(map[string]int),
		Parent: make(map[string]string),
	}
	w.queue = w.queue[:0]
	w.enqueue(root, 0, "")

	for head := 0; head < len(w.queue); head++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return w.res, err
		}
		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.expand(item); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.seen[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// expand enqueues the unseen neighbours of item in link order. With
// DetectOddCycle a seen neighbour on the same layer ends the walk.
func (w *walker) expand(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.seen[nbr] {
			w.enqueue(nbr, item.depth+1, item.id)
			continue
		}
		if w.opts.DetectOddCycle && w.res.Depth[nbr] == item.depth {
			return &OddCycleError{From: item.id, To: nbr, Cycle: w.res.oddCycle(item.id, nbr)}
		}
	}

	return nil
}
