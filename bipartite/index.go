// SPDX-License-Identifier: MIT

package bipartite

// Index is an immutable bidirectional position ⟷ ID table.
type Index struct {
	ids []string
	pos map[string]int
}

// NewIndex builds the table for ids; later duplicates keep the first position.
// Complexity: O(len(ids)).
func NewIndex(ids []string) *Index {
	x := &Index{
		ids: append([]string(nil), ids...),
		pos: make(map[string]int, len(ids)),
	}
	for i, id := range x.ids {
		if _, ok := x.pos[id]; !ok {
			x.pos[id] = i
		}
	}

	return x
}

// Pos returns the position of id. O(1).
func (x *Index) Pos(id string) (int, bool) {
	i, ok := x.pos[id]

	return i, ok
}

// ID returns the identifier at position i, or "" when i is out of range.
func (x *Index) ID(i int) string {
	if i < 0 || i >= len(x.ids) {
		return ""
	}

	return x.ids[i]
}

// Len returns the number of positions.
func (x *Index) Len() int { return len(x.ids) }
