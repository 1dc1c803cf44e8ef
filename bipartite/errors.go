// SPDX-License-Identifier: MIT

package bipartite

import (
	"errors"

	"github.com/katalvlaran/bimatch/assignment"
)

var (
	// ErrMalformedInput indicates input that does not have the node → {neighbour: weight} shape.
	ErrMalformedInput = errors.New("bipartite: malformed input")

	// ErrNotBipartite indicates an edge between two vertices forced onto the same side.
	ErrNotBipartite = errors.New("bipartite: graph is not bipartite")

	// ErrUnknownFormat indicates an unsupported input or output format name.
	ErrUnknownFormat = errors.New("bipartite: unknown format")

	// ErrDimensionMismatch is the solver's sentinel; it is reused for
	// unequal partition sides so callers match a single error.
	ErrDimensionMismatch = assignment.ErrDimensionMismatch

	// ErrInvalidWeight is the solver's sentinel; it is reused for NaN/±Inf
	// weights found while decoding.
	ErrInvalidWeight = assignment.ErrInvalidWeight
)
