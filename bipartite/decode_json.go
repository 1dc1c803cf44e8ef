// SPDX-License-Identifier: MIT

package bipartite

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// DecodeJSON reads an adjacency document of the form
// {"node": {"neighbour": weight, ...}, ...} preserving key order.
//
// The document is consumed token by token; reflection-based decoding into a
// map would lose the order that fixes the partition and tie-breaking.
//
// Errors: ErrMalformedInput (wrong shape, non-numeric weight, duplicate or
// empty key, trailing data), ErrInvalidWeight (weight overflows float64).
// Complexity: O(size of document).
func DecodeJSON(r io.Reader) (Input, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{', "document"); err != nil {
		return Input{}, err
	}

	var (
		in   Input
		seen = make(map[string]struct{})
	)
	for dec.More() {
		id, err := readKey(dec, "node")
		if err != nil {
			return Input{}, err
		}
		if _, dup := seen[id]; dup {
			return Input{}, fmt.Errorf("%w: duplicate node %q", ErrMalformedInput, id)
		}
		seen[id] = struct{}{}

		edges, err := readEdges(dec, id)
		if err != nil {
			return Input{}, err
		}
		in.Nodes = append(in.Nodes, Node{ID: id, Edges: edges})
	}
	if err := expectDelim(dec, '}', "document"); err != nil {
		return Input{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Input{}, fmt.Errorf("%w: trailing data after document", ErrMalformedInput)
	}

	return in, nil
}

// readEdges consumes one {"neighbour": weight} object.
func readEdges(dec *json.Decoder, from string) ([]Edge, error) {
	if err := expectDelim(dec, '{', fmt.Sprintf("edges of %q", from)); err != nil {
		return nil, err
	}

	var (
		edges []Edge
		seen  = make(map[string]struct{})
	)
	for dec.More() {
		to, err := readKey(dec, "neighbour")
		if err != nil {
			return nil, err
		}
		if _, dup := seen[to]; dup {
			return nil, fmt.Errorf("%w: duplicate neighbour %q under %q", ErrMalformedInput, to, from)
		}
		seen[to] = struct{}{}

		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		num, ok := tok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: weight %s→%s is %T, want number", ErrMalformedInput, from, to, tok)
		}
		w, err := parseWeight(string(num))
		if err != nil {
			return nil, fmt.Errorf("%s→%s: %w", from, to, err)
		}
		edges = append(edges, Edge{To: to, Weight: w})
	}
	if err := expectDelim(dec, '}', fmt.Sprintf("edges of %q", from)); err != nil {
		return nil, err
	}

	return edges, nil
}

// readKey reads an object key and rejects the empty string.
func readKey(dec *json.Decoder, what string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s key is %T", ErrMalformedInput, what, tok)
	}
	if key == "" {
		return "", fmt.Errorf("%w: empty %s id", ErrMalformedInput, what)
	}

	return key, nil
}

// expectDelim reads the next token and requires it to be want.
func expectDelim(dec *json.Decoder, want json.Delim, where string) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s: unexpected end of input", ErrMalformedInput, where)
		}

		return fmt.Errorf("%w: %s: %v", ErrMalformedInput, where, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: %s: got %v, want %q", ErrMalformedInput, where, tok, string(want))
	}

	return nil
}

// parseWeight converts a decimal literal, mapping overflow to ErrInvalidWeight.
func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: weight %q", ErrMalformedInput, s)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: weight %q", ErrInvalidWeight, s)
	}

	return w, nil
}
