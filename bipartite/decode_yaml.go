// SPDX-License-Identifier: MIT

package bipartite

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads the YAML form of the adjacency document:
//
//	alice:
//	  db: 3
//	  web: 1
//
// Mapping order is preserved through yaml.Node. Aliases are resolved. An
// empty document decodes to an empty Input.
//
// Errors: ErrMalformedInput, ErrInvalidWeight (.nan, .inf).
func DecodeYAML(r io.Reader) (Input, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Input{}, nil
		}

		return Input{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	root := deref(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Input{}, nil
		}
		root = deref(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return Input{}, fmt.Errorf("%w: document is not a mapping (line %d)", ErrMalformedInput, root.Line)
	}

	var (
		in   Input
		seen = make(map[string]struct{}, len(root.Content)/2)
	)
	for k := 0; k+1 < len(root.Content); k += 2 {
		id, err := yamlKey(root.Content[k], "node")
		if err != nil {
			return Input{}, err
		}
		if _, dup := seen[id]; dup {
			return Input{}, fmt.Errorf("%w: duplicate node %q (line %d)", ErrMalformedInput, id, root.Content[k].Line)
		}
		seen[id] = struct{}{}

		edges, err := yamlEdges(id, deref(root.Content[k+1]))
		if err != nil {
			return Input{}, err
		}
		in.Nodes = append(in.Nodes, Node{ID: id, Edges: edges})
	}

	return in, nil
}

func yamlEdges(from string, m *yaml.Node) ([]Edge, error) {
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: edges of %q are not a mapping (line %d)", ErrMalformedInput, from, m.Line)
	}

	var (
		edges = make([]Edge, 0, len(m.Content)/2)
		seen  = make(map[string]struct{}, len(m.Content)/2)
	)
	for k := 0; k+1 < len(m.Content); k += 2 {
		to, err := yamlKey(m.Content[k], "neighbour")
		if err != nil {
			return nil, err
		}
		if _, dup := seen[to]; dup {
			return nil, fmt.Errorf("%w: duplicate neighbour %q under %q", ErrMalformedInput, to, from)
		}
		seen[to] = struct{}{}

		val := deref(m.Content[k+1])
		if val.Kind != yaml.ScalarNode || (val.ShortTag() != "!!int" && val.ShortTag() != "!!float") {
			return nil, fmt.Errorf("%w: weight %s→%s is not a number (line %d)", ErrMalformedInput, from, to, val.Line)
		}
		var w float64
		if err = val.Decode(&w); err != nil {
			return nil, fmt.Errorf("%w: weight %s→%s: %v", ErrMalformedInput, from, to, err)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight %s→%s = %v", ErrInvalidWeight, from, to, w)
		}
		edges = append(edges, Edge{To: to, Weight: w})
	}

	return edges, nil
}

// yamlKey accepts scalar keys of any tag (numbers become their literal text).
func yamlKey(n *yaml.Node, what string) (string, error) {
	n = deref(n)
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: %s key is not a scalar (line %d)", ErrMalformedInput, what, n.Line)
	}
	if n.Value == "" {
		return "", fmt.Errorf("%w: empty %s id (line %d)", ErrMalformedInput, what, n.Line)
	}

	return n.Value, nil
}

// deref follows alias nodes to their anchor.
func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}
