// SPDX-License-Identifier: MIT

package bipartite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EncodeJSON writes in as an adjacency document, one node per line, in
// document order. DecodeJSON(EncodeJSON(in)) == in.
func EncodeJSON(w io.Writer, in Input) error {
	if err := in.Validate(); err != nil {
		return err
	}

	var b bytes.Buffer
	if len(in.Nodes) == 0 {
		b.WriteString("{}\n")
	} else {
		b.WriteString("{\n")
		for i, n := range in.Nodes {
			b.WriteString("  ")
			writeJSONString(&b, n.ID)
			b.WriteString(": {")
			for k, e := range n.Edges {
				if k > 0 {
					b.WriteString(", ")
				}
				writeJSONString(&b, e.To)
				b.WriteString(": ")
				b.WriteString(strconv.FormatFloat(e.Weight, 'g', -1, 64))
			}
			b.WriteByte('}')
			if i < len(in.Nodes)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString("}\n")
	}
	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("bipartite: encode json: %w", err)
	}

	return nil
}

func writeJSONString(b *bytes.Buffer, s string) {
	enc, _ := json.Marshal(s) // strings always marshal
	b.Write(enc)
}

// EncodeYAML writes in as a YAML mapping in document order.
func EncodeYAML(w io.Writer, in Input) error {
	if err := in.Validate(); err != nil {
		return err
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, n := range in.Nodes {
		edges := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		for _, e := range n.Edges {
			edges.Content = append(edges.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.To},
				&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(e.Weight, 'g', -1, 64)},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.ID},
			edges,
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("bipartite: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("bipartite: encode yaml: %w", err)
	}

	return nil
}

// Encode writes in using format f (json or yaml).
func Encode(w io.Writer, in Input, f Format) error {
	switch f {
	case FormatJSON:
		return EncodeJSON(w, in)
	case FormatYAML:
		return EncodeYAML(w, in)
	default:
		return fmt.Errorf("%w: cannot encode input as %q", ErrUnknownFormat, string(f))
	}
}
