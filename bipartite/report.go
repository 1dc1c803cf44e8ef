// SPDX-License-Identifier: MIT

package bipartite

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/assignment"
)

// Pair is one matched (left, right) couple with its edge weight.
type Pair struct {
	Left   string
	Right  string
	Weight float64
}

// Report is the matched pairing in Left order plus its total weight.
type Report struct {
	Objective  assignment.Objective
	Assignment []Pair
	Weight     float64
}

// Map returns the pairing as left → right.
func (r Report) Map() map[string]string {
	m := make(map[string]string, len(r.Assignment))
	for _, p := range r.Assignment {
		m[p.Left] = p.Right
	}

	return m
}

// wireReport is the serialised shape shared by JSON and YAML.
type wireReport struct {
	Assignment map[string]string `json:"assignment" yaml:"assignment"`
	Weight     float64           `json:"weight" yaml:"weight"`
}

func (r Report) wire() wireReport {
	return wireReport{Assignment: r.Map(), Weight: r.Weight}
}

// Format names an output (or input) encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat accepts json, yaml (or yml) and text, case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders r in format f.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatText:
		return WriteText(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Decode reads an adjacency document in format f. Text is output-only.
func Decode(rd io.Reader, f Format) (Input, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(rd)
	case FormatYAML:
		return DecodeYAML(rd)
	default:
		return Input{}, fmt.Errorf("%w: cannot decode %q", ErrUnknownFormat, string(f))
	}
}

// WriteJSON renders {"assignment":{left:right,...},"weight":x} with sorted
// keys, two-space indentation and a trailing newline.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.wire()); err != nil {
		return fmt.Errorf("bipartite: write json: %w", err)
	}

	return nil
}

// WriteYAML renders the same document as WriteJSON in YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.wire()); err != nil {
		return fmt.Errorf("bipartite: write yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("bipartite: write yaml: %w", err)
	}

	return nil
}

// WriteText renders one "left -> right (weight)" line per pair in Left
// order, then "total: weight".
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder
	for _, p := range r.Assignment {
		fmt.Fprintf(&b, "%s -> %s (%s)\n", p.Left, p.Right, formatWeight(p.Weight))
	}
	fmt.Fprintf(&b, "total: %s\n", formatWeight(r.Weight))
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("bipartite: write text: %w", err)
	}

	return nil
}

func formatWeight(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
