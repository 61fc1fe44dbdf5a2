// SPDX-License-Identifier: MIT
//
// Package network reads and writes directed weighted networks as YAML files
// and ships an embedded sample bowtie network.
//
// File layout:
//
//	name: bowtie
//	nodes:
//	  - {id: i1, value: 1.0, category: IN}
//	edges:
//	  - {from: i1, to: i5, weight: 0.5}
//
// value and weight may be omitted; the node or edge is then built without
// that attribute and traversals crossing it fail with a missing-attribute error.
package network

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/influence/core"
)

// Sentinel errors for network files.
var (
	// ErrDuplicateNode indicates a node ID declared twice.
	ErrDuplicateNode = errors.New("network: duplicate node")

	// ErrUnknownNode indicates an edge endpoint that is not declared as a node.
	ErrUnknownNode = errors.New("network: edge references unknown node")

	// ErrEmptyID indicates a node or an edge endpoint with an empty ID.
	ErrEmptyID = errors.New("network: empty id")
)

//go:embed bowtie.yaml
var sampleYAML []byte

// File is the on-disk form of a network.
type File struct {
	Name  string `yaml:"name,omitempty"`
	Nodes []Node `yaml:"nodes"`
	Edges []Edge `yaml:"edges"`
}

// Node is one declared vertex. A nil Value means the value is unset.
type Node struct {
	ID       string   `yaml:"id"`
	Value    *float64 `yaml:"value,omitempty"`
	Category string   `yaml:"category,omitempty"`
}

// Edge is one directed edge. A nil Weight means the weight is unset.
type Edge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// Decode reads a File from r. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}

		return nil, fmt.Errorf("network: decode: %w", err)
	}

	return &f, nil
}

// Encode writes f to w as YAML.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("network: encode: %w", err)
	}

	return enc.Close()
}

// ReadFile decodes the network file at path.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	defer fh.Close()

	return Decode(fh)
}

// Sample returns a fresh copy of the embedded bowtie network: 33 nodes in the
// IN, SCC, OUT and TT components and 36 weighted edges, every value 1.0.
func Sample() *File {
	f, err := Decode(bytes.NewReader(sampleYAML))
	if err != nil {
		panic(fmt.Sprintf("network: embedded sample: %v", err))
	}

	return f
}

// Load returns the network at path, or the embedded sample when path is "".
func Load(path string) (*File, error) {
	if path == "" {
		return Sample(), nil
	}

	return ReadFile(path)
}

// Build materializes f as a core.Graph. Self-loops and parallel edges are
// permitted. Nodes are inserted in declaration order, then edges.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateNode, ErrUnknownNode.
//   - core.ErrBadValue, core.ErrBadWeight for non-finite or negative data.
func (f *File) Build() (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())

	for i, n := range f.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("network: node #%d: %w", i, ErrEmptyID)
		}
		if g.HasVertex(n.ID) {
			return nil, fmt.Errorf("network: node %q: %w", n.ID, ErrDuplicateNode)
		}
		var opts []core.VertexOption
		if n.Value != nil {
			opts = append(opts, core.WithValue(*n.Value))
		}
		if n.Category != "" {
			opts = append(opts, core.WithCategory(n.Category))
		}
		if err := g.AddVertex(n.ID, opts...); err != nil {
			return nil, fmt.Errorf("network: node %q: %w", n.ID, err)
		}
	}

	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("network: edge #%d: %w", i, ErrEmptyID)
		}
		for _, id := range []string{e.From, e.To} {
			if !g.HasVertex(id) {
				return nil, fmt.Errorf("network: edge #%d (%s→%s): %q: %w", i, e.From, e.To, id, ErrUnknownNode)
			}
		}
		var err error
		if e.Weight != nil {
			_, err = g.AddEdge(e.From, e.To, *e.Weight)
		} else {
			_, err = g.AddUnweightedEdge(e.From, e.To)
		}
		if err != nil {
			return nil, fmt.Errorf("network: edge #%d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a File. Nodes are listed in sorted ID order and
// edges in creation order.
func FromGraph(name string, g *core.Graph) (*File, error) {
	f := &File{Name: name}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("network: node %q: %w", id, err)
		}
		n := Node{ID: id, Category: v.Category}
		if v.HasValue {
			val := v.Value
			n.Value = &val
		}
		f.Nodes = append(f.Nodes, n)
	}
	for _, e := range g.Edges() {
		out := Edge{From: e.From, To: e.To}
		if e.HasWeight {
			w := e.Weight
			out.Weight = &w
		}
		f.Edges = append(f.Edges, out)
	}

	return f, nil
}
