// SPDX-License-Identifier: MIT

package influence

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/influence/core"
)

// State holds the engine-owned annotations of a graph: the influence index
// of every computed node and the two tagging roles of cumulative mode.
//
// A tagged node is a source in restricted passes and a barrier for every
// other restricted source. A consumed node was already counted by
// EvaluateCumulative and takes part in neither role until it is tagged again.
//
// State is not safe for concurrent passes.
type State struct {
	index    map[string]float64
	tagged   map[string]bool
	consumed map[string]bool
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		index:    make(map[string]float64),
		tagged:   make(map[string]bool),
		consumed: make(map[string]bool),
	}
}

// Reset zeroes the index of every node of g and clears all tags and
// consumption marks. A nil g clears the index map entirely.
func (s *State) Reset(g GraphView) {
	s.index = make(map[string]float64)
	s.tagged = make(map[string]bool)
	s.consumed = make(map[string]bool)
	if isNil(g) {
		return
	}
	for _, id := range g.Vertices() {
		s.index[id] = 0
	}
}

// Index returns the influence index of id (0 if never computed).
func (s *State) Index(id string) float64 { return s.index[id] }

// Indices returns a copy of every stored influence index.
func (s *State) Indices() map[string]float64 {
	out := make(map[string]float64, len(s.index))
	for id, v := range s.index {
		out[id] = v
	}

	return out
}

// Total returns the sum of all stored influence indices.
func (s *State) Total() float64 {
	ids := make([]string, 0, len(s.index))
	for id := range s.index {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	total := 0.0
	for _, id := range ids {
		total += s.index[id]
	}

	return total
}

// Tag marks every node of g whose category equals category. Matching nodes
// that were consumed are re-armed for a new tagging pass; other tags are
// left untouched. It returns the number of matching nodes.
func (s *State) Tag(g GraphView, category string) (int, error) {
	if isNil(g) {
		return 0, ErrGraphNil
	}
	n := 0
	for _, id := range g.Vertices() {
		c, err := g.Category(id)
		if err != nil {
			return n, fmt.Errorf("influence: category of %q: %w", id, err)
		}
		if c != category {
			continue
		}
		s.tagged[id] = true
		delete(s.consumed, id)
		n++
	}

	return n, nil
}

// IsTagged reports whether id is tagged and not yet consumed.
func (s *State) IsTagged(id string) bool { return s.tagged[id] && !s.consumed[id] }

// IsConsumed reports whether id was counted since it was last tagged.
func (s *State) IsConsumed(id string) bool { return s.consumed[id] }

// TaggedIDs returns the IDs for which IsTagged holds, sorted ascending.
func (s *State) TaggedIDs() []string {
	out := make([]string, 0, len(s.tagged))
	for id := range s.tagged {
		if s.IsTagged(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// wrapMissing tags a lookup failure with ErrMissingAttribute when the
// underlying error is a missing core attribute.
func wrapMissing(what string, err error) error {
	if errors.Is(err, core.ErrMissingAttribute) {
		return fmt.Errorf("influence: %s: %w: %w", what, ErrMissingAttribute, err)
	}

	return fmt.Errorf("influence: %s: %w", what, err)
}
