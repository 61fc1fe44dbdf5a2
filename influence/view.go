// SPDX-License-Identifier: MIT

package influence

import "github.com/katalvlaran/influence/core"

// GraphView is the read-only graph capability the engine traverses.
// *core.Graph implements it.
type GraphView interface {
	// Vertices returns every node ID in a stable (sorted) order.
	Vertices() []string

	// Value returns the intrinsic value of id; an unset value must yield an
	// error matching core.ErrMissingAttribute.
	Value(id string) (float64, error)

	// Category returns the classification label of id ("" if none).
	Category(id string) (string, error)

	// Neighbors returns the outgoing edges of id in a stable order.
	Neighbors(id string) ([]*core.Edge, error)
}

var _ GraphView = (*core.Graph)(nil)

// isNil reports whether g is nil, including a typed nil *core.Graph.
func isNil(g GraphView) bool {
	if g == nil {
		return true
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return true
	}

	return false
}
