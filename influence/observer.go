// SPDX-License-Identifier: MIT

package influence

// Observer receives traversal events. Calls happen synchronously on the
// traversal goroutine; implementations must be cheap.
type Observer interface {
	// Contribution is called when node, reached from source at depth edges,
	// adds amount to the source's index.
	Contribution(source, node string, depth int, amount float64)

	// Barrier is called when a restricted pass stops at a tagged node.
	Barrier(source, node string)

	// CycleTruncated is called when node is already on the current path.
	CycleTruncated(source, node string)

	// SourceDone is called once per source with its final index.
	SourceDone(source string, index float64)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) Contribution(string, string, int, float64) {}
func (NopObserver) Barrier(string, string)                    {}
func (NopObserver) CycleTruncated(string, string)             {}
func (NopObserver) SourceDone(string, float64)                {}

// Observers fans events out to every member in order.
type Observers []Observer

func (os Observers) Contribution(source, node string, depth int, amount float64) {
	for _, o := range os {
		o.Contribution(source, node, depth, amount)
	}
}

func (os Observers) Barrier(source, node string) {
	for _, o := range os {
		o.Barrier(source, node)
	}
}

func (os Observers) CycleTruncated(source, node string) {
	for _, o := range os {
		o.CycleTruncated(source, node)
	}
}

func (os Observers) SourceDone(source string, index float64) {
	for _, o := range os {
		o.SourceDone(source, index)
	}
}
