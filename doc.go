// Package influencegraph computes influence indices on directed, weighted
// graphs: how much value each node can reach downstream, decayed by the
// product of edge weights along every simple path.
//
// What is in the box?
//
//	core/          thread-safe Graph with vertex values, categories and edge weights
//	influence/     the traversal engine, cumulative category index, closed form and Compare
//	matrix/        dense matrices, pivoting LU, inverse, adjacency matrix and value vector
//	dfs/           topological order and strongly connected components
//	bfs/           forward and backward reachability
//	bowtie/        IN / SCC / OUT / TT / OCC classification around the largest core
//	builder/       deterministic path, cycle and random graph constructors
//	network/       YAML network files and the embedded sample bowtie
//	metrics/       Prometheus observer for traversal events
//	config/        viper-backed configuration
//	cmd/influence  command line front end
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("A", core.WithValue(1))
//	_ = g.AddVertex("B", core.WithValue(1))
//	_, _ = g.AddEdge("A", "B", 0.5)
//	idx, _ := influence.NewEngine(nil).Compute(ctx, g)
//	// idx["A"] == 0.5
package influencegraph
