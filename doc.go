// Package heavyhood keeps track of the heaviest neighborhood in a dynamic,
// vertex-weighted, undirected graph.
//
// The neighborhood weight of a vertex is the summed weight of its live
// neighbors. Edges may be added and vertices deleted at any time; after every
// change the vertex with the largest neighborhood weight is available in O(1).
//
// Layout:
//
//	core/      — Graph, Vertex, construction, AddEdge/DeleteNode, queries, Validate
//	dll/       — generic doubly linked list with O(1) removal by handle
//	hashindex/ — fixed-capacity chained hash table with a randomized linear hash
//	nbheap/    — max-heap of neighborhood records that know their own slot
//	builder/   — seeded workloads (vertex sets, random pairs) and weight summaries
//
// Quick example:
//
//	1───2        w(1)=w(2)=w(3)=1
//	│            N(1)=2, N(2)=1, N(3)=1
//	3            heaviest: 1
//
//	g, _ := core.NewGraph([]*core.Vertex{
//		core.NewVertex(1, 1), core.NewVertex(2, 1), core.NewVertex(3, 1),
//	})
//	g.AddEdge(1, 2)
//	g.AddEdge(1, 3)
//	g.MaxNeighborhoodWeight().ID() // 1
//
//	go get github.com/katalvlaran/heavyhood
package heavyhood
