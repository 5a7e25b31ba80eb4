// SPDX-License-Identifier: MPL-2.0

// Package dag provides the package dependency graph and its reachability
// closure. Despite the name the graph may contain cycles; the closure tolerates
// them.
package dag

import "slices"

// Graph is a directed graph keyed by package name. An edge from A to B means
// "A depends on B".
type Graph struct {
	// adjacency maps each node to its direct dependencies, in declaration order.
	adjacency map[string][]string
	// nodes tracks all nodes in insertion order.
	nodes []string
	// nodeSet provides O(1) lookup for node existence.
	nodeSet map[string]bool
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		nodeSet:   make(map[string]bool),
	}
}

// AddNode adds a node to the graph. If the node already exists, this is a no-op.
func (g *Graph) AddNode(name string) {
	if g.nodeSet[name] {
		return
	}
	g.nodeSet[name] = true
	g.nodes = append(g.nodes, name)
}

// AddEdge adds a directed edge from -> to. Only "from" becomes a node: a
// dependency that is never declared itself stays a leaf.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Has reports whether name was added as a node.
func (g *Graph) Has(name string) bool {
	return g.nodeSet[name]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Neighbors returns the direct dependencies of name. Unknown names have none.
func (g *Graph) Neighbors(name string) []string {
	return slices.Clone(g.adjacency[name])
}

// Closure returns every name reachable from seeds by following edges,
// seeds included, sorted lexicographically.
//
// The walk is breadth-first: each round adds the whole frontier to the result
// and the next frontier holds only names not yet visited, so every name enters
// a frontier at most once and cycles terminate.
func (g *Graph) Closure(seeds ...string) []string {
	visited := make(map[string]bool, len(seeds))
	frontier := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		if !visited[seed] {
			visited[seed] = true
			frontier = append(frontier, seed)
		}
	}

	result := slices.Clone(frontier)
	for len(frontier) > 0 {
		var next []string
		for _, name := range frontier {
			for _, dep := range g.adjacency[name] {
				if visited[dep] {
					continue
				}
				visited[dep] = true
				next = append(next, dep)
			}
		}
		result = append(result, next...)
		frontier = next
	}

	slices.Sort(result)
	return result
}
