package graph

import "sort"

// Graph is an undirected weighted graph keyed by node id.
type Graph struct {
	adjacency map[string]map[string]float64
}

// FromEdges assembles a graph from an edge list. An empty edge list yields an
// empty graph, not an error: downstream treats the period as having zero
// pattern detections.
func FromEdges(edges []Edge) *Graph {
	g := &Graph{adjacency: make(map[string]map[string]float64)}
	for _, e := range edges {
		g.addEdge(e.Source, e.Target, e.Weight)
		g.addEdge(e.Target, e.Source, e.Weight)
	}
	return g
}

func (g *Graph) addEdge(from, to string, weight float64) {
	neighbors, ok := g.adjacency[from]
	if !ok {
		neighbors = make(map[string]float64)
		g.adjacency[from] = neighbors
	}
	neighbors[to] = weight
}

// Nodes returns the sorted node ids.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.adjacency))
	for node := range g.adjacency {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, neighbors := range g.adjacency {
		n += len(neighbors)
	}
	return n / 2
}

// HasNode reports whether the node participates in any edge.
func (g *Graph) HasNode(node string) bool {
	_, ok := g.adjacency[node]
	return ok
}

// Weight returns the edge weight between two nodes and whether the edge exists.
// Symmetric: Weight(u, v) == Weight(v, u).
func (g *Graph) Weight(u, v string) (float64, bool) {
	w, ok := g.adjacency[u][v]
	return w, ok
}

// Neighbors returns the sorted neighbor ids of one node.
func (g *Graph) Neighbors(node string) []string {
	neighbors := make([]string, 0, len(g.adjacency[node]))
	for n := range g.adjacency[node] {
		neighbors = append(neighbors, n)
	}
	sort.Strings(neighbors)
	return neighbors
}

// LargestComponent returns the largest connected component as a sorted node
// set. Ties between equal-sized components break toward the one containing
// the lexicographically smallest node, keeping extraction deterministic.
// An empty graph yields an empty set.
func (g *Graph) LargestComponent() []string {
	visited := make(map[string]struct{}, len(g.adjacency))
	var largest []string

	for _, start := range g.Nodes() {
		if _, done := visited[start]; done {
			continue
		}
		component := g.bfs(start, visited)
		if len(component) > len(largest) {
			largest = component
		}
	}

	sort.Strings(largest)
	return largest
}

func (g *Graph) bfs(start string, visited map[string]struct{}) []string {
	queue := []string{start}
	visited[start] = struct{}{}
	component := []string{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, next := range g.Neighbors(node) {
			if _, done := visited[next]; done {
				continue
			}
			visited[next] = struct{}{}
			component = append(component, next)
			queue = append(queue, next)
		}
	}
	return component
}
