// Package graph builds the per-period similarity graphs: weighted edges from
// shared attributes, an undirected adjacency structure, and connected
// component extraction.
package graph

import (
	"math/rand"
	"sort"
)

// Edge is one undirected weighted similarity edge between two grouping keys.
// Source sorts before Target, so no reversed duplicates exist in an edge list.
type Edge struct {
	Source string
	Target string
	Weight float64
}

// BuildEdges computes pairwise similarity edges for one period. groups maps
// each grouping key ("subject@period") to its full-attribute list. For every
// unordered pair sharing at least one attribute the weight is the Jaccard
// similarity |intersection| / |union|. When missingEdgeProp > 0, each
// qualifying edge is dropped with that probability using the seeded RNG,
// modeling partial observability of the true graph; the explicit seed keeps
// runs reproducible. An edge survives iff weight >= minEdgeWeight after
// thinning. Emission order is deterministic: sorted keys, source < target.
func BuildEdges(groups map[string][]string, minEdgeWeight, missingEdgeProp float64, seed int64) []Edge {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sets := make(map[string]map[string]struct{}, len(keys))
	for key, atts := range groups {
		set := make(map[string]struct{}, len(atts))
		for _, att := range atts {
			set[att] = struct{}{}
		}
		sets[key] = set
	}

	var rng *rand.Rand
	if missingEdgeProp > 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	var edges []Edge
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			a, b := sets[keys[i]], sets[keys[j]]
			inter := intersectionSize(a, b)
			if inter == 0 {
				continue
			}
			union := len(a) + len(b) - inter
			weight := float64(inter) / float64(union)
			if rng != nil && rng.Float64() < missingEdgeProp {
				continue
			}
			if weight < minEdgeWeight {
				continue
			}
			edges = append(edges, Edge{Source: keys[i], Target: keys[j], Weight: weight})
		}
	}
	return edges
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for att := range a {
		if _, ok := b[att]; ok {
			n++
		}
	}
	return n
}
