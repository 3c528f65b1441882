// Package score merges per-period pattern detections into a ranked table and
// assembles charting-ready time series for the top patterns.
package score

import (
	"math"
	"sort"

	"github.com/teranos/pattrix/detect"
)

// ScoredPattern is one ranked-table row: a per-period detection enriched with
// the pattern's cross-period detection count and its normalized overall score.
type ScoredPattern struct {
	Period       string  `json:"period"`
	Pattern      string  `json:"pattern"`
	Length       int     `json:"length"`
	Count        int     `json:"count"`
	Mean         float64 `json:"mean"`
	ZScore       float64 `json:"z_score"`
	Detections   int     `json:"detections"`
	OverallScore float64 `json:"overall_score"`
}

// Result is the ranked pattern table together with the pair-coverage tallies
// from close-node detection.
type Result struct {
	Patterns   []ScoredPattern `json:"patterns"`
	ClosePairs int             `json:"close_pairs"`
	AllPairs   int             `json:"all_pairs"`
}

// Rank computes each pattern's detections (distinct periods containing it),
// the composite overall score z * length * detections * log1p(count),
// max-normalized to [0, 1] and rounded to two decimals, then sorts by score
// descending, stable on ties. Patterns sitting below their null baseline
// carry a negative z; their raw score clamps to 0 so normalized scores stay
// within [0, 1]. A zero or undefined maximum (no pattern exists, or every
// score degenerates) yields an empty table rather than a NaN score.
func Rank(rows []detect.Detection, closePairs, allPairs int) *Result {
	result := &Result{ClosePairs: closePairs, AllPairs: allPairs}
	if len(rows) == 0 {
		return result
	}

	detections := make(map[string]int)
	for _, row := range rows {
		detections[row.Pattern]++
	}

	raw := make([]float64, len(rows))
	max := 0.0
	for i, row := range rows {
		raw[i] = row.ZScore * float64(row.Length) * float64(detections[row.Pattern]) * math.Log1p(float64(row.Count))
		if raw[i] < 0 {
			raw[i] = 0
		}
		if raw[i] > max {
			max = raw[i]
		}
	}
	if max <= 0 || math.IsNaN(max) {
		return result
	}

	scored := make([]ScoredPattern, len(rows))
	for i, row := range rows {
		scored[i] = ScoredPattern{
			Period:       row.Period,
			Pattern:      row.Pattern,
			Length:       row.Length,
			Count:        row.Count,
			Mean:         row.Mean,
			ZScore:       row.ZScore,
			Detections:   detections[row.Pattern],
			OverallScore: round2(raw[i] / max),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OverallScore > scored[j].OverallScore
	})

	result.Patterns = scored
	return result
}

// TopPatterns returns the distinct pattern strings of the highest-ranked
// rows, at most n, in rank order.
func (r *Result) TopPatterns(n int) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range r.Patterns {
		if _, dup := seen[row.Pattern]; dup {
			continue
		}
		seen[row.Pattern] = struct{}{}
		out = append(out, row.Pattern)
		if len(out) == n {
			break
		}
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
