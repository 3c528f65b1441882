// Package layout defines the boundary to the external 2D graph-layout
// service. The core never computes positions itself; it consumes them
// through the Provider interface, one layout run per period graph.
package layout

import (
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/teranos/pattrix/errors"
	"github.com/teranos/pattrix/graph"
	"github.com/teranos/pattrix/table"
)

// Position is one externally supplied 2D node position, meaningful only
// within a single period's graph.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Provider supplies node positions for one period's graph.
type Provider interface {
	Positions(period string, g *graph.Graph) (map[string]Position, error)
}

// FileProvider serves positions from a preloaded subject -> period -> (x, y)
// mapping, the fixed-interface adapter for layouts computed out of process.
type FileProvider struct {
	// subject -> period -> position
	positions map[string]map[string]Position
}

// NewFileProvider wraps an already loaded position mapping.
func NewFileProvider(positions map[string]map[string]Position) *FileProvider {
	return &FileProvider{positions: positions}
}

// LoadPositions reads a subject -> period -> (x, y) YAML document.
func LoadPositions(r io.Reader) (*FileProvider, error) {
	var positions map[string]map[string]Position
	if err := yaml.NewDecoder(r).Decode(&positions); err != nil {
		return nil, errors.Wrap(err, "failed to decode positions document")
	}
	return NewFileProvider(positions), nil
}

// LoadPositionsFile reads a positions YAML file from disk.
func LoadPositionsFile(path string) (*FileProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open positions file %s", path)
	}
	defer f.Close()
	return LoadPositions(f)
}

// Positions returns the positions recorded for one period, restricted to the
// graph's nodes when a graph is given.
func (p *FileProvider) Positions(period string, g *graph.Graph) (map[string]Position, error) {
	out := make(map[string]Position)
	for subject, byPeriod := range p.positions {
		pos, ok := byPeriod[period]
		if !ok {
			continue
		}
		// Graph nodes are grouping keys, positions are keyed by subject.
		if g != nil && !g.HasNode(table.GroupingKey(subject, period)) {
			continue
		}
		out[subject] = pos
	}
	return out, nil
}

// Subjects returns the sorted subject ids carrying at least one position.
func (p *FileProvider) Subjects() []string {
	out := make([]string, 0, len(p.positions))
	for subject := range p.positions {
		out = append(out, subject)
	}
	sort.Strings(out)
	return out
}
