package pipeline

import (
	"github.com/teranos/pattrix/errors"
)

// Params are the numeric thresholds and knobs of one detection run.
type Params struct {
	// Separator joins attribute type and value into a full attribute. The
	// caller guarantees it collides with no character occurring in attribute
	// names or values.
	Separator string

	// MinEdgeWeight is the minimum Jaccard similarity for a subject pair to
	// form an edge, in [0, 1].
	MinEdgeWeight float64

	// MissingEdgeProp is the probability of dropping a qualifying edge,
	// modeling incomplete observation, in [0, 1].
	MissingEdgeProp float64

	// MinPatternCount is the minimum distinct-subject count for a pattern to
	// be detected in a period.
	MinPatternCount int

	// MaxPatternLength bounds conjunction length; longer candidates are
	// truncated.
	MaxPatternLength int

	// Seed drives edge thinning when MissingEdgeProp > 0. Fixed seed plus
	// unchanged input reproduces the run exactly.
	Seed int64
}

// DefaultParams returns the run defaults.
func DefaultParams() Params {
	return Params{
		Separator:        "==",
		MinEdgeWeight:    0.001,
		MissingEdgeProp:  0.1,
		MinPatternCount:  5,
		MaxPatternLength: 100,
	}
}

// Validate fails fast on thresholds outside their valid range.
func (p Params) Validate() error {
	if p.Separator == "" {
		return errors.NewConfigurationError("separator cannot be empty")
	}
	if p.MinEdgeWeight < 0 || p.MinEdgeWeight > 1 {
		return errors.NewConfigurationError("min_edge_weight must be in [0, 1], got %g", p.MinEdgeWeight)
	}
	if p.MissingEdgeProp < 0 || p.MissingEdgeProp > 1 {
		return errors.NewConfigurationError("missing_edge_prop must be in [0, 1], got %g", p.MissingEdgeProp)
	}
	if p.MinPatternCount <= 0 {
		return errors.NewConfigurationError("min_pattern_count must be > 0, got %d", p.MinPatternCount)
	}
	if p.MaxPatternLength <= 0 {
		return errors.NewConfigurationError("max_pattern_length must be > 0, got %d", p.MaxPatternLength)
	}
	return nil
}
