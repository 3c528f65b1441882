// Package pipeline orchestrates one pattern-detection run: per-period graph
// construction, external layout, close-node detection, pattern aggregation,
// and ranking. A run is single-threaded, synchronous, and deterministic for a
// fixed seed; all intermediates are rebuilt from the input table each run and
// never persisted.
package pipeline

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/pattrix/counter"
	"github.com/teranos/pattrix/detect"
	"github.com/teranos/pattrix/errors"
	"github.com/teranos/pattrix/graph"
	"github.com/teranos/pattrix/layout"
	"github.com/teranos/pattrix/logger"
	"github.com/teranos/pattrix/metric"
	"github.com/teranos/pattrix/score"
	"github.com/teranos/pattrix/table"
)

// PeriodGraph is one period's similarity graph and its largest connected
// component.
type PeriodGraph struct {
	Graph            *graph.Graph
	LargestComponent []string
}

// RunOutput carries everything a detection run produced: the ranked result,
// the record counter (reused for time series and attribute counts), and the
// per-period graphs.
type RunOutput struct {
	Result  *score.Result
	Counter *counter.RecordCounter
	Graphs  map[string]*PeriodGraph
}

// Pipeline runs pattern detection with fixed parameters.
type Pipeline struct {
	params  Params
	logger  *zap.SugaredLogger
	metrics *metric.Metrics
}

// New validates params and builds a Pipeline. metrics may be nil when
// instrumentation is not wanted.
func New(params Params, log *zap.SugaredLogger, metrics *metric.Metrics) (*Pipeline, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{
		params:  params,
		logger:  log.Named("pipeline"),
		metrics: metrics,
	}, nil
}

// Params returns the run parameters.
func (p *Pipeline) Params() Params { return p.params }

// PeriodGraphs builds the similarity graph of every period. Thinning, when
// enabled, derives each period's RNG from the run seed plus the period's
// index in sorted order, so per-period draws are independent but the whole
// run stays reproducible.
func (p *Pipeline) PeriodGraphs(t *table.Table) map[string]*PeriodGraph {
	graphs := make(map[string]*PeriodGraph)
	for ix, period := range t.Periods() {
		edges := graph.BuildEdges(
			t.GroupingKeys(period),
			p.params.MinEdgeWeight,
			p.params.MissingEdgeProp,
			p.params.Seed+int64(ix),
		)
		g := graph.FromEdges(edges)
		graphs[period] = &PeriodGraph{
			Graph:            g,
			LargestComponent: g.LargestComponent(),
		}
		p.logger.Debugw("built period graph",
			logger.FieldPeriod, period,
			logger.FieldNodes, g.NodeCount(),
			logger.FieldEdges, g.EdgeCount(),
		)
	}
	return graphs
}

// Run executes the full pipeline over the dynamic table. An empty table
// resolves to an empty ranked result with zero tallies, never an error.
func (p *Pipeline) Run(t *table.Table, provider layout.Provider, isClose detect.CloseFunc) (*RunOutput, error) {
	if isClose == nil {
		return nil, errors.NewConfigurationError("close-node policy cannot be nil")
	}

	runID := uuid.NewString()
	start := time.Now()
	p.logger.Infow("starting detection run",
		logger.FieldRunID, runID,
		logger.FieldTotalCount, t.Len(),
		logger.FieldSubjects, len(t.Subjects()),
		logger.FieldAttributes, len(t.FullAttributes()),
	)

	out := &RunOutput{
		Result:  &score.Result{},
		Counter: counter.New(t),
		Graphs:  map[string]*PeriodGraph{},
	}
	if t.IsEmpty() {
		p.logger.Infow("empty dynamic table, nothing to detect", logger.FieldRunID, runID)
		return out, nil
	}

	periods := t.Periods()

	graphStart := time.Now()
	out.Graphs = p.PeriodGraphs(t)
	p.observeStage("graphs", graphStart)

	layoutStart := time.Now()
	positions := make(map[string]map[string]layout.Position, len(periods))
	for _, period := range periods {
		pos, err := provider.Positions(period, out.Graphs[period].Graph)
		if err != nil {
			return nil, errors.Wrapf(err, "layout failed for period %s", period)
		}
		positions[period] = pos
	}
	p.observeStage("layout", layoutStart)

	sortedSubjects := subjectsWithPositions(positions)
	if p.metrics != nil {
		p.metrics.RecordsIndexed.Set(float64(t.Len()))
	}

	detectStart := time.Now()
	candidates, allPairs, closePairs := detect.CloseNodes(
		periods, positions, sortedSubjects,
		p.params.MinPatternCount, out.Counter, isClose,
	)
	periodToPatterns := detect.AggregatePatterns(
		periods, candidates,
		p.params.MaxPatternLength, p.params.MinPatternCount, out.Counter,
	)
	p.observeStage("detect", detectStart)

	rankStart := time.Now()
	rows := detect.Flatten(periods, periodToPatterns)
	out.Result = score.Rank(rows, closePairs, allPairs)
	p.observeStage("rank", rankStart)

	if p.metrics != nil {
		p.metrics.PairsExamined.Add(float64(allPairs))
		p.metrics.ClosePairs.Add(float64(closePairs))
		p.metrics.PeriodsProcessed.Add(float64(len(periods)))
		for period, detections := range periodToPatterns {
			p.metrics.PatternsDetected.WithLabelValues(period).Add(float64(len(detections)))
		}
	}

	p.logger.Infow("detection run complete",
		logger.FieldRunID, runID,
		logger.FieldAllPairs, allPairs,
		logger.FieldClosePairs, closePairs,
		logger.FieldCount, len(out.Result.Patterns),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (p *Pipeline) observeStage(stage string, start time.Time) {
	if p.metrics != nil {
		p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
}

// subjectsWithPositions collects the sorted subject ids carrying a position
// in any period.
func subjectsWithPositions(positions map[string]map[string]layout.Position) []string {
	set := make(map[string]struct{})
	for _, bysubject := range positions {
		for subject := range bysubject {
			set[subject] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for subject := range set {
		out = append(out, subject)
	}
	sort.Strings(out)
	return out
}
