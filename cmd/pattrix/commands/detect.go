package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/pattrix/config"
	"github.com/teranos/pattrix/detect"
	"github.com/teranos/pattrix/errors"
	"github.com/teranos/pattrix/layout"
	"github.com/teranos/pattrix/logger"
	"github.com/teranos/pattrix/metric"
	"github.com/teranos/pattrix/pipeline"
	"github.com/teranos/pattrix/score"
)

var (
	detectInput     string
	detectFromDB    bool
	detectPositions string
	detectTop       int
	detectRadius    float64
	detectSeed      int64
)

// DetectCmd runs the full detection pipeline.
var DetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Run pattern detection over a dynamic table",
	Long: `Run the full detection pipeline: per-period similarity graphs,
close-node candidate detection against externally computed positions,
statistical scoring, and ranking.

Examples:
  pattrix detect --input records.csv --positions layout.yaml
  pattrix detect --from-db --positions layout.yaml --top 10 --radius 0.1`,
	RunE: runDetectCommand,
}

func init() {
	DetectCmd.Flags().StringVarP(&detectInput, "input", "i", "", "Dynamic-table CSV path")
	DetectCmd.Flags().BoolVar(&detectFromDB, "from-db", false, "Read the dynamic table from the SQLite record store")
	DetectCmd.Flags().StringVarP(&detectPositions, "positions", "p", "", "Node positions YAML path (required)")
	DetectCmd.Flags().IntVarP(&detectTop, "top", "t", 20, "Maximum ranked rows to display")
	DetectCmd.Flags().Float64VarP(&detectRadius, "radius", "r", -1, "Close-node radius (overrides config)")
	DetectCmd.Flags().Int64Var(&detectSeed, "seed", -1, "Edge-thinning seed (overrides config)")
	DetectCmd.MarkFlagRequired("positions")
}

func runDetectCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	params := cfg.Params()
	if detectSeed >= 0 {
		params.Seed = detectSeed
	}
	radius := cfg.Detection.CloseRadius
	if detectRadius >= 0 {
		radius = detectRadius
	}

	tbl, err := loadTable(cfg, detectInput, detectFromDB)
	if err != nil {
		return err
	}

	provider, err := layout.LoadPositionsFile(detectPositions)
	if err != nil {
		return err
	}

	metrics := metric.NewMetrics()
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return errors.Wrap(err, "failed to register metrics")
	}

	pipe, err := pipeline.New(params, logger.Logger, metrics)
	if err != nil {
		return err
	}
	out, err := pipe.Run(tbl, provider, detect.WithinRadius(radius))
	if err != nil {
		return errors.Wrap(err, "detection run failed")
	}

	if jsonFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); jsonFlag {
		return outputJSON(out.Result)
	}
	return displayResult(out.Result, detectTop)
}

func displayResult(result *score.Result, top int) error {
	fmt.Printf("Examined %d pairs, %d close; %d ranked rows\n\n",
		result.AllPairs, result.ClosePairs, len(result.Patterns))

	if len(result.Patterns) == 0 {
		pterm.Info.Println("No patterns detected")
		return nil
	}

	rows := pterm.TableData{
		{"pattern", "period", "length", "count", "mean", "z_score", "detections", "overall_score"},
	}
	for i, row := range result.Patterns {
		if i == top {
			break
		}
		rows = append(rows, []string{
			row.Pattern,
			row.Period,
			strconv.Itoa(row.Length),
			strconv.Itoa(row.Count),
			fmt.Sprintf("%.2f", row.Mean),
			fmt.Sprintf("%.2f", row.ZScore),
			strconv.Itoa(row.Detections),
			fmt.Sprintf("%.2f", row.OverallScore),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	fmt.Println(string(data))
	return nil
}
