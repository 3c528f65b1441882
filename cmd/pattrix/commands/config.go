package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/pattrix/config"
)

// ConfigCmd groups configuration inspection and persistence.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or persist pattrix configuration",
	Long: `Inspect the effective configuration (defaults, config file, and
PATTRIX_* environment overrides merged) or write it to
~/.pattrix/config.toml.

Examples:
  pattrix config show
  pattrix config save`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShowCommand,
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective configuration to ~/.pattrix/config.toml",
	RunE:  runConfigSaveCommand,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSaveCmd)
}

func runConfigShowCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rows := pterm.TableData{
		{"setting", "value"},
		{"detection.separator", cfg.Detection.Separator},
		{"detection.min_edge_weight", fmt.Sprintf("%g", cfg.Detection.MinEdgeWeight)},
		{"detection.missing_edge_prop", fmt.Sprintf("%g", cfg.Detection.MissingEdgeProp)},
		{"detection.min_pattern_count", strconv.Itoa(cfg.Detection.MinPatternCount)},
		{"detection.max_pattern_length", strconv.Itoa(cfg.Detection.MaxPatternLength)},
		{"detection.seed", strconv.FormatInt(cfg.Detection.Seed, 10)},
		{"detection.close_radius", fmt.Sprintf("%g", cfg.Detection.CloseRadius)},
		{"database.path", cfg.Database.Path},
		{"logging.json", strconv.FormatBool(cfg.Logging.JSON)},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func runConfigSaveCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	pterm.Success.Printf("Configuration written to %s\n", filepath.Join(dir, "config.toml"))
	return nil
}
