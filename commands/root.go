// Package commands defines the wakaview command-line interface.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wakatools/wakaview/internal/config"
	"github.com/wakatools/wakaview/internal/core/model"
	"github.com/wakatools/wakaview/internal/reporter"
	"github.com/wakatools/wakaview/internal/stats"
	"github.com/wakatools/wakaview/internal/tui"
	"github.com/wakatools/wakaview/internal/util"
)

var (
	// Logging and configuration
	debug      bool
	configPath string

	// Report selection
	graphs    string
	totals    string
	ignore    string
	search    string
	minimum   float64
	startDate string
	endDate   string

	// Presentation
	gui       bool
	colorsDir string

	rootCmd = &cobra.Command{
		Use:   "wakaview [flags] FILE",
		Short: "Terminal charts for WakaTime statistics",
		Long: `wakaview reads a WakaTime daily-activity JSON export and renders your
statistics as terminal charts.

Examples:
  wakaview wakatime.json                       # Daily stats and totals for everything
  wakaview -g l wakatime.json                  # Daily language stats only
  wakaview -t leo wakatime.json                # Totals for all three categories
  wakaview -i "Markdown,JSON" wakatime.json    # Hide some labels
  wakaview -s Python wakatime.json             # Only a single label
  wakaview -m 5 wakatime.json                  # Group small shares under "Other"
  wakaview --start-date 2024-01-01 --end-date 2024-06-30 wakatime.json
  wakaview -G                                  # Interactive parameter form`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReport,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&graphs, "graphs", "g", "",
		"Daily statistics to draw: letters from \"leo\" for languages, editors, operating systems")
	rootCmd.Flags().StringVarP(&totals, "totals", "t", "",
		"Total times to draw: letters from \"leo\" for languages, editors, operating systems")
	rootCmd.Flags().StringVarP(&ignore, "ignore", "i", "",
		"Ignored labels, separated by commas without spaces")
	rootCmd.Flags().StringVarP(&search, "search", "s", "",
		"Labels to search for, separated by commas without spaces (overrides --ignore)")
	rootCmd.Flags().Float64VarP(&minimum, "minimum-labeling-percentage", "m", 0.0,
		"Group labels with a lesser share than this percentage under \"Other\"")
	rootCmd.Flags().StringVar(&startDate, "start-date", "",
		"Start date in format YYYY-MM-DD (inclusive)")
	rootCmd.Flags().StringVar(&endDate, "end-date", "",
		"End date in format YYYY-MM-DD (inclusive)")
	rootCmd.Flags().BoolVarP(&gui, "gui", "G", false,
		"Collect parameters with an interactive form")
	rootCmd.Flags().StringVar(&colorsDir, "colors-dir", "",
		"Directory with per-category label color files (languages.toml, ...)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/.config/wakaview/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logLevel := cfg.Logging.Level
	if debug {
		logLevel = "debug"
	}
	logFile := cfg.Logging.File
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			logFile = ""
		}
	}
	util.InitLogger(logLevel, logFile, debug)

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}
	if graphs == "" {
		graphs = cfg.Graphs
	}
	if totals == "" {
		totals = cfg.Totals
	}
	if colorsDir == "" {
		colorsDir = cfg.ColorsDir
	}

	if gui {
		params, ok, err := tui.Run()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		filePath = params.FilePath
		graphs = params.Graphs
		totals = params.Totals
		ignore = params.Ignore
		search = params.Search
		minimum = params.MinLabelingPercentage
		startDate = params.StartDate
		endDate = params.EndDate
	}

	if filePath == "" {
		fmt.Fprintln(cmd.OutOrStdout(),
			"You did not specify what you would like to do. To get help, run: wakaview --help")
		return nil
	}

	reporterConfig, err := buildConfig(filePath)
	if err != nil {
		return err
	}

	util.LogInfof("Reporting on %s", filePath)
	return reporter.New(reporterConfig).Run()
}

// buildConfig validates the collected parameters and assembles the
// reporter configuration.
func buildConfig(filePath string) (*reporter.Config, error) {
	// Neither view requested means both, for every category.
	if graphs == "" && totals == "" {
		graphs = "leo"
		totals = "leo"
	}

	graphCategories, err := model.ParseCategories(graphs)
	if err != nil {
		return nil, fmt.Errorf("--graphs: %w", err)
	}
	totalCategories, err := model.ParseCategories(totals)
	if err != nil {
		return nil, fmt.Errorf("--totals: %w", err)
	}

	if startDate != "" && !util.ValidDate(startDate) {
		return nil, fmt.Errorf("--start-date %q is not a YYYY-MM-DD date", startDate)
	}
	if endDate != "" && !util.ValidDate(endDate) {
		return nil, fmt.Errorf("--end-date %q is not a YYYY-MM-DD date", endDate)
	}
	if minimum < 0 || minimum > 100 {
		return nil, fmt.Errorf("--minimum-labeling-percentage must be between 0 and 100, got %v", minimum)
	}

	return &reporter.Config{
		FilePath: filePath,
		Graphs:   graphCategories,
		Totals:   totalCategories,
		Options: stats.Options{
			StartDate:             startDate,
			EndDate:               endDate,
			IgnoredLabels:         splitLabels(ignore),
			SearchedLabels:        splitLabels(search),
			MinLabelingPercentage: minimum,
		},
		ColorsDir: colorsDir,
	}, nil
}

// splitLabels splits a comma-separated flag value. Labels are taken
// verbatim; WakaTime label names never need trimming.
func splitLabels(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

func Execute() error {
	return rootCmd.Execute()
}
