package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/progress"
)

// Global flags
var (
	cfgFile    string
	linearFlag bool
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "progressdemo",
	Short: "Render animated progress charts",
	Long: `progressdemo draws circular and linear progress charts with gogpu/gg.

Charts are described by a YAML file (--config). Without one, the built-in
demo chart is used: a 7 of 10 gauge, or a 75 of 100 bar with --linear.

Examples:
  progressdemo render --out gauge.png
  progressdemo render --linear --out bar.png
  progressdemo frames --config chart.yaml --fps 30 --dir frames/
  progressdemo preview --linear`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "chart file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&linearFlag, "linear", false, "use the linear demo chart")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log renderer activity to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

func setupLogging(enabled bool) {
	if !enabled {
		progress.SetLogger(nil)
		gg.SetLogger(nil)
		return
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	progress.SetLogger(l)
	gg.SetLogger(l)
}

// loadChart resolves the chart for a command from --config and --linear.
func loadChart() (*ChartFile, error) {
	variant := VariantCircular
	if linearFlag {
		variant = VariantLinear
	}
	if cfgFile == "" {
		c := DemoChart(variant)
		return &c, nil
	}
	return LoadChart(cfgFile, variant)
}
