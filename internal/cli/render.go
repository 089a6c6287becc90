package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw a chart and write it as PNG",
	Long: `Draw the chart once, without animation, and write the result as PNG.

Examples:
  progressdemo render
  progressdemo render --linear --out bar.png
  progressdemo render --config chart.yaml --out chart.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart()
		if err != nil {
			return err
		}
		return renderCommand(cmd.OutOrStdout(), c, renderOut)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "progress.png", "output PNG path")
}

func renderCommand(out io.Writer, c *ChartFile, path string) error {
	r, err := newRenderer(c, false)
	if err != nil {
		return err
	}
	dc, err := paint(r, c)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintln(out, summary("wrote", path, c))
	return nil
}
