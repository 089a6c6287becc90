package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gogpu/progress"
	"github.com/gogpu/progress/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Animate a chart in the terminal",
	Long: `Animate the chart's label and fill in the terminal. Press r to replay
the animation and q to quit.

Examples:
  progressdemo preview
  progressdemo preview --linear`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart()
		if err != nil {
			return err
		}
		model, err := newPreview(c)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(model).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func newPreview(c *ChartFile) (preview.Model, error) {
	cfg, err := c.Config()
	if err != nil {
		return preview.Model{}, err
	}
	r, err := progress.NewRenderer()
	if err != nil {
		return preview.Model{}, err
	}
	if err := r.Resize(c.Width, c.Height); err != nil {
		return preview.Model{}, err
	}

	title := fmt.Sprintf("%s %g/%g", c.Variant, c.Value, c.MaxValue)
	draw := func(r *progress.Renderer) error {
		return drawChart(r, c, cfg, true)
	}
	return preview.New(r, title, cfg.MaxValue, cfg.GradientStops, draw), nil
}
