package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective chart file",
	Long: `Print the chart that commands would draw, after applying --config and
--linear, as YAML. The output is a valid chart file.

Examples:
  progressdemo config > chart.yaml
  progressdemo config --linear`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart()
		if err != nil {
			return err
		}
		return configCommand(cmd.OutOrStdout(), c)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func configCommand(out io.Writer, c *ChartFile) error {
	if _, err := c.Config(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding chart: %w", err)
	}
	return enc.Close()
}
