package cmd

import (
	"github.com/spf13/cobra"

	"github.com/utilmind/replace-php-includes/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "List files and counts of rewritable include/require lines",
		Long: `List reports, for each target file, how many lines would be rewritten,
without modifying anything. With no arguments every *.php file under the
current directory is scanned recursively.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Estimate(domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: listExcludeFlags,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
