// Package cmd provides the root command and CLI setup for phpinc.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/utilmind/replace-php-includes/internal/adapter"
	"github.com/utilmind/replace-php-includes/internal/controller"
	"github.com/utilmind/replace-php-includes/internal/domain"
	m "github.com/utilmind/replace-php-includes/internal/model"
)

var fsAdapter adapter.PHPSourceFSAdapter
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalPHPSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, ui)
}

var dryRunFlag bool
var noBackupFlag bool
var parallelFlag int
var excludeFlags []string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phpinc [files...]",
		Short: "Rewrite PHP include/require() calls to the parentheses-free form",
		Long: `Phpinc rewrites PHP source files, converting parenthesized
include(...), include_once(...), require(...) and require_once(...)
statements into their parentheses-free equivalent:

    include('file.php');   becomes   include 'file.php';

A line is only rewritten when the single statement is provably the only
code on it; string literals and comments are understood, so nothing inside
them is ever touched and any ambiguous line is left unchanged.

With no arguments every *.php file under the current directory is
processed recursively. With file arguments only those files are
processed.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Rewrite(domain.RewriteArgs{
				EstimateArgs: domain.EstimateArgs{
					Paths:   parsePaths(args),
					Exclude: excludeFlags,
				},
				DryRun:  dryRunFlag,
				Backup:  !noBackupFlag,
				Threads: parallelFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "do not modify files, only report changes")
	cmd.Flags().BoolVar(&noBackupFlag, "no-backup", false, "do not create .bak files")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers across files")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
