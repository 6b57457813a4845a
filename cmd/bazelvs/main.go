package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/odvcencio/bazelvs/pkg/bazel"
	"github.com/odvcencio/bazelvs/pkg/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if stderr := bazel.Stderr(err); stderr != "" {
			fmt.Fprint(os.Stderr, stderr)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts gen.Options
	var verbose bool

	root := &cobra.Command{
		Use:           "bazelvs [query...]",
		Short:         "Generate Visual Studio projects from Bazel targets",
		Long: `bazelvs queries a Bazel workspace and generates one Visual Studio
project per matching target, plus a solution aggregating them. Queries
default to //... (every target in the workspace).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			opts.Queries = args
			return gen.Run(opts)
		},
	}

	root.Flags().StringVarP(&opts.OutputDir, "output", "o", "msbuild", "output directory")
	root.Flags().StringVarP(&opts.SolutionName, "solution", "n", "", "solution name (default: workspace directory name)")
	root.Flags().StringArrayVar(&opts.UserConfigs, "config", nil, "extra bazel --config for generated build lines; repeatable")
	root.Flags().StringSliceVar(&opts.Kinds, "kind", nil, "rule kinds to generate projects for")
	root.Flags().StringVar(&opts.BazelPath, "bazel", "", "bazel executable (default: $BAZEL or bazel)")
	root.Flags().StringVar(&opts.AspectDir, "aspect-dir", "", "bazel-msbuild aspect repository directory")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("bazelvs 0.1.0-dev")
		},
	}
}
