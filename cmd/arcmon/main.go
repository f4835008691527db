package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arqlabs/arc/registry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		demo    bool
		workers int
		rounds  int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "arcmon",
		Short: "Live monitor for arc handle lifecycles",
		Long: `arcmon drives arc ownership handles and shows their control block
state live: strong and weak counts, destruction, and leaks.

Without flags it starts an interactive TUI. With --demo it runs a
scripted concurrent clone/drop workload and prints a summary.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				registry.SetLogger(l)
			}
			if demo {
				return runDemo(workers, rounds)
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("stdout is not a terminal; use --demo for non-interactive output")
			}
			return runInteractive()
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "run a scripted concurrent workload and print a summary")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent workers in demo mode")
	cmd.Flags().IntVar(&rounds, "rounds", 1000, "clone/drop rounds per worker in demo mode")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every lifecycle event")
	return cmd
}
