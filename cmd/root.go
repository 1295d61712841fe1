package cmd

import (
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// log is shared by all commands and handed to the solver so live deduction
// logging and CLI output use one sink.
var log = logrus.New()

var (
	verbose    bool
	profileCPU bool

	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate and solve Sudoku puzzles",
	Long: `Solve and generate 9x9 Sudoku puzzles using logical deduction plus
randomized backtracking, and rate puzzle difficulty from the deduction
trail of the solve.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		if profileCPU {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&profileCPU, "profile", false, "Write a CPU profile to the current directory")
}
