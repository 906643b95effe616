package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"love_fold_go/benchmark"
	"love_fold_go/config"
	"love_fold_go/logger"
	"love_fold_go/tools/analyze"
	"love_fold_go/tools/encode"
	"love_fold_go/tools/fold"
	"love_fold_go/tools/linkers"
	"love_fold_go/tools/sanity_check"
	"love_fold_go/tools/serve"
)

// app holds state shared by the root command and its tools.
type app struct {
	cfg        config.Config
	configPath string
	debug      bool
	bench      bool

	cleanup func() error
	session *benchmark.Session
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "love_fold",
		Short:         "Love Fold - fold two names into a protein",
		Version:       config.MainVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.cleanup, err = logger.Setup(logger.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Path:   cfg.Log.Path,
				Debug:  a.debug,
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("setting up logger: %w", err)
			}
			logger.L().Debug("config.loaded", "path", a.configPath, "predictor", cfg.Predictor.URL,
				"cache", cfg.Cache.Enabled)

			if a.bench {
				a.session = benchmark.Start(cmd.ErrOrStderr(), "love_fold "+strings.Join(os.Args[1:], " "))
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file (default ./"+config.DefaultFileName+" when present)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging with source locations")
	root.PersistentFlags().BoolVar(&a.bench, "benchmark", false, "Report time and memory usage of the tool")

	root.AddCommand(
		encode.Command(&a.cfg),
		analyze.Command(&a.cfg),
		fold.Command(&a.cfg),
		serve.Command(&a.cfg),
		linkers.Command(),
		sanity_check.Command(&a.cfg),
		versionCmd(),
	)
	return root
}

// close stops the benchmark and the logger. It runs after every command,
// including failed ones.
func (a *app) close() {
	a.session.Stop()
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintln(w, "Love Fold - Version Information Menu")
	fmt.Fprintln(w, "Central Executable:")
	fmt.Fprintf(w, "\tLove Fold:\t\t%s\n", config.MainVersion)
	fmt.Fprintf(w, "\nModular tools:\n")
	fmt.Fprintf(w, "\tEncoder:\t\t%s\n", config.Encode)
	fmt.Fprintf(w, "\tStructure Analyzer:\t%s\n", config.Analyze)
	fmt.Fprintf(w, "\tFold Pipeline:\t\t%s\n", config.Fold)
	fmt.Fprintf(w, "\tAPI Server:\t\t%s\n", config.Serve)
	fmt.Fprintf(w, "\tLinker Catalog:\t\t%s\n", config.Linkers)
	fmt.Fprintf(w, "\tSanity Check:\t\t%s\n", config.SanityCheck)
	fmt.Fprintf(w, "\tBenchmark:\t\t%s\n", config.Benchmark)
	fmt.Fprintln(w, "")
}

// Main controller
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close()
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
