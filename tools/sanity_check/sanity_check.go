package sanity_check

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"love_fold_go/config"
	"love_fold_go/fold"
	"love_fold_go/predictor"
	"love_fold_go/seq_encoder"
)

// A three residue structure that every build must analyse the same way.
const samplePDB = `ATOM      1  CA  ALA A   1       0.000   0.000   0.000  1.00 90.00           C
ATOM      2  CA  LEU A   2       3.800   0.000   0.000  1.00 80.00           C
ATOM      3  CA  GLY A   3       7.600   0.000   0.000  1.00 70.00           C
`

const probeSequence = "ACDEFGHIKLMNPQRSTVWY"

// Command returns the check tool: prints the version and runs a handful of
// offline self tests. --predictor also folds a short probe sequence.
func Command(cfg *config.Config) *cobra.Command {
	var probe bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Run a diagnostic self test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Successfully running Love Fold! (%s)\n", config.MainVersion)

			if err := selfTest(out); err != nil {
				return err
			}
			if !probe {
				return nil
			}
			return probePredictor(cmd.Context(), out, predictor.New(cfg.Predictor))
		},
	}

	c.Flags().BoolVar(&probe, "predictor", false, "Also fold a short probe sequence with the configured predictor")
	return c
}

func selfTest(out io.Writer) error {
	res, err := seq_encoder.Encode("Alice", "Bob", seq_encoder.Anchor)
	if err != nil {
		return fmt.Errorf("encoder self test: %w", err)
	}
	if res.Sequence != "ALICEWPHWPNQN" {
		return fmt.Errorf("encoder self test: got %s", res.Sequence)
	}
	fmt.Fprintln(out, "  encoder   ok")

	a := fold.Analyze(samplePDB, "")
	if a.Sequence != "ALG" || a.Stats.ResidueCount != 3 || a.Stats.AverageConfidence != 80 {
		return fmt.Errorf("analyzer self test: got %s %+v", a.Sequence, a.Stats)
	}
	fmt.Fprintln(out, "  analyzer  ok")
	return nil
}

func probePredictor(ctx context.Context, out io.Writer, f predictor.Folder) error {
	start := time.Now()
	pdb, err := f.Fold(ctx, probeSequence)
	if err != nil {
		return fmt.Errorf("predictor probe: %w", err)
	}
	a := fold.Analyze(pdb, probeSequence)
	fmt.Fprintf(out, "  predictor ok (%d residues, mean confidence %.1f, %v)\n",
		a.Stats.ResidueCount, a.Stats.AverageConfidence, time.Since(start).Round(time.Millisecond))
	return nil
}
