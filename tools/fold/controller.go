package fold

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"love_fold_go/config"
	"love_fold_go/fold"
	"love_fold_go/predictor"
	"love_fold_go/render"
	"love_fold_go/seq_encoder"
	"love_fold_go/structure_stats"
)

func Command(cfg *config.Config) *cobra.Command {
	var (
		strategyName string
		outPDB       string
		outFile      string
		csvOut       bool
		htmlOut      bool
		jsonOut      bool
	)

	c := &cobra.Command{
		Use:   "fold <name1> <name2>",
		Short: "Encode two names, predict the structure and describe it",
		Example: `  love_fold fold Alice Bob
  love_fold fold Alice Bob --strategy flexible --out_pdb alice_bob.pdb --html`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strategyName
			if name == "" {
				name = cfg.Defaults.Strategy
			}
			strategy, err := seq_encoder.ParseStrategy(name)
			if err != nil {
				return err
			}

			res, err := fold.Run(cmd.Context(), predictor.FromConfig(*cfg), fold.Request{
				Name1:    args[0],
				Name2:    args[1],
				Strategy: strategy,
			})
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			if outPDB != "" {
				if err := os.WriteFile(outPDB, []byte(res.PDB), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outPDB, err)
				}
				fmt.Fprintf(stderr, "Structure written to %s\n", outPDB)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else {
				theme := render.DefaultTheme()
				fmt.Fprintln(out, theme.Encoding(res.Encoding))
				fmt.Fprintln(out, theme.Analysis(args[0]+" + "+args[1], res.Analysis))
			}

			if !csvOut && !htmlOut {
				return nil
			}
			prefix := outFile
			if prefix == "" {
				prefix = "love_fold_" + res.ID.String()[:8]
			}
			written, err := structure_stats.WriteReportFiles(prefix, structure_stats.Report{
				Title:     args[0] + " + " + args[1],
				Sequence:  res.Sequence,
				Narrative: res.Narrative,
				Stats:     res.Stats,
				Profile:   res.Profile,
			}, csvOut, htmlOut)
			for _, p := range written {
				fmt.Fprintf(stderr, "Report written to %s\n", p)
			}
			return err
		},
	}

	c.Flags().StringVarP(&strategyName, "strategy", "s", "", "Linker strategy: flexible, anchor or cysteine (default from config)")
	c.Flags().StringVar(&outPDB, "out_pdb", "", "Save the predicted structure to this file")
	c.Flags().StringVar(&outFile, "out_file", "", "Prefix for report files (default: love_fold_<id>)")
	c.Flags().BoolVar(&csvOut, "csv_out", false, "Write summary and per-residue CSV reports")
	c.Flags().BoolVar(&htmlOut, "html", false, "Write an HTML report with the confidence plot")
	c.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of cards")
	return c
}
