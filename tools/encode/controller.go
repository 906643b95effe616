package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"love_fold_go/config"
	"love_fold_go/name_normalizer"
	"love_fold_go/render"
	"love_fold_go/seq_encoder"
	"love_fold_go/utils"
)

// Command returns the encode tool. cfg is filled in by the root command
// before RunE executes.
func Command(cfg *config.Config) *cobra.Command {
	var (
		strategyName string
		all          bool
		fastaOut     bool
		jsonOut      bool
	)

	c := &cobra.Command{
		Use:   "encode <name1> <name2>",
		Short: "Encode two names into a love sequence",
		Example: `  love_fold encode Alice Bob
  love_fold encode "José" "Мария" --strategy cysteine --fasta
  love_fold encode Alice Bob --all`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fastaOut && jsonOut {
				return errors.New("choose one of --fasta and --json")
			}

			strategies := seq_encoder.Strategies
			if !all {
				name := strategyName
				if name == "" {
					name = cfg.Defaults.Strategy
				}
				s, err := seq_encoder.ParseStrategy(name)
				if err != nil {
					return err
				}
				strategies = []seq_encoder.Strategy{s}
			}

			out := cmd.OutOrStdout()
			var results []seq_encoder.Result
			var lastErr error
			for _, s := range strategies {
				res, err := seq_encoder.Encode(args[0], args[1], s)
				if err != nil {
					if !all {
						return err
					}
					// other strategies may still fit
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", s, err)
					lastErr = err
					continue
				}
				results = append(results, res)
			}
			if len(results) == 0 {
				return lastErr
			}

			switch {
			case jsonOut:
				return writeJSON(out, results, all)
			case fastaOut:
				for _, res := range results {
					fmt.Fprint(out, utils.Fasta(fastaID(args[0], args[1], res.Strategy), res.Sequence))
				}
			default:
				theme := render.DefaultTheme()
				for _, res := range results {
					fmt.Fprintln(out, theme.Encoding(res))
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&strategyName, "strategy", "s", "", "Linker strategy: flexible, anchor or cysteine (default from config)")
	c.Flags().BoolVar(&all, "all", false, "Encode with every linker strategy")
	c.Flags().BoolVar(&fastaOut, "fasta", false, "Print FASTA records instead of a card")
	c.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a card")
	return c
}

func fastaID(name1, name2 string, s seq_encoder.Strategy) string {
	return fmt.Sprintf("love_fold|%s|%s_%s", s, name_normalizer.Normalize(name1), name_normalizer.Normalize(name2))
}

func writeJSON(w io.Writer, results []seq_encoder.Result, list bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if list {
		return enc.Encode(results)
	}
	return enc.Encode(results[0])
}
