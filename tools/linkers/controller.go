package linkers

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"love_fold_go/render"
	"love_fold_go/seq_encoder"
)

type linker struct {
	Strategy    seq_encoder.Strategy `json:"strategy"`
	Motif       string               `json:"motif"`
	Label       string               `json:"label"`
	Description string               `json:"description"`
}

func Command() *cobra.Command {
	var jsonOut bool

	c := &cobra.Command{
		Use:   "linkers",
		Short: "List the linker strategies and their motifs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !jsonOut {
				fmt.Fprintln(out, render.DefaultTheme().Linkers())
				return nil
			}
			list := make([]linker, 0, len(seq_encoder.Strategies))
			for _, s := range seq_encoder.Strategies {
				l := s.Linker()
				list = append(list, linker{Strategy: s, Motif: l.Motif, Label: l.Label, Description: l.Description})
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		},
	}

	c.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a card")
	return c
}
