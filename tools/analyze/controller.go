package analyze

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"love_fold_go/config"
	"love_fold_go/fold"
	"love_fold_go/logger"
	"love_fold_go/pdb_parser"
	"love_fold_go/render"
	"love_fold_go/structure_stats"
	"love_fold_go/utils"
)

func Command(cfg *config.Config) *cobra.Command {
	var (
		sequence string
		outFile  string
		csvOut   bool
		htmlOut  bool
		jsonOut  bool
	)

	c := &cobra.Command{
		Use:   "analyze <structure.pdb>",
		Short: "Summarize a predicted structure (plain or gzipped PDB)",
		Example: `  love_fold analyze prediction.pdb
  love_fold analyze prediction.pdb.gz --sequence ALICEWPHWPNQN --csv_out --html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := utils.OpenMaybeGzip(path)
			if err != nil {
				return &config.OpError{Op: "analyze.open", Kind: config.KindNotFound, Path: path, Err: err}
			}
			defer f.Close()

			records, err := pdb_parser.ParseReader(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			a := fold.AnalyzeRecords(records, strings.ToUpper(sequence))
			logger.L().Info("analyze.completed", "path", path, "records", len(records),
				"residues", a.Stats.ResidueCount, "tier", string(a.Stats.Tier))

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(a); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, render.DefaultTheme().Analysis(filepath.Base(path), a))
			}

			if !csvOut && !htmlOut {
				return nil
			}
			prefix := outFile
			if prefix == "" {
				prefix = ReportPrefix(path)
			}
			written, err := structure_stats.WriteReportFiles(prefix, structure_stats.Report{
				Title:     filepath.Base(path),
				Sequence:  a.Sequence,
				Narrative: a.Narrative,
				Stats:     a.Stats,
				Profile:   a.Profile,
			}, csvOut, htmlOut)
			for _, p := range written {
				fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", p)
			}
			return err
		},
	}

	c.Flags().StringVar(&sequence, "sequence", "", "Sequence that seeds the narrative (default: read from the structure)")
	c.Flags().StringVar(&outFile, "out_file", "", "Prefix for report files (default: input name without extension)")
	c.Flags().BoolVar(&csvOut, "csv_out", false, "Write summary and per-residue CSV reports")
	c.Flags().BoolVar(&htmlOut, "html", false, "Write an HTML report with the confidence plot")
	c.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a card")
	return c
}

// ReportPrefix strips .gz and then .pdb or .ent from path.
func ReportPrefix(path string) string {
	p := strings.TrimSuffix(path, ".gz")
	for _, ext := range []string{".pdb", ".ent"} {
		if strings.HasSuffix(strings.ToLower(p), ext) {
			return p[:len(p)-len(ext)]
		}
	}
	return p
}
