// Package render formats encodings and structure analyses as terminal cards.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"love_fold_go/fold"
	"love_fold_go/seq_encoder"
	"love_fold_go/structure_stats"
	"love_fold_go/utils"
)

const sequenceWidth = 60

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Quote    lipgloss.Style
	Card     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Label:    lipgloss.NewStyle().Bold(true).Width(18),
		Quote:    lipgloss.NewStyle().Italic(true).Width(sequenceWidth),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

// tierColor follows the usual pLDDT palette: blue, cyan, yellow, orange.
func tierColor(t structure_stats.Tier) lipgloss.Color {
	switch t {
	case structure_stats.TierVeryHigh:
		return lipgloss.Color("27")
	case structure_stats.TierHigh:
		return lipgloss.Color("39")
	case structure_stats.TierMedium:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("208")
	}
}

func (th Theme) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, th.Label.Render(label), value)
}

// Encoding renders a composed sequence with its parts and composition.
func (th Theme) Encoding(res seq_encoder.Result) string {
	linker := res.Strategy.Linker()
	comp := seq_encoder.Composition(res.Sequence)

	lines := []string{
		th.Title.Render("Love Sequence"),
		th.Subtitle.Render(linker.Label + " linker: " + linker.Description),
		"",
		th.row("Name 1", res.Encoded1),
		th.row("Linker", res.Motif),
		th.row("Name 2", res.Encoded2),
		th.row("Length", fmt.Sprintf("%d / %d", len(res.Sequence), seq_encoder.MaxSequenceLength)),
		th.row("Weight", fmt.Sprintf("%.1f Da", comp.MolecularWeight)),
		th.row("Hydrophobic", fmt.Sprintf("%.0f%%", comp.HydrophobicFraction*100)),
		th.row("Net charge", fmt.Sprintf("%+d", comp.NetCharge)),
		"",
		strings.TrimRight(utils.WrapSequence(res.Sequence, sequenceWidth), "\n"),
	}
	return th.Card.Render(strings.Join(lines, "\n"))
}

// Analysis renders the statistics card for one structure.
func (th Theme) Analysis(title string, a fold.Analysis) string {
	s := a.Stats
	tier := lipgloss.NewStyle().Bold(true).Foreground(tierColor(s.Tier)).Render(string(s.Tier))

	lines := []string{th.Title.Render(title)}
	if a.Sequence != "" {
		lines = append(lines, th.Subtitle.Render(fmt.Sprintf("%d residue sequence", len(a.Sequence))))
	}
	lines = append(lines,
		"",
		th.row("Residues", fmt.Sprintf("%d", s.ResidueCount)),
		th.row("Atoms", fmt.Sprintf("%d (%d backbone)", s.AtomCount, s.BackboneCount)),
		th.row("Confidence", fmt.Sprintf("%.1f ", s.AverageConfidence)+tier),
		th.row("Size", fmt.Sprintf("%.1f x %.1f x %.1f Å", s.Dimensions.X, s.Dimensions.Y, s.Dimensions.Z)),
		th.row("Mass", fmt.Sprintf("%.1f kDa", s.MassKDa)),
		th.row("Disordered", fmt.Sprintf("%.0f%%", a.DisorderedFraction*100)),
	)
	if len(a.DisorderedRegions) > 0 {
		spans := make([]string, 0, len(a.DisorderedRegions))
		for _, r := range a.DisorderedRegions {
			if r.Start == r.End {
				spans = append(spans, fmt.Sprintf("%d", r.Start))
			} else {
				spans = append(spans, fmt.Sprintf("%d-%d", r.Start, r.End))
			}
		}
		lines = append(lines, th.row("Regions", strings.Join(spans, ", ")))
	}
	if a.Narrative != "" {
		lines = append(lines, "", th.Quote.Render(a.Narrative))
	}
	return th.Card.Render(strings.Join(lines, "\n"))
}

// Linkers renders every strategy with its motif.
func (th Theme) Linkers() string {
	lines := []string{th.Title.Render("Linker Strategies"), ""}
	for _, s := range seq_encoder.Strategies {
		l := s.Linker()
		name := s.String()
		if s == seq_encoder.DefaultStrategy {
			name += " (default)"
		}
		lines = append(lines,
			th.row(name, l.Motif),
			th.Subtitle.Render("  "+l.Description),
		)
	}
	return th.Card.Render(strings.Join(lines, "\n"))
}
