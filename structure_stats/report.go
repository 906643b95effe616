package structure_stats

import (
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"os"
	"strconv"
)

// Report bundles everything the CSV and HTML writers render.
type Report struct {
	Title     string
	Sequence  string
	Narrative string
	Stats     ProteinStats
	Profile   []ResidueConfidence
}

// WriteCSV writes a header row and one row of summary statistics.
func WriteCSV(w io.Writer, r Report) error {
	writer := csv.NewWriter(w)

	headers := []string{
		"Title", "Sequence", "ResidueCount", "AtomCount", "BackboneCount",
		"AverageConfidence", "ConfidenceTier", "DimX", "DimY", "DimZ",
		"MassKDa", "AspectRatio", "DisorderedPercent", "Narrative",
	}
	values := []string{
		r.Title,
		r.Sequence,
		strconv.Itoa(r.Stats.ResidueCount),
		strconv.Itoa(r.Stats.AtomCount),
		strconv.Itoa(r.Stats.BackboneCount),
		fmt.Sprintf("%.1f", r.Stats.AverageConfidence),
		string(r.Stats.Tier),
		fmt.Sprintf("%.1f", r.Stats.Dimensions.X),
		fmt.Sprintf("%.1f", r.Stats.Dimensions.Y),
		fmt.Sprintf("%.1f", r.Stats.Dimensions.Z),
		fmt.Sprintf("%.1f", r.Stats.MassKDa),
		fmt.Sprintf("%.2f", r.Stats.AspectRatio()),
		fmt.Sprintf("%.1f", DisorderedFraction(r.Profile)*100),
		r.Narrative,
	}

	if err := writer.Write(headers); err != nil {
		return err
	}
	if err := writer.Write(values); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// WritePerResidueCSV writes one row per profile entry.
func WritePerResidueCSV(w io.Writer, profile []ResidueConfidence) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Position", "ResSeq", "Confidence", "Disordered"}); err != nil {
		return err
	}
	for i, p := range profile {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(p.ResSeq),
			fmt.Sprintf("%.2f", p.Confidence),
			strconv.FormatBool(p.Confidence < DisorderThreshold),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteHTML renders a standalone HTML page with the summary table and the
// confidence plot.
func WriteHTML(w io.Writer, r Report) error {
	svg, err := ConfidencePlotSVG(r.Profile)
	if err != nil {
		svg = "<p>Graph unavailable</p>"
	}
	histogram, err := ConfidenceHistogramSVG(r.Profile)
	if err != nil {
		histogram = "<p>Graph unavailable</p>"
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<title>%s</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		.narrative { font-style: italic; margin: 16px 0; }
		.sequence { font-family: monospace; word-break: break-all; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<h1>%s</h1>
	<p class="narrative">%s</p>
	<p class="sequence">%s</p>
	<table>
		<tr><th>Metric</th><th>Value</th></tr>
		<tr><td>Residues</td><td>%d</td></tr>
		<tr><td>Atoms</td><td>%d</td></tr>
		<tr><td>Backbone (CA) Atoms</td><td>%d</td></tr>
		<tr><td>Mean Confidence</td><td>%.1f</td></tr>
		<tr><td>Confidence Tier</td><td>%s</td></tr>
		<tr><td>Dimensions (Å)</td><td>%.1f × %.1f × %.1f</td></tr>
		<tr><td>Estimated Mass</td><td>%.1f kDa</td></tr>
		<tr><td>Disordered Residues</td><td>%.1f%%</td></tr>
	</table>
	<h2>Per-Residue Confidence</h2>
	<div>%s</div>
	<h2>Confidence Distribution</h2>
	<div>%s</div>
</body>
</html>
`,
		html.EscapeString(r.Title),
		html.EscapeString(r.Title),
		html.EscapeString(r.Narrative),
		html.EscapeString(r.Sequence),
		r.Stats.ResidueCount,
		r.Stats.AtomCount,
		r.Stats.BackboneCount,
		r.Stats.AverageConfidence,
		html.EscapeString(string(r.Stats.Tier)),
		r.Stats.Dimensions.X, r.Stats.Dimensions.Y, r.Stats.Dimensions.Z,
		r.Stats.MassKDa,
		DisorderedFraction(r.Profile)*100,
		svg,
		histogram,
	)

	_, err = io.WriteString(w, page)
	return err
}

// WriteReportFiles writes <prefix>.csv, <prefix>_per_residue.csv and/or
// <prefix>.html and returns the paths written.
func WriteReportFiles(prefix string, r Report, csvOut, htmlOut bool) ([]string, error) {
	var written []string
	write := func(path string, fn func(io.Writer) error) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	if csvOut {
		if err := write(prefix+".csv", func(w io.Writer) error { return WriteCSV(w, r) }); err != nil {
			return written, err
		}
		if err := write(prefix+"_per_residue.csv", func(w io.Writer) error { return WritePerResidueCSV(w, r.Profile) }); err != nil {
			return written, err
		}
	}
	if htmlOut {
		if err := write(prefix+".html", func(w io.Writer) error { return WriteHTML(w, r) }); err != nil {
			return written, err
		}
	}
	return written, nil
}
