package structure_stats

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"love_fold_go/pdb_parser"
)

func TestProfile(t *testing.T) {
	records := []pdb_parser.AtomRecord{
		ca(1, 80, 0, 0, 0),
		ca(1, 10, 0, 0, 0),
		{Name: "N", ResSeq: 2, HasResSeq: true, Confidence: 5},
		ca(2, 40, 0, 0, 0),
		{Name: "CA", Confidence: 99},
	}
	profile := Profile(records)
	want := []ResidueConfidence{{ResSeq: 1, Confidence: 80}, {ResSeq: 2, Confidence: 40}}
	if len(profile) != len(want) {
		t.Fatalf("profile length %d, want %d", len(profile), len(want))
	}
	for i := range want {
		if profile[i] != want[i] {
			t.Fatalf("position %d: got %+v, want %+v", i, profile[i], want[i])
		}
	}
}

func TestDisorder(t *testing.T) {
	scores := []float64{80, 40, 30, 90, 60, 49}
	profile := make([]ResidueConfidence, len(scores))
	for i, s := range scores {
		profile[i] = ResidueConfidence{ResSeq: i + 1, Confidence: s}
	}

	if got := DisorderedFraction(profile); got != 0.5 {
		t.Fatalf("DisorderedFraction = %f, want 0.5", got)
	}
	regions := DisorderedRegions(profile)
	want := []Region{{Start: 2, End: 3}, {Start: 6, End: 6}}
	if len(regions) != len(want) {
		t.Fatalf("regions = %+v, want %+v", regions, want)
	}
	for i := range want {
		if regions[i] != want[i] {
			t.Fatalf("region %d = %+v, want %+v", i, regions[i], want[i])
		}
	}

	if DisorderedFraction(nil) != 0 || DisorderedRegions(nil) != nil {
		t.Fatalf("empty profile should report no disorder")
	}
}

func fixtureReport(t *testing.T) Report {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "pdb_parser", "testdata", "small.pdb"))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	records := pdb_parser.Parse(string(data))
	return Report{
		Title:     "Alice & Bob",
		Sequence:  "ALG",
		Narrative: "A tiny <test> fold.",
		Stats:     Analyze(records),
		Profile:   Profile(records),
	}
}

func TestConfidencePlotSVG(t *testing.T) {
	svg, err := ConfidencePlotSVG(fixtureReport(t).Profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("output is not an SVG document")
	}
	if _, err := ConfidencePlotSVG(nil); err == nil {
		t.Fatalf("expected error for empty profile")
	}
}

func TestConfidenceHistogramSVG(t *testing.T) {
	svg, err := ConfidenceHistogramSVG(fixtureReport(t).Profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "Modelled Normal") {
		t.Fatalf("expected histogram with normal overlay")
	}

	flat := []ResidueConfidence{{ResSeq: 1, Confidence: 80}, {ResSeq: 2, Confidence: 80}}
	svg, err = ConfidenceHistogramSVG(flat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(svg, "Modelled Normal") {
		t.Fatalf("no normal curve expected for zero spread")
	}

	if _, err := ConfidenceHistogramSVG(nil); err == nil {
		t.Fatalf("expected error for empty profile")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, fixtureReport(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header and one row, got %d rows", len(rows))
	}
	if rows[0][2] != "ResidueCount" || rows[1][2] != "3" {
		t.Fatalf("unexpected residue column: %q = %q", rows[0][2], rows[1][2])
	}
	if rows[1][6] != "High" {
		t.Fatalf("unexpected tier column: %q", rows[1][6])
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, fixtureReport(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := buf.String()
	for _, want := range []string{"Alice &amp; Bob", "A tiny &lt;test&gt; fold.", "<svg", "71.0"} {
		if !strings.Contains(page, want) {
			t.Errorf("HTML report missing %q", want)
		}
	}
}

func TestWriteReportFiles(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "report")
	written, err := WriteReportFiles(prefix, fixtureReport(t), true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 files, got %v", written)
	}
	for _, path := range written {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Fatalf("%s missing or empty: %v", path, err)
		}
	}
}
