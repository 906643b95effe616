package fold

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"love_fold_go/seq_encoder"
	"love_fold_go/structure_stats"
)

type fakeFolder struct {
	pdb  string
	err  error
	seqs []string
}

func (f *fakeFolder) Fold(ctx context.Context, sequence string) (string, error) {
	f.seqs = append(f.seqs, sequence)
	return f.pdb, f.err
}

func fixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "pdb_parser", "testdata", "small.pdb"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	return string(b)
}

func TestRun(t *testing.T) {
	folder := &fakeFolder{pdb: fixture(t)}
	res, err := Run(context.Background(), folder, Request{Name1: "Alice", Name2: "Bob", Strategy: seq_encoder.Anchor})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(folder.seqs) != 1 || folder.seqs[0] != "ALICEWPHWPNQN" {
		t.Fatalf("folder received %v", folder.seqs)
	}
	if res.ID == uuid.Nil {
		t.Fatalf("result has no id")
	}
	if res.Encoding.Sequence != "ALICEWPHWPNQN" || res.Sequence != "ALICEWPHWPNQN" {
		t.Fatalf("unexpected sequences: %+v", res.Encoding)
	}
	if res.Stats.ResidueCount != 3 || res.Stats.AverageConfidence != 71.0 {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
	if res.Stats.Tier != structure_stats.TierHigh {
		t.Fatalf("tier = %s, want High", res.Stats.Tier)
	}
	if len(res.Profile) != 3 || res.DisorderedFraction != 0 {
		t.Fatalf("unexpected profile: %+v", res.Profile)
	}
	if res.Narrative == "" {
		t.Fatalf("missing narrative")
	}
	if res.PDB != folder.pdb {
		t.Fatalf("pdb text not carried through")
	}
}

func TestRunNarrativeSeededByEncodedSequence(t *testing.T) {
	pdb := fixture(t)
	res, err := Run(context.Background(), &fakeFolder{pdb: pdb}, Request{Name1: "Alice", Name2: "Bob", Strategy: seq_encoder.Anchor})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := Analyze(pdb, "ALICEWPHWPNQN").Narrative; res.Narrative != want {
		t.Fatalf("narrative %q, want %q", res.Narrative, want)
	}
}

func TestRunLengthError(t *testing.T) {
	long := make([]byte, 399)
	for i := range long {
		long[i] = 'A'
	}
	folder := &fakeFolder{pdb: fixture(t)}
	_, err := Run(context.Background(), folder, Request{Name1: string(long), Name2: "Bob", Strategy: seq_encoder.Anchor})

	var lerr *seq_encoder.LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LengthError, got %v", err)
	}
	if lerr.Actual != 407 {
		t.Fatalf("actual = %d, want 407", lerr.Actual)
	}
	if len(folder.seqs) != 0 {
		t.Fatalf("predictor must not be called for an oversize sequence")
	}
}

func TestRunFolderError(t *testing.T) {
	boom := errors.New("service unavailable")
	_, err := Run(context.Background(), &fakeFolder{err: boom}, Request{Name1: "Alice", Name2: "Bob"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped folder error, got %v", err)
	}
}

func TestRunEmptyStructure(t *testing.T) {
	_, err := Run(context.Background(), &fakeFolder{pdb: "REMARK nothing here\nEND\n"}, Request{Name1: "Alice", Name2: "Bob"})
	if !errors.Is(err, ErrEmptyStructure) {
		t.Fatalf("expected ErrEmptyStructure, got %v", err)
	}
}

func TestAnalyzeFallsBackToStructureSequence(t *testing.T) {
	a := Analyze(fixture(t), "")
	if a.Sequence != "ALG" {
		t.Fatalf("sequence = %q, want ALG", a.Sequence)
	}
	if a.Stats.AtomCount != 9 {
		t.Fatalf("atom count = %d, want 9", a.Stats.AtomCount)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := Analyze("", "")
	if a.Stats.Tier != structure_stats.TierLow || a.Stats.ResidueCount != 0 {
		t.Fatalf("unexpected stats for empty input: %+v", a.Stats)
	}
	if a.Narrative == "" {
		t.Fatalf("empty input still gets a narrative")
	}
}

func TestResultJSON(t *testing.T) {
	res, err := Run(context.Background(), &fakeFolder{pdb: fixture(t)}, Request{Name1: "Alice", Name2: "Bob", Strategy: seq_encoder.Cysteine})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "encoding", "pdb", "stats", "profile", "narrative", "elapsed_ns"} {
		if _, ok := out[key]; !ok {
			t.Errorf("missing key %q in %s", key, b)
		}
	}
	enc := out["encoding"].(map[string]any)
	if enc["strategy"] != "cysteine" {
		t.Fatalf("strategy serialized as %v", enc["strategy"])
	}
}
