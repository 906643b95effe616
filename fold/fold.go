// Package fold runs the full Love Fold pipeline: two names are encoded into a
// sequence, folded by a predictor, and the returned structure is analysed and
// described.
package fold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"love_fold_go/logger"
	"love_fold_go/narrative"
	"love_fold_go/pdb_parser"
	"love_fold_go/seq_encoder"
	"love_fold_go/structure_stats"
)

// ErrEmptyStructure is returned when predicted PDB text holds no usable ATOM records.
var ErrEmptyStructure = errors.New("structure contains no ATOM records")

// Folder turns a sequence into PDB text.
type Folder interface {
	Fold(ctx context.Context, sequence string) (string, error)
}

type Request struct {
	Name1    string               `json:"name1"`
	Name2    string               `json:"name2"`
	Strategy seq_encoder.Strategy `json:"strategy"`
}

// Analysis is everything derived from a structure and its sequence.
type Analysis struct {
	Sequence           string                              `json:"sequence"`
	Stats              structure_stats.ProteinStats        `json:"stats"`
	Profile            []structure_stats.ResidueConfidence `json:"profile"`
	DisorderedFraction float64                             `json:"disordered_fraction"`
	DisorderedRegions  []structure_stats.Region            `json:"disordered_regions"`
	Narrative          string                              `json:"narrative"`
}

type Result struct {
	ID       uuid.UUID          `json:"id"`
	Encoding seq_encoder.Result `json:"encoding"`
	PDB      string             `json:"pdb"`
	Analysis
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Analyze parses pdbText and describes it. An empty sequence falls back to
// the one read from the CA residue names, which seeds the narrative.
func Analyze(pdbText, sequence string) Analysis {
	return AnalyzeRecords(pdb_parser.Parse(pdbText), sequence)
}

// AnalyzeRecords is Analyze for records that are already parsed.
func AnalyzeRecords(records []pdb_parser.AtomRecord, sequence string) Analysis {
	if sequence == "" {
		sequence = pdb_parser.Sequence(records)
	}
	stats := structure_stats.Analyze(records)
	profile := structure_stats.Profile(records)
	return Analysis{
		Sequence:           sequence,
		Stats:              stats,
		Profile:            profile,
		DisorderedFraction: structure_stats.DisorderedFraction(profile),
		DisorderedRegions:  structure_stats.DisorderedRegions(profile),
		Narrative:          narrative.Describe(stats, sequence),
	}
}

// Run encodes the two names, submits the sequence to folder and analyses the
// structure that comes back. Encoding errors are returned unwrapped so
// callers can match *seq_encoder.LengthError directly.
func Run(ctx context.Context, folder Folder, req Request) (Result, error) {
	start := time.Now()
	id := uuid.New()
	log := logger.L().With("id", id.String())

	enc, err := seq_encoder.Encode(req.Name1, req.Name2, req.Strategy)
	if err != nil {
		return Result{}, err
	}
	log.Info("fold.encoded", "strategy", enc.Strategy.String(), "length", len(enc.Sequence))

	pdb, err := folder.Fold(ctx, enc.Sequence)
	if err != nil {
		return Result{}, fmt.Errorf("folding %s: %w", enc.Sequence, err)
	}

	records := pdb_parser.Parse(pdb)
	if len(records) == 0 {
		return Result{}, ErrEmptyStructure
	}
	analysis := AnalyzeRecords(records, enc.Sequence)

	res := Result{
		ID:       id,
		Encoding: enc,
		PDB:      pdb,
		Analysis: analysis,
		Elapsed:  time.Since(start),
	}
	log.Info("fold.completed",
		"residues", analysis.Stats.ResidueCount,
		"confidence", analysis.Stats.AverageConfidence,
		"tier", string(analysis.Stats.Tier),
		"elapsed", res.Elapsed)
	return res, nil
}
