// Package structure_stats derives geometric and confidence statistics from
// parsed ATOM records.
package structure_stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"love_fold_go/pdb_parser"
)

const (
	AverageResidueMass = 110.0 // Daltons
	BackboneAtom       = "CA"
)

// Tier buckets the mean backbone confidence.
type Tier string

const (
	TierVeryHigh Tier = "Very High"
	TierHigh     Tier = "High"
	TierMedium   Tier = "Medium"
	TierLow      Tier = "Low"
)

// Vec3 is a point or an extent along x, y and z.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ProteinStats summarizes one predicted structure.
type ProteinStats struct {
	ResidueCount      int     `json:"residue_count"`
	AtomCount         int     `json:"atom_count"`
	BackboneCount     int     `json:"backbone_count"`
	AverageConfidence float64 `json:"average_confidence"`
	Tier              Tier    `json:"confidence_tier"`
	Dimensions        Vec3    `json:"dimensions"`
	Min               Vec3    `json:"bounding_box_min"`
	Max               Vec3    `json:"bounding_box_max"`
	MassKDa           float64 `json:"mass_kda"`
}

// TierFor classifies a mean confidence. Lower bounds are inclusive.
func TierFor(mean float64) Tier {
	switch {
	case mean >= 90:
		return TierVeryHigh
	case mean >= 70:
		return TierHigh
	case mean >= 50:
		return TierMedium
	default:
		return TierLow
	}
}

// Analyze computes ProteinStats for records. No records gives zero values
// and TierLow.
func Analyze(records []pdb_parser.AtomRecord) ProteinStats {
	if len(records) == 0 {
		return ProteinStats{Tier: TierLow}
	}

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	zs := make([]float64, len(records))
	var backbone []float64
	residues := make(map[int]struct{})
	unknownResidue := false

	for i, rec := range records {
		xs[i], ys[i], zs[i] = rec.X, rec.Y, rec.Z
		if rec.HasResSeq {
			residues[rec.ResSeq] = struct{}{}
		} else {
			unknownResidue = true // all unnumbered records share one bucket
		}
		if rec.Name == BackboneAtom {
			backbone = append(backbone, rec.Confidence)
		}
	}

	residueCount := len(residues)
	if unknownResidue {
		residueCount++
	}

	lo := Vec3{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)}
	hi := Vec3{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)}

	meanConf := 0.0
	if len(backbone) > 0 {
		meanConf = round1(stat.Mean(backbone, nil))
	}

	return ProteinStats{
		ResidueCount:      residueCount,
		AtomCount:         len(records),
		BackboneCount:     len(backbone),
		AverageConfidence: meanConf,
		Tier:              TierFor(meanConf),
		Dimensions: Vec3{
			X: round1(hi.X - lo.X),
			Y: round1(hi.Y - lo.Y),
			Z: round1(hi.Z - lo.Z),
		},
		Min:     lo,
		Max:     hi,
		MassKDa: round1(float64(residueCount) * AverageResidueMass / 1000),
	}
}

// AspectRatio is the longest extent over the shortest, with the shortest
// floored at 1 so flat or empty boxes stay finite.
func (s ProteinStats) AspectRatio() float64 {
	d := []float64{s.Dimensions.X, s.Dimensions.Y, s.Dimensions.Z}
	return floats.Max(d) / math.Max(floats.Min(d), 1)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
