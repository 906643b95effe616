package structure_stats

import "love_fold_go/pdb_parser"

// DisorderThreshold is the confidence below which a residue is treated as
// disordered.
const DisorderThreshold = 50.0

// ResidueConfidence is the backbone confidence of one residue.
type ResidueConfidence struct {
	ResSeq     int     `json:"res_seq"`
	Confidence float64 `json:"confidence"`
}

// Region is an inclusive 1-based span of profile positions.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Profile returns one entry per residue, taken from its CA atom, in chain
// order. Repeated CA records for the same residue keep the first; records
// without a residue number are skipped.
func Profile(records []pdb_parser.AtomRecord) []ResidueConfidence {
	var profile []ResidueConfidence
	lastRes, seen := 0, false
	for _, rec := range records {
		if rec.Name != BackboneAtom || !rec.HasResSeq {
			continue
		}
		if seen && rec.ResSeq == lastRes {
			continue
		}
		lastRes, seen = rec.ResSeq, true
		profile = append(profile, ResidueConfidence{ResSeq: rec.ResSeq, Confidence: rec.Confidence})
	}
	return profile
}

// DisorderedFraction is the share of profile entries under DisorderThreshold.
func DisorderedFraction(profile []ResidueConfidence) float64 {
	if len(profile) == 0 {
		return 0
	}
	n := 0
	for _, p := range profile {
		if p.Confidence < DisorderThreshold {
			n++
		}
	}
	return float64(n) / float64(len(profile))
}

// DisorderedRegions collapses runs of low-confidence residues into spans of
// profile positions.
func DisorderedRegions(profile []ResidueConfidence) []Region {
	var regions []Region
	start := 0
	for i, p := range profile {
		low := p.Confidence < DisorderThreshold
		if low && start == 0 {
			start = i + 1
		}
		if !low && start != 0 {
			regions = append(regions, Region{Start: start, End: i})
			start = 0
		}
	}
	if start != 0 {
		regions = append(regions, Region{Start: start, End: len(profile)})
	}
	return regions
}
