package seq_encoder

// Free amino-acid masses in Daltons
var aaWeights = map[rune]float64{
	'A': 89.09, 'C': 121.16, 'D': 133.10, 'E': 147.13,
	'F': 165.19, 'G': 75.07, 'H': 155.16, 'I': 131.17,
	'K': 146.19, 'L': 131.17, 'M': 149.21, 'N': 132.12,
	'P': 115.13, 'Q': 146.15, 'R': 174.20, 'S': 105.09,
	'T': 119.12, 'V': 117.15, 'W': 204.23, 'Y': 181.19,
}

const waterMass = 18.015 // lost per peptide bond

var hydrophobic = map[rune]bool{'A': true, 'V': true, 'I': true, 'L': true, 'M': true, 'F': true, 'Y': true, 'W': true}
var positiveCharged = map[rune]bool{'R': true, 'H': true, 'K': true}
var negativeCharged = map[rune]bool{'D': true, 'E': true}

// SequenceComposition summarizes residue makeup for display.
type SequenceComposition struct {
	Length              int     `json:"length"`
	MolecularWeight     float64 `json:"molecular_weight_da"`
	HydrophobicFraction float64 `json:"hydrophobic_fraction"`
	NetCharge           int     `json:"net_charge"`
	Cysteines           int     `json:"cysteines"`
}

// Composition computes residue statistics for seq. Unknown letters count
// toward the length only.
func Composition(seq string) SequenceComposition {
	var comp SequenceComposition
	var hydro int
	for _, r := range seq {
		comp.Length++
		comp.MolecularWeight += aaWeights[r]
		if hydrophobic[r] {
			hydro++
		}
		if positiveCharged[r] {
			comp.NetCharge++
		}
		if negativeCharged[r] {
			comp.NetCharge--
		}
		if r == 'C' {
			comp.Cysteines++
		}
	}
	if comp.Length == 0 {
		return comp
	}
	comp.MolecularWeight -= waterMass * float64(comp.Length-1)
	comp.HydrophobicFraction = float64(hydro) / float64(comp.Length)
	return comp
}
