package pdb_parser

import "strings"

var aminoMap = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',

	// modified residues predictors sometimes emit
	"MSE": 'M', "SEC": 'C', "PYL": 'K',
}

// Sequence rebuilds the one-letter sequence from the CA atoms of records.
// Unknown residue names become 'X'. Used when a structure file arrives
// without the sequence that produced it.
func Sequence(records []AtomRecord) string {
	var b strings.Builder
	for _, rec := range records {
		if rec.Name != "CA" {
			continue
		}
		if aa, ok := aminoMap[rec.ResName]; ok {
			b.WriteByte(aa)
		} else {
			b.WriteByte('X')
		}
	}
	return b.String()
}
