// Package seq_encoder turns two normalized names into a single amino-acid
// sequence joined by a linker motif.
package seq_encoder

import (
	"strings"

	"love_fold_go/name_normalizer"
)

const (
	MaxSequenceLength = 400   // predictor input cap
	Filler            = "GSG" // stands in for a name with no usable letters
)

// 20 standard amino acids
const AminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// letterToAminoAcid is indexed by letter-'A'. The six letters that are not
// amino-acid codes map to a chemically similar residue.
var letterToAminoAcid = [26]byte{
	'A', // A
	'N', // B  Asx -> Asn
	'C', // C
	'D', // D
	'E', // E
	'F', // F
	'G', // G
	'H', // H
	'I', // I
	'L', // J  Xle -> Leu
	'K', // K
	'L', // L
	'M', // M
	'N', // N
	'Q', // O  Pyl -> Gln
	'P', // P
	'Q', // Q
	'R', // R
	'S', // S
	'T', // T
	'C', // U  Sec -> Cys
	'V', // V
	'W', // W
	'A', // X  any -> Ala
	'Y', // Y
	'E', // Z  Glx -> Glu
}

// Result is a composed sequence together with the pieces it was built from.
type Result struct {
	Sequence string   `json:"sequence"`
	Encoded1 string   `json:"encoded1"`
	Encoded2 string   `json:"encoded2"`
	Motif    string   `json:"motif"`
	Strategy Strategy `json:"strategy"`
}

// AminoAcidFor returns the residue for an uppercase letter A-Z.
func AminoAcidFor(letter byte) (byte, bool) {
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}
	return letterToAminoAcid[letter-'A'], true
}

// EncodeLetters maps a normalized name letter by letter. Bytes outside A-Z
// are skipped, which cannot happen for Normalize output.
func EncodeLetters(normalized string) string {
	var b strings.Builder
	b.Grow(len(normalized))
	for i := 0; i < len(normalized); i++ {
		if aa, ok := AminoAcidFor(normalized[i]); ok {
			b.WriteByte(aa)
		}
	}
	return b.String()
}

// encodeName normalizes and encodes one name, substituting Filler when
// nothing survives normalization.
func encodeName(name string) string {
	encoded := EncodeLetters(name_normalizer.Normalize(name))
	if encoded == "" {
		return Filler
	}
	return encoded
}

// Encode composes name1 and name2 around the linker of strategy. The result
// is a pure function of its arguments. A composed sequence longer than
// MaxSequenceLength yields a *LengthError and no sequence.
func Encode(name1, name2 string, strategy Strategy) (Result, error) {
	enc1 := encodeName(name1)
	enc2 := encodeName(name2)
	motif := strategy.Linker().Motif

	var seq string
	switch strategy {
	case Cysteine:
		seq = "C" + enc1 + motif + enc2 + "C"
	default:
		seq = enc1 + motif + enc2
	}

	if len(seq) > MaxSequenceLength {
		return Result{}, &LengthError{Actual: len(seq), Max: MaxSequenceLength}
	}

	return Result{
		Sequence: seq,
		Encoded1: enc1,
		Encoded2: enc2,
		Motif:    motif,
		Strategy: strategy,
	}, nil
}
