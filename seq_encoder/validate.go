package seq_encoder

import "strings"

// Validate checks a sequence before it is sent to the predictor: it must be
// non-empty, at most MaxSequenceLength long, and use only the 20 canonical
// one-letter codes.
func Validate(seq string) error {
	if len(seq) == 0 {
		return &EmptySequenceError{}
	}
	if len(seq) > MaxSequenceLength {
		return &LengthError{Actual: len(seq), Max: MaxSequenceLength}
	}
	for i, r := range seq {
		if !strings.ContainsRune(AminoAcids, r) {
			return &InvalidResidueError{Residue: r, Position: i + 1}
		}
	}
	return nil
}
