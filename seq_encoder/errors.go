package seq_encoder

import "fmt"

// LengthError reports a sequence longer than the predictor accepts.
type LengthError struct {
	Actual int
	Max    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("sequence is %d residues long, the maximum is %d; try shorter names or another linker strategy",
		e.Actual, e.Max)
}

// EmptySequenceError is returned by Validate for a zero-length sequence.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence is empty"
}

// InvalidResidueError reports a letter outside the 20 canonical amino acids.
type InvalidResidueError struct {
	Residue  rune
	Position int // 1-based
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid residue %q at position %d", e.Residue, e.Position)
}
