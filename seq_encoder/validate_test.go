package seq_encoder

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate("ALICEWPHWPNQN"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var empty *EmptySequenceError
	if err := Validate(""); !errors.As(err, &empty) {
		t.Fatalf("expected EmptySequenceError, got %v", err)
	}

	var lerr *LengthError
	if err := Validate(strings.Repeat("G", 401)); !errors.As(err, &lerr) || lerr.Actual != 401 {
		t.Fatalf("expected LengthError, got %v", err)
	}

	var ierr *InvalidResidueError
	if err := Validate("ACDBX"); !errors.As(err, &ierr) {
		t.Fatalf("expected InvalidResidueError, got %v", err)
	}
	if ierr.Residue != 'B' || ierr.Position != 4 {
		t.Fatalf("unexpected residue error: %+v", ierr)
	}
}

func TestComposition(t *testing.T) {
	comp := Composition("CAKDC")
	if comp.Length != 5 {
		t.Fatalf("length = %d", comp.Length)
	}
	if comp.Cysteines != 2 {
		t.Fatalf("cysteines = %d", comp.Cysteines)
	}
	if comp.NetCharge != 0 {
		t.Fatalf("net charge = %d", comp.NetCharge)
	}
	if math.Abs(comp.HydrophobicFraction-0.2) > 1e-9 {
		t.Fatalf("hydrophobic fraction = %f", comp.HydrophobicFraction)
	}
	want := 121.16*2 + 89.09 + 146.19 + 133.10 - 4*waterMass
	if math.Abs(comp.MolecularWeight-want) > 1e-6 {
		t.Fatalf("molecular weight = %f, want %f", comp.MolecularWeight, want)
	}

	if got := Composition(""); got != (SequenceComposition{}) {
		t.Fatalf("empty composition = %+v", got)
	}
}
