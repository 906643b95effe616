package seq_encoder

import (
	"errors"
	"strings"
	"testing"
)

func TestLetterTableTotal(t *testing.T) {
	for c := byte('A'); c <= 'Z'; c++ {
		aa, ok := AminoAcidFor(c)
		if !ok {
			t.Fatalf("no entry for %q", c)
		}
		if !strings.ContainsRune(AminoAcids, rune(aa)) {
			t.Fatalf("%q maps to non-canonical %q", c, aa)
		}
		if strings.IndexByte(AminoAcids, c) >= 0 && aa != c {
			t.Errorf("canonical letter %q should map to itself, got %q", c, aa)
		}
	}
	if _, ok := AminoAcidFor('a'); ok {
		t.Fatalf("lowercase letters should not be in the table")
	}
}

func TestAmbiguousLetters(t *testing.T) {
	cases := map[byte]byte{'B': 'N', 'J': 'L', 'O': 'Q', 'U': 'C', 'X': 'A', 'Z': 'E'}
	for in, want := range cases {
		if got, _ := AminoAcidFor(in); got != want {
			t.Errorf("AminoAcidFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeStrategies(t *testing.T) {
	cases := []struct {
		strategy Strategy
		want     string
	}{
		{Flexible, "ALICEGGSGGSNQN"},
		{Anchor, "ALICEWPHWPNQN"},
		{Cysteine, "CALICEGGSGGSNQNC"},
	}
	for _, c := range cases {
		res, err := Encode("Alice", "Bob", c.strategy)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.strategy, err)
		}
		if res.Sequence != c.want {
			t.Errorf("%s: got %q, want %q", c.strategy, res.Sequence, c.want)
		}
		if res.Encoded1 != "ALICE" || res.Encoded2 != "NQN" {
			t.Errorf("%s: unexpected segments %q / %q", c.strategy, res.Encoded1, res.Encoded2)
		}
		if res.Motif != c.strategy.Linker().Motif {
			t.Errorf("%s: motif %q", c.strategy, res.Motif)
		}
	}
}

func TestEncodeLengthFormula(t *testing.T) {
	pairs := [][2]string{{"Alice", "Bob"}, {"José", "Мария"}, {"", "Xavier"}, {"Ω", ""}}
	for _, s := range Strategies {
		for _, p := range pairs {
			res, err := Encode(p[0], p[1], s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := len(res.Encoded1) + len(res.Motif) + len(res.Encoded2)
			if s == Cysteine {
				want += 2
			}
			if len(res.Sequence) != want {
				t.Errorf("%s %v: length %d, want %d", s, p, len(res.Sequence), want)
			}
			if err := Validate(res.Sequence); err != nil {
				t.Errorf("%s %v: composed sequence invalid: %v", s, p, err)
			}
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	for _, s := range Strategies {
		a, errA := Encode("Romeo", "Juliet", s)
		b, errB := Encode("Romeo", "Juliet", s)
		if errA != nil || errB != nil {
			t.Fatalf("unexpected errors: %v %v", errA, errB)
		}
		if a != b {
			t.Fatalf("%s: results differ: %+v vs %+v", s, a, b)
		}
	}
}

func TestEncodeFiller(t *testing.T) {
	res, err := Encode("", "Bob", Anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Encoded1 != Filler || res.Sequence != "GSGWPHWPNQN" {
		t.Fatalf("unexpected result: %+v", res)
	}

	res, err = Encode("Alice", "", Anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Encoded2 != Filler || res.Sequence != "ALICEWPHWPGSG" {
		t.Fatalf("unexpected result: %+v", res)
	}

	res, _ = Encode("123", "!!!", Flexible)
	if res.Encoded1 != Filler || res.Encoded2 != Filler {
		t.Fatalf("non-alphabetic names should use filler: %+v", res)
	}
}

func TestEncodeLengthError(t *testing.T) {
	_, err := Encode(strings.Repeat("A", 200), strings.Repeat("B", 200), Anchor)
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LengthError, got %v", err)
	}
	if lerr.Actual != 405 || lerr.Max != MaxSequenceLength {
		t.Fatalf("unexpected error values: %+v", lerr)
	}
	if !strings.Contains(err.Error(), "400") {
		t.Fatalf("message should name the limit: %q", err.Error())
	}

	res, err := Encode(strings.Repeat("A", 195), strings.Repeat("B", 200), Anchor)
	if err != nil || len(res.Sequence) != MaxSequenceLength {
		t.Fatalf("exact limit should pass: len=%d err=%v", len(res.Sequence), err)
	}

	_, err = Encode(strings.Repeat("A", 196), strings.Repeat("B", 197), Cysteine)
	if !errors.As(err, &lerr) || lerr.Actual != 401 {
		t.Fatalf("expected LengthError of 401, got %v", err)
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"", Anchor, false},
		{"flexible", Flexible, false},
		{" Anchor ", Anchor, false},
		{"CYSTEINE", Cysteine, false},
		{"loose", 0, true},
	}
	for _, c := range cases {
		got, err := ParseStrategy(c.input)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseStrategy(%q) err = %v", c.input, err)
			continue
		}
		if !c.wantErr && got != c.want {
			t.Errorf("ParseStrategy(%q) = %s, want %s", c.input, got, c.want)
		}
	}
	for _, s := range Strategies {
		back, err := ParseStrategy(s.String())
		if err != nil || back != s {
			t.Errorf("round trip of %s gave %s, %v", s, back, err)
		}
	}
}

func TestLinkerMotifs(t *testing.T) {
	want := map[Strategy]string{Flexible: "GGSGGS", Anchor: "WPHWP", Cysteine: "GGSGGS"}
	for s, motif := range want {
		if got := s.Linker().Motif; got != motif {
			t.Errorf("%s motif = %q, want %q", s, got, motif)
		}
	}
}
