package name_normalizer

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"ALICE", "ALICE"},
		{"alice", "ALICE"},
		{"José", "JOSE"},
		{"Zoë Saldaña", "ZOESALDANA"},
		{"Ångström", "ANGSTROM"},
		{"Мария", "MARIYA"},
		{"Жанна", "ZHANNA"},
		{"Щука", "SHCHUKA"},
		{"Объект", "OBEKT"},
		{"Σωκράτης", "SOKRATIS"},
		{"Θεά", "THEA"},
		{"Ana-María O'Neil", "ANAMARIAONEIL"},
		{"Anna Ωmega", "ANNAOMEGA"},
		{"李小龙", ""},
		{"1234 !?", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.input); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestNormalizeAlphabet(t *testing.T) {
	inputs := []string{"Ærøskøbing", "Đorđe", "Łukasz", "Привет, мир", "Ελληνικά", "Straße"}
	for _, in := range inputs {
		for i, c := range []byte(Normalize(in)) {
			if c < 'A' || c > 'Z' {
				t.Fatalf("Normalize(%q) has %q at %d", in, c, i)
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"José", "Мария", "Σωκράτης", "ALICE"} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
