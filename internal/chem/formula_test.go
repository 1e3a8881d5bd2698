package chem

import (
	"math"
	"testing"
)

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-5
}

func Test_Parse(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name     string
		args     args
		wantMass float64
		wantErr  bool
	}{
		{
			"water",
			args{"H2O"},
			18.01056,
			false,
		},
		{
			"carbamidomethyl",
			args{"C2H3NO"},
			57.02146,
			false,
		},
		{
			"phospho",
			args{"HO3P"},
			79.96633,
			false,
		},
		{
			"heavy carbon",
			args{"C{13}"},
			13.00335,
			false,
		},
		{
			"negative counts cancel",
			args{"C2C-2"},
			0.0,
			false,
		},
		{
			"isotope swap difference",
			args{"C-1C{13}"},
			1.00336,
			false,
		},
		{
			"two letter element",
			args{"Se"},
			79.91652,
			false,
		},
		{
			"empty",
			args{""},
			0,
			true,
		},
		{
			"unknown element",
			args{"Xx2"},
			0,
			true,
		},
		{
			"unknown isotope",
			args{"C{99}"},
			0,
			true,
		},
		{
			"unclosed isotope brace",
			args{"C{13"},
			0,
			true,
		},
		{
			"bare number is not a formula",
			args{"15.995"},
			0,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !closeEnough(got.Monoisotopic(), tt.wantMass) {
				t.Errorf("Parse() mass = %v, want %v", got.Monoisotopic(), tt.wantMass)
			}
			if IsValid(tt.args.text) != true {
				t.Errorf("IsValid() = false for parseable %q", tt.args.text)
			}
		})
	}
}

func Test_Formula_Add(t *testing.T) {
	glycine := MustParse("C2H3NO")
	water := MustParse("H2O")

	got := glycine.Add(water)
	want := MustParse("C2H5NO2")
	if !got.Equal(want) {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if !closeEnough(got.Monoisotopic(), glycine.Monoisotopic()+water.Monoisotopic()) {
		t.Errorf("Add() mass = %v, want sum of parts", got.Monoisotopic())
	}

	// addition is commutative
	if !water.Add(glycine).Equal(got) {
		t.Error("Add() is not commutative")
	}
}

func Test_Formula_Equal(t *testing.T) {
	type args struct {
		a string
		b string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			"order does not matter",
			args{"C2H3NO", "NH3OC2"},
			true,
		},
		{
			"isotopes are distinct atoms",
			args{"C2", "C{12}2"},
			false,
		},
		{
			"zero counts are dropped",
			args{"C2H3NOS0", "C2H3NO"},
			true,
		},
		{
			"different counts",
			args{"C2H3NO", "C2H4NO"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.args.a), MustParse(tt.args.b)
			if got := a.Equal(b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Formula_String(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"hill order, carbon then hydrogen then alphabetical",
			args{"O22C39N13H69"},
			"C39H69N13O22",
		},
		{
			"count of one is omitted",
			args{"C2H3N1O1"},
			"C2H3NO",
		},
		{
			"isotopes after the principal atom",
			args{"C{13}6C-6N-2N{15}2"},
			"C-6C{13}6N-2N{15}2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := MustParse(tt.args.text)
			if got := f.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
			// rendering re-parses to an equal composition
			back := MustParse(f.String())
			if !back.Equal(f) {
				t.Errorf("String() round trip broke: %v != %v", back, f)
			}
		})
	}
}

// equal compositions must carry the exact same mass no matter how they
// were assembled, so that downstream exact-float comparisons hold
func Test_Formula_mass_determinism(t *testing.T) {
	type args struct {
		a string
		b string
	}
	tests := []struct {
		name string
		args args
	}{
		{"term order", args{"C2H3NO", "NH3OC2"}},
		{"isotope swap difference", args{"C-6C{13}6N-2N{15}2", "N{15}2N-2C{13}6C-6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.args.a), MustParse(tt.args.b)
			if a.Monoisotopic() != b.Monoisotopic() {
				t.Errorf("masses differ: %v vs %v", a.Monoisotopic(), b.Monoisotopic())
			}
			if sum := MustParse(tt.args.a).Add(Formula{}); sum.Monoisotopic() != a.Monoisotopic() {
				t.Errorf("Add(empty) changed the mass: %v vs %v", sum.Monoisotopic(), a.Monoisotopic())
			}
			if c, err := FromCounts(a.Counts()); err != nil || c.Monoisotopic() != a.Monoisotopic() {
				t.Errorf("FromCounts(Counts()) mass = %v, %v, want %v", c.Monoisotopic(), err, a.Monoisotopic())
			}
		})
	}
}

func Test_FromCounts(t *testing.T) {
	f, err := FromCounts(map[string]int{"C": -6, "C{13}": 6})
	if err != nil {
		t.Fatal(err)
	}
	if !closeEnough(f.Monoisotopic(), 6*(13.0033548378-12.0)) {
		t.Errorf("FromCounts() mass = %v", f.Monoisotopic())
	}

	if _, err := FromCounts(map[string]int{"Zz": 1}); err == nil {
		t.Error("FromCounts() accepted an unknown element")
	}
}
