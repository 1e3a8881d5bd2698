package proteomics

import (
	"errors"
	"testing"
)

func Test_ParseFragmentTypes(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name    string
		args    args
		want    FragmentType
		wantErr bool
	}{
		{
			"b and y",
			args{"b,y"},
			FragmentB | FragmentY,
			false,
		},
		{
			"spaces tolerated",
			args{" a , z "},
			FragmentA | FragmentZ,
			false,
		},
		{
			"all six",
			args{"a,b,c,x,y,z"},
			FragmentAll,
			false,
		},
		{
			"unknown series",
			args{"b,w"},
			FragmentNone,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFragmentTypes(tt.args.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFragmentTypes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFragmentTypes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Fragment_single(t *testing.T) {
	p, err := NewPolymer("DEREK")
	if err != nil {
		t.Fatal(err)
	}

	// b1 is the N-terminal group plus the first residue
	b1, err := p.Fragment(FragmentB, 1)
	if err != nil {
		t.Fatal(err)
	}
	aspartate, _ := GetAminoAcid('D')
	wantB1 := p.NTerminalGroup().Monoisotopic() + aspartate.Monoisotopic()
	if !closeEnough(b1.Monoisotopic(), wantB1) {
		t.Errorf("b1 mass = %v, want %v", b1.Monoisotopic(), wantB1)
	}
	if b1.String() != "b1" {
		t.Errorf("String() = %q, want b1", b1)
	}

	// y1 is the C-terminal group plus the last residue
	y1, err := p.Fragment(FragmentY, 1)
	if err != nil {
		t.Fatal(err)
	}
	lysine, _ := GetAminoAcid('K')
	wantY1 := p.CTerminalGroup().Monoisotopic() + lysine.Monoisotopic()
	if !closeEnough(y1.Monoisotopic(), wantY1) {
		t.Errorf("y1 mass = %v, want %v", y1.Monoisotopic(), wantY1)
	}

	// FragmentNone yields no fragment and no error
	none, err := p.Fragment(FragmentNone, 2)
	if none != nil || err != nil {
		t.Errorf("Fragment(None) = %v, %v, want nil, nil", none, err)
	}

	// ion numbers outside [1, Length] are a RangeError
	for _, number := range []int{0, 6} {
		_, err := p.Fragment(FragmentB, number)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("Fragment(b, %d) error = %v, want *RangeError", number, err)
		}
	}
}

// each next fragment mass is the previous plus one more residue (and
// modification) contribution
func Test_fragment_accumulation(t *testing.T) {
	p, err := NewPolymer("TTGS[Phospho]SSSSSSK")
	if err != nil {
		t.Fatal(err)
	}

	for _, kind := range []FragmentType{FragmentB, FragmentY} {
		prev, err := p.Fragment(kind, 1)
		if err != nil {
			t.Fatal(err)
		}
		for k := 2; k <= p.Length(); k++ {
			next, err := p.Fragment(kind, k)
			if err != nil {
				t.Fatal(err)
			}

			index := k - 1 // 0-based residue index from the N side
			if kind.isCTerminal() {
				index = p.Length() - k
			}
			aa, _ := p.Residue(index + 1)
			step := aa.Monoisotopic()
			if m, _ := p.ModificationAt(index + 1); m != nil {
				step += m.Monoisotopic()
			}

			if !closeEnough(next.Monoisotopic(), prev.Monoisotopic()+step) {
				t.Fatalf("%s%d mass = %v, want %s%d + residue = %v",
					kind, k, next.Monoisotopic(), kind, k-1, prev.Monoisotopic()+step)
			}
			prev = next
		}
	}
}

// a terminal modification belongs to fragments of its own side only
func Test_fragment_terminal_modifications(t *testing.T) {
	p, err := NewPolymer("DEREK")
	if err != nil {
		t.Fatal(err)
	}
	plainB1, _ := p.Fragment(FragmentB, 1)
	plainY1, _ := p.Fragment(FragmentY, 1)

	acetyl, _ := GetModification("Acetyl")
	p.SetTerminusModification(acetyl, NTerminus)

	b1, _ := p.Fragment(FragmentB, 1)
	y1, _ := p.Fragment(FragmentY, 1)
	if !closeEnough(b1.Monoisotopic(), plainB1.Monoisotopic()+acetyl.Monoisotopic()) {
		t.Errorf("b1 should carry the N-terminal modification")
	}
	if !closeEnough(y1.Monoisotopic(), plainY1.Monoisotopic()) {
		t.Errorf("y1 should not carry the N-terminal modification")
	}
}

func Test_Fragments_iterator(t *testing.T) {
	p, err := NewPolymer("DEREK")
	if err != nil {
		t.Fatal(err)
	}

	iter, err := p.Fragments(FragmentB|FragmentY, 1, p.Length()-1)
	if err != nil {
		t.Fatal(err)
	}

	var got []*Fragment
	for {
		frag, ok := iter.Next()
		if !ok {
			break
		}
		got = append(got, frag)
	}

	if len(got) != 8 {
		t.Fatalf("iterator produced %d fragments, want 8", len(got))
	}

	// exhausted iterators stay exhausted
	if frag, ok := iter.Next(); frag != nil || ok {
		t.Errorf("Next() after exhaustion = %v, %v, want nil, false", frag, ok)
	}

	// b1..b4 then y1..y4, each matching the single-fragment path
	i := 0
	for _, kind := range []FragmentType{FragmentB, FragmentY} {
		for number := 1; number <= 4; number++ {
			frag := got[i]
			i++
			if frag.Type != kind || frag.Number != number {
				t.Fatalf("fragment %d = %s, want %s%d", i, frag, kind, number)
			}
			single, err := p.Fragment(kind, number)
			if err != nil {
				t.Fatal(err)
			}
			if !closeEnough(frag.Monoisotopic(), single.Monoisotopic()) {
				t.Errorf("%s mass = %v, single-fragment path gives %v", frag, frag.Monoisotopic(), single.Monoisotopic())
			}
		}
	}
}

func Test_Fragments_bounds(t *testing.T) {
	p, err := NewPolymer("DEREK")
	if err != nil {
		t.Fatal(err)
	}

	type args struct {
		min int
		max int
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{"full window", args{1, 4}, false},
		{"min below one", args{0, 4}, true},
		{"max beyond length minus one", args{1, 5}, true},
		{"inner window", args{2, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Fragments(FragmentB, tt.args.min, tt.args.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("Fragments(%d, %d) error = %v, wantErr %v", tt.args.min, tt.args.max, err, tt.wantErr)
			}
			if err != nil {
				var rangeErr *RangeError
				if !errors.As(err, &rangeErr) {
					t.Errorf("error is %T, want *RangeError", err)
				}
			}
		})
	}
}
