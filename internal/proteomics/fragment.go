package proteomics

import (
	"fmt"
	"strings"
)

// FragmentType is a bitmask of fragment ion series. The a/b/c series
// grow from the N terminus, x/y/z from the C terminus.
type FragmentType uint8

const (
	FragmentA FragmentType = 1 << iota
	FragmentB
	FragmentC
	FragmentX
	FragmentY
	FragmentZ
	// FragmentInternal marks internal (double-cleavage) fragments; it
	// is never produced by the batch enumerator.
	FragmentInternal
)

const (
	FragmentNone FragmentType = 0
	FragmentAll               = FragmentA | FragmentB | FragmentC | FragmentX | FragmentY | FragmentZ
)

// enumeration order for bitmask expansion
var fragmentOrder = []FragmentType{
	FragmentA, FragmentB, FragmentC, FragmentX, FragmentY, FragmentZ,
}

func (t FragmentType) String() string {
	switch t {
	case FragmentA:
		return "a"
	case FragmentB:
		return "b"
	case FragmentC:
		return "c"
	case FragmentX:
		return "x"
	case FragmentY:
		return "y"
	case FragmentZ:
		return "z"
	case FragmentInternal:
		return "internal"
	}
	return "?"
}

// isCTerminal reports whether the series counts residues from the C
// terminus (the x series and beyond)
func (t FragmentType) isCTerminal() bool {
	return t >= FragmentX
}

// ParseFragmentTypes reads a comma separated series list like "b,y"
// into a bitmask
func ParseFragmentTypes(text string) (FragmentType, error) {
	types := FragmentNone
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		found := FragmentNone
		for _, t := range fragmentOrder {
			if t.String() == field {
				found = t
				break
			}
		}
		if found == FragmentNone {
			return FragmentNone, fmt.Errorf("unknown fragment ion series %q (known: a, b, c, x, y, z)", field)
		}
		types |= found
	}
	return types, nil
}

// Fragment is a prefix or suffix of a polymer: an ion series tag, the
// ion number (residues counted from the relevant terminus) and the
// accumulated neutral monoisotopic mass including the terminal group,
// its modification and every covered residue modification.
type Fragment struct {
	Type   FragmentType
	Number int

	mass float64
}

// Monoisotopic returns the accumulated fragment mass
func (f *Fragment) Monoisotopic() float64 {
	return f.mass
}

// String renders the conventional ion label, eg "b3"
func (f *Fragment) String() string {
	return fmt.Sprintf("%s%d", f.Type, f.Number)
}

// slotContribution is the mass of one residue plus its modification,
// addressed by 0-based residue index
func (p *Polymer) slotContribution(index int) float64 {
	mass := p.residues[index].mass
	if m := p.mods[index+1]; m != nil {
		mass += m.Monoisotopic()
	}
	return mass
}

// terminusBase is the terminal group plus its modification for one side
func (p *Polymer) terminusBase(cSide bool) float64 {
	if cSide {
		mass := p.cTerm.Monoisotopic()
		if m := p.mods[len(p.mods)-1]; m != nil {
			mass += m.Monoisotopic()
		}
		return mass
	}
	mass := p.nTerm.Monoisotopic()
	if m := p.mods[0]; m != nil {
		mass += m.Monoisotopic()
	}
	return mass
}

// Fragment computes a single fragment of the given series and ion
// number. FragmentNone yields nil without error; a number outside
// [1, Length] is a RangeError.
func (p *Polymer) Fragment(t FragmentType, number int) (*Fragment, error) {
	if t == FragmentNone {
		return nil, nil
	}
	if number < 1 || number > len(p.residues) {
		return nil, &RangeError{What: "fragment ion number", Value: number, Min: 1, Max: len(p.residues)}
	}

	cSide := t.isCTerminal()
	mass := p.terminusBase(cSide)
	for k := 0; k < number; k++ {
		mass += p.slotContribution(p.residueIndex(cSide, k))
	}
	return &Fragment{Type: t, Number: number, mass: mass}, nil
}

// residueIndex maps the k-th residue counted from a terminus (0-based)
// to its index in the sequence
func (p *Polymer) residueIndex(cSide bool, k int) int {
	if cSide {
		return len(p.residues) - 1 - k
	}
	return k
}

// FragmentIter lazily enumerates fragments for every series in a
// bitmask over an inclusive ion number range, cheapest first within a
// series: each next mass is the previous plus one more residue
// contribution, so a full scan is linear in the range.
type FragmentIter struct {
	polymer  *Polymer
	kinds    []FragmentType
	min, max int

	kind    FragmentType
	number  int
	running float64
}

// Fragments validates the range and returns a forward-only iterator
// over every series set in types (FragmentNone and FragmentInternal are
// ignored)
func (p *Polymer) Fragments(types FragmentType, min, max int) (*FragmentIter, error) {
	if min < 1 {
		return nil, &RangeError{What: "fragment range minimum", Value: min, Min: 1, Max: len(p.residues) - 1}
	}
	if max > len(p.residues)-1 {
		return nil, &RangeError{What: "fragment range maximum", Value: max, Min: min, Max: len(p.residues) - 1}
	}

	var kinds []FragmentType
	for _, t := range fragmentOrder {
		if types&t != 0 {
			kinds = append(kinds, t)
		}
	}
	return &FragmentIter{polymer: p, kinds: kinds, min: min, max: max}, nil
}

// Next returns the next fragment, or false once the enumeration is
// exhausted
func (it *FragmentIter) Next() (*Fragment, bool) {
	for {
		if it.kind == FragmentNone {
			if len(it.kinds) == 0 || it.min > it.max {
				return nil, false
			}
			it.kind = it.kinds[0]
			it.kinds = it.kinds[1:]
			it.number = it.min
			it.running = it.polymer.terminusBase(it.kind.isCTerminal())
			for k := 0; k < it.min; k++ {
				it.running += it.polymer.slotContribution(it.polymer.residueIndex(it.kind.isCTerminal(), k))
			}
			break
		}
		if it.number < it.max {
			it.number++
			it.running += it.polymer.slotContribution(it.polymer.residueIndex(it.kind.isCTerminal(), it.number-1))
			break
		}
		it.kind = FragmentNone
	}
	return &Fragment{Type: it.kind, Number: it.number, mass: it.running}, true
}
