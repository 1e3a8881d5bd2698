package proteomics

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/JibranRasheed/CSMSL/internal/chem"
)

// Modification is a mass shift attached to a residue or a terminus.
// Implementations with a known elemental composition additionally
// satisfy formulaProvider, which TryGetChemicalFormula relies on to
// tell "has a formula" apart from "mass only".
type Modification interface {
	Monoisotopic() float64
	String() string
}

type formulaProvider interface {
	ChemicalFormula() (chem.Formula, bool)
}

// MassModification is a bare monoisotopic mass shift with no known
// composition. It renders as a numeric literal so annotated sequences
// containing it still round-trip.
type MassModification float64

func (m MassModification) Monoisotopic() float64 {
	return float64(m)
}

func (m MassModification) String() string {
	return strconv.FormatFloat(float64(m), 'f', -1, 64)
}

// FormulaModification is a modification backed by an elemental
// composition, optionally carrying the registry name it was filed
// under. Unnamed ones render as their formula literal.
type FormulaModification struct {
	Formula chem.Formula
	Name    string
}

func (m FormulaModification) Monoisotopic() float64 {
	return m.Formula.Monoisotopic()
}

func (m FormulaModification) ChemicalFormula() (chem.Formula, bool) {
	return m.Formula, true
}

func (m FormulaModification) String() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Formula.String()
}

// modificationFormula extracts the composition of a modification when
// it has one
func modificationFormula(m Modification) (chem.Formula, bool) {
	if p, ok := m.(formulaProvider); ok {
		return p.ChemicalFormula()
	}
	return chem.Formula{}, false
}

// modEqual is the slot-wise equality witness used by the mutation
// funnel and by Polymer.Equal: nil matches only nil, formula-backed
// modifications match on atom counts and rendering, and bare masses on
// value and rendering. Comparing compositions rather than summed
// masses keeps equality independent of float accumulation order.
func modEqual(a, b Modification) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, okA := modificationFormula(a)
	fb, okB := modificationFormula(b)
	if okA != okB {
		return false
	}
	if okA {
		return fa.Equal(fb) && a.String() == b.String()
	}
	return a.Monoisotopic() == b.Monoisotopic() && a.String() == b.String()
}

// modifications is the named registry, seeded with the common fixed and
// variable modifications
var modifications = map[string]Modification{}

func init() {
	seed := map[string]string{
		"Acetyl":          "C2H2O",
		"Amide":           "HNO-1",
		"Carbamidomethyl": "C2H3NO",
		"Carbamyl":        "CHNO",
		"Methyl":          "CH2",
		"Dimethyl":        "C2H4",
		"Oxidation":       "O",
		"Phospho":         "HO3P",
		"Pyroglutamate":   "H-3N-1",
		"Water":           "H2O",
	}
	for name, formula := range seed {
		if err := RegisterModification(formula, name); err != nil {
			panic(err)
		}
	}
}

// RegisterModification files a formula-backed modification under name,
// failing if the formula text is not a valid chemical formula literal
func RegisterModification(formulaText, name string) error {
	if !chem.IsValid(formulaText) {
		return fmt.Errorf("cannot register modification %q: %q is not a valid chemical formula", name, formulaText)
	}
	f, err := chem.Parse(formulaText)
	if err != nil {
		return err
	}
	modifications[name] = FormulaModification{Formula: f, Name: name}
	return nil
}

// GetModification looks a modification up by its registered name
func GetModification(name string) (Modification, bool) {
	m, ok := modifications[name]
	return m, ok
}

// ModificationNames returns the registered names in sorted order
func ModificationNames() []string {
	names := make([]string, 0, len(modifications))
	for name := range modifications {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MakeHeavy returns the isotope promotion of a residue: every carbon
// swapped for C{13} and every nitrogen for N{15}, expressed as a
// composition difference. The modification is left unnamed so it
// renders (and re-parses) as a formula literal.
func MakeHeavy(aa *AminoAcid) Modification {
	counts := aa.Formula.Counts()
	diff := map[string]int{}
	if c := counts["C"]; c > 0 {
		diff["C"] = -c
		diff["C{13}"] = c
	}
	if n := counts["N"]; n > 0 {
		diff["N"] = -n
		diff["N{15}"] = n
	}
	f, err := chem.FromCounts(diff)
	if err != nil {
		panic(err)
	}
	return FormulaModification{Formula: f}
}
