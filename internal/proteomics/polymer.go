package proteomics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/JibranRasheed/CSMSL/internal/chem"
)

// Polymer is a linear amino acid polymer: an immutable residue sequence
// with mutable modification slots. Slot 0 is the N terminus, slots
// 1..Length address residues, slot Length+1 is the C terminus.
//
// The monoisotopic mass is maintained eagerly: every mutation funnels
// through replaceMod, which adjusts the running total, so reading the
// mass never rescans the sequence. Only the annotated string rendering
// is lazy. A Polymer is not safe for concurrent mutation; see the
// renderCache note for concurrent reads.
type Polymer struct {
	residues []*AminoAcid
	nTerm    chem.Formula
	cTerm    chem.Formula
	mods     []Modification
	mass     float64
	render   renderCache
}

// NewPolymer parses an annotated sequence with the default H / OH
// terminal groups
func NewPolymer(sequence string) (*Polymer, error) {
	return NewPolymerWithTermini(sequence, defaultNTerminus, defaultCTerminus)
}

// NewPolymerWithTermini parses an annotated sequence string in a single
// left to right scan. Uppercase letters are residues, "[...]" is a
// modification annotation resolving against the registry, the formula
// grammar or a numeric literal, "-" re-targets an annotation at a
// terminus and spaces are skipped. The returned polymer already carries
// the summed monoisotopic mass; on error no polymer is returned at all.
func NewPolymerWithTermini(sequence string, nTerm, cTerm chem.Formula) (*Polymer, error) {
	p := &Polymer{
		nTerm: nTerm,
		cTerm: cTerm,
		mass:  nTerm.Monoisotopic() + cTerm.Monoisotopic(),
	}

	// C-terminal slot is addressed as -1 until the final length is known
	slotMods := map[int]Modification{}
	inMod := false
	modStart := 0
	cTerminal := false
	var modText strings.Builder

	for i := 0; i < len(sequence); i++ {
		c := sequence[i]

		if inMod {
			if c != ']' {
				modText.WriteByte(c)
				continue
			}
			mod, err := p.resolveModification(modText.String(), modStart)
			if err != nil {
				return nil, err
			}
			slot := len(p.residues)
			if len(p.residues) == 0 {
				slot = 0
			} else if cTerminal {
				slot = -1
			}
			if old, ok := slotMods[slot]; ok {
				p.mass -= old.Monoisotopic()
			}
			slotMods[slot] = mod
			p.mass += mod.Monoisotopic()
			inMod = false
			modText.Reset()
			continue
		}

		switch {
		case c >= 'A' && c <= 'Z':
			aa, ok := aminoAcids[c]
			if !ok {
				return nil, &ParseError{Token: string(c), Offset: i, Reason: "amino acid letter does not exist in the residue dictionary"}
			}
			p.residues = append(p.residues, aa)
			p.mass += aa.mass
			cTerminal = false
		case c == '[':
			inMod = true
			modStart = i
		case c == '-':
			// a dash before any residue (eg after a leading N-terminal
			// annotation) carries no meaning; after residues it flags
			// only the immediately following annotation as C-terminal,
			// so a dash buried mid-sequence is inert
			if len(p.residues) > 0 {
				cTerminal = true
			}
		case c == ' ':
		default:
			return nil, &ParseError{Token: string(c), Offset: i, Reason: "unrecognized character"}
		}
	}

	if inMod {
		return nil, &ParseError{Token: modText.String(), Offset: modStart, Reason: "unterminated modification bracket"}
	}

	p.mods = make([]Modification, len(p.residues)+2)
	for slot, mod := range slotMods {
		if slot == -1 {
			slot = len(p.residues) + 1
		}
		p.mods[slot] = mod
	}
	return p, nil
}

// resolveModification maps bracket text to a modification: "#" promotes
// the preceding residue to its heavy isotopologue, then a registry
// name, then a formula literal, then a bare numeric mass
func (p *Polymer) resolveModification(text string, offset int) (Modification, error) {
	if text == "#" {
		if len(p.residues) == 0 {
			return nil, &ParseError{Token: text, Offset: offset, Reason: "heavy isotope annotation must follow a residue"}
		}
		return MakeHeavy(p.residues[len(p.residues)-1]), nil
	}
	if m, ok := GetModification(text); ok {
		return m, nil
	}
	if chem.IsValid(text) {
		f, err := chem.Parse(text)
		if err != nil {
			return nil, err
		}
		return FormulaModification{Formula: f}, nil
	}
	if mass, err := strconv.ParseFloat(text, 64); err == nil {
		return MassModification(mass), nil
	}
	return nil, &ParseError{Token: text, Offset: offset, Reason: "could not resolve modification"}
}

// NewPolymerFrom copies src, optionally dropping every modification
func NewPolymerFrom(src *Polymer, includeMods bool) *Polymer {
	return subPolymer(src, 0, len(src.residues), includeMods)
}

// subPolymer copies the length residues starting at 0-based start0 into
// an independent polymer with default termini semantics preserved from
// the source. Terminal modifications only carry over when the copied
// range touches the corresponding end of the source.
func subPolymer(src *Polymer, start0, length int, includeMods bool) *Polymer {
	p := &Polymer{
		residues: append([]*AminoAcid(nil), src.residues[start0:start0+length]...),
		nTerm:    src.nTerm,
		cTerm:    src.cTerm,
		mods:     make([]Modification, length+2),
	}
	p.mass = p.nTerm.Monoisotopic() + p.cTerm.Monoisotopic()
	for _, aa := range p.residues {
		p.mass += aa.mass
	}

	if includeMods {
		if start0 == 0 {
			p.applyCopiedMod(0, src.mods[0])
		}
		for i := 0; i < length; i++ {
			p.applyCopiedMod(i+1, src.mods[start0+i+1])
		}
		if start0+length == len(src.residues) {
			p.applyCopiedMod(length+1, src.mods[len(src.mods)-1])
		}
	}
	return p
}

func (p *Polymer) applyCopiedMod(slot int, m Modification) {
	if m == nil {
		return
	}
	p.mods[slot] = m
	p.mass += m.Monoisotopic()
}

// Length is the number of residues
func (p *Polymer) Length() int {
	return len(p.residues)
}

// MonoisotopicMass is the eagerly maintained total: termini + residues
// + every attached modification
func (p *Polymer) MonoisotopicMass() float64 {
	return p.mass
}

// NTerminalGroup returns the N-terminal group composition
func (p *Polymer) NTerminalGroup() chem.Formula {
	return p.nTerm
}

// CTerminalGroup returns the C-terminal group composition
func (p *Polymer) CTerminalGroup() chem.Formula {
	return p.cTerm
}

// Residue returns the amino acid at a 1-based residue number
func (p *Polymer) Residue(number int) (*AminoAcid, error) {
	if err := p.checkResidueNumber(number); err != nil {
		return nil, err
	}
	return p.residues[number-1], nil
}

// ModificationAt returns the modification at a 1-based residue number,
// nil when the slot is empty
func (p *Polymer) ModificationAt(number int) (Modification, error) {
	if err := p.checkResidueNumber(number); err != nil {
		return nil, err
	}
	return p.mods[number], nil
}

// TerminusModification returns the modification on one terminus (the N
// side when both flags are set)
func (p *Polymer) TerminusModification(t Terminus) Modification {
	if t&NTerminus != 0 {
		return p.mods[0]
	}
	return p.mods[len(p.mods)-1]
}

func (p *Polymer) checkResidueNumber(number int) error {
	if number < 1 || number > len(p.residues) {
		return &RangeError{What: "residue number", Value: number, Min: 1, Max: len(p.residues)}
	}
	return nil
}

// Sequence is the bare residue letters, derived on each call
func (p *Polymer) Sequence() string {
	var b strings.Builder
	b.Grow(len(p.residues))
	for _, aa := range p.residues {
		b.WriteByte(aa.Letter)
	}
	return b.String()
}

// SequenceWithModifications renders the annotated sequence, rebuilding
// the cached text only after a mutation
func (p *Polymer) SequenceWithModifications() string {
	return p.render.get(p.buildAnnotatedSequence)
}

func (p *Polymer) String() string {
	return p.SequenceWithModifications()
}

func (p *Polymer) buildAnnotatedSequence() string {
	var b strings.Builder
	if m := p.mods[0]; m != nil {
		fmt.Fprintf(&b, "[%s]-", m)
	}
	for i, aa := range p.residues {
		b.WriteByte(aa.Letter)
		if m := p.mods[i+1]; m != nil {
			fmt.Fprintf(&b, "[%s]", m)
		}
	}
	if m := p.mods[len(p.mods)-1]; m != nil {
		fmt.Fprintf(&b, "-[%s]", m)
	}
	return b.String()
}

// replaceMod is the single funnel every modification mutation goes
// through. It keeps the running mass transactionally consistent and
// only dirties the rendered string when the slot actually changes.
func (p *Polymer) replaceMod(slot int, m Modification) bool {
	old := p.mods[slot]
	if modEqual(old, m) {
		return false
	}
	if old != nil {
		p.mass -= old.Monoisotopic()
	}
	p.mods[slot] = m
	if m != nil {
		p.mass += m.Monoisotopic()
	}
	p.render.invalidate()
	return true
}

// SetTerminusModification attaches m to the flagged termini and returns
// the number of slots changed
func (p *Polymer) SetTerminusModification(m Modification, t Terminus) int {
	count := 0
	if t&NTerminus != 0 && p.replaceMod(0, m) {
		count++
	}
	if t&CTerminus != 0 && p.replaceMod(len(p.mods)-1, m) {
		count++
	}
	return count
}

// SetModificationAtSites attaches m to every residue whose site flag
// intersects sites, and to the peptide termini when those pseudo-site
// bits are set
func (p *Polymer) SetModificationAtSites(m Modification, sites ModificationSites) int {
	count := 0
	if sites&SiteNPeptide != 0 && p.replaceMod(0, m) {
		count++
	}
	for i, aa := range p.residues {
		if aa.Site&sites != 0 && p.replaceMod(i+1, m) {
			count++
		}
	}
	if sites&SiteCPeptide != 0 && p.replaceMod(len(p.mods)-1, m) {
		count++
	}
	return count
}

// SetModificationAtLetter attaches m to every residue with the given
// one-letter code
func (p *Polymer) SetModificationAtLetter(m Modification, letter byte) int {
	count := 0
	for i, aa := range p.residues {
		if aa.Letter == letter && p.replaceMod(i+1, m) {
			count++
		}
	}
	return count
}

// SetModificationAtResidue attaches m to every position holding exactly
// the given residue-table entry
func (p *Polymer) SetModificationAtResidue(m Modification, aa *AminoAcid) int {
	count := 0
	for i, r := range p.residues {
		if r == aa && p.replaceMod(i+1, m) {
			count++
		}
	}
	return count
}

// SetModificationAt attaches m at the given 1-based residue numbers.
// Every number is validated before any slot changes, so a RangeError
// leaves the polymer untouched.
func (p *Polymer) SetModificationAt(m Modification, numbers ...int) (int, error) {
	for _, n := range numbers {
		if err := p.checkResidueNumber(n); err != nil {
			return 0, err
		}
	}
	count := 0
	for _, n := range numbers {
		if p.replaceMod(n, m) {
			count++
		}
	}
	return count, nil
}

// ClearTerminusModifications empties the flagged terminal slots
func (p *Polymer) ClearTerminusModifications(t Terminus) int {
	return p.SetTerminusModification(nil, t)
}

// ClearAllModifications empties every slot, termini included
func (p *Polymer) ClearAllModifications() int {
	count := 0
	for slot := range p.mods {
		if p.replaceMod(slot, nil) {
			count++
		}
	}
	return count
}

// ClearModificationsOf empties every slot currently holding a
// modification equal to m
func (p *Polymer) ClearModificationsOf(m Modification) int {
	if m == nil {
		return 0
	}
	count := 0
	for slot, have := range p.mods {
		if modEqual(have, m) && p.replaceMod(slot, nil) {
			count++
		}
	}
	return count
}

// TryGetChemicalFormula sums the elemental composition of the termini,
// residues and modifications. It reports false as soon as any attached
// modification carries only a mass, rather than approximating.
func (p *Polymer) TryGetChemicalFormula() (chem.Formula, bool) {
	total := p.nTerm.Add(p.cTerm)
	for _, aa := range p.residues {
		total = total.Add(aa.Formula)
	}
	for _, m := range p.mods {
		if m == nil {
			continue
		}
		f, ok := modificationFormula(m)
		if !ok {
			return chem.Formula{}, false
		}
		total = total.Add(f)
	}
	return total, true
}

// Equal is the full structural witness: same length, termini, residues
// and slot-wise modifications. Mass is deliberately not consulted.
func (p *Polymer) Equal(other *Polymer) bool {
	if p == other {
		return true
	}
	if other == nil || len(p.residues) != len(other.residues) {
		return false
	}
	if !p.nTerm.Equal(other.nTerm) || !p.cTerm.Equal(other.cTerm) {
		return false
	}
	for i, aa := range p.residues {
		if other.residues[i] != aa {
			return false
		}
	}
	for i, m := range p.mods {
		if !modEqual(m, other.mods[i]) {
			return false
		}
	}
	return true
}

// Hash folds length and mass into a cheap approximate key. Colliding
// polymers must still be separated with Equal.
func (p *Polymer) Hash() uint64 {
	return uint64(len(p.residues))<<52 ^ math.Float64bits(p.mass)
}
