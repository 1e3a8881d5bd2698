package proteomics

// Peptide is a polymer with provenance: where in a parent sequence it
// was cut from. The provenance is a plain value relation (parent
// sequence, 1-based start); a peptide never shares mutable state with
// its parent.
type Peptide struct {
	Polymer

	parent string
	start  int
}

// NewPeptide parses a free-standing peptide with no parent
func NewPeptide(sequence string) (*Peptide, error) {
	p, err := NewPolymer(sequence)
	if err != nil {
		return nil, err
	}
	return &Peptide{Polymer: *p}, nil
}

// newPeptideFrom copies length residues of parent starting at 0-based
// start0, modifications included
func newPeptideFrom(parent *Polymer, start0, length int) *Peptide {
	return &Peptide{
		Polymer: *subPolymer(parent, start0, length, true),
		parent:  parent.Sequence(),
		start:   start0 + 1,
	}
}

// ParentSequence is the bare sequence this peptide was digested from,
// empty for free-standing peptides
func (p *Peptide) ParentSequence() string {
	return p.parent
}

// StartResidue is the 1-based position of the first residue within the
// parent, 0 for free-standing peptides
func (p *Peptide) StartResidue() int {
	return p.start
}

// EndResidue is the 1-based position of the last residue within the
// parent
func (p *Peptide) EndResidue() int {
	if p.start == 0 {
		return 0
	}
	return p.start + p.Length() - 1
}

// Equal compares the underlying polymers only; provenance does not
// participate in identity
func (p *Peptide) Equal(other *Peptide) bool {
	if other == nil {
		return false
	}
	return p.Polymer.Equal(&other.Polymer)
}
