package proteomics

import "github.com/JibranRasheed/CSMSL/internal/chem"

// AminoAcid is one entry of the residue table. Instances are shared
// and read only; polymers hold pointers into the table, so pointer
// identity is meaningful (see Polymer.SetModificationAtResidue).
type AminoAcid struct {
	Letter  byte
	Symbol  string
	Name    string
	Formula chem.Formula
	Site    ModificationSites

	mass float64
}

// Monoisotopic returns the residue monoisotopic mass (the amino acid
// minus water)
func (a *AminoAcid) Monoisotopic() float64 {
	return a.mass
}

func (a *AminoAcid) String() string {
	return string(a.Letter)
}

func newAminoAcid(letter byte, symbol, name, formula string, site ModificationSites) *AminoAcid {
	f := chem.MustParse(formula)
	return &AminoAcid{
		Letter:  letter,
		Symbol:  symbol,
		Name:    name,
		Formula: f,
		Site:    site,
		mass:    f.Monoisotopic(),
	}
}

// The 20 standard amino acids, keyed by one-letter code. Formulas are
// residue compositions (dehydrated).
var aminoAcids = map[byte]*AminoAcid{
	'A': newAminoAcid('A', "Ala", "Alanine", "C3H5NO", SiteA),
	'C': newAminoAcid('C', "Cys", "Cysteine", "C3H5NOS", SiteC),
	'D': newAminoAcid('D', "Asp", "Aspartic Acid", "C4H5NO3", SiteD),
	'E': newAminoAcid('E', "Glu", "Glutamic Acid", "C5H7NO3", SiteE),
	'F': newAminoAcid('F', "Phe", "Phenylalanine", "C9H9NO", SiteF),
	'G': newAminoAcid('G', "Gly", "Glycine", "C2H3NO", SiteG),
	'H': newAminoAcid('H', "His", "Histidine", "C6H7N3O", SiteH),
	'I': newAminoAcid('I', "Ile", "Isoleucine", "C6H11NO", SiteI),
	'K': newAminoAcid('K', "Lys", "Lysine", "C6H12N2O", SiteK),
	'L': newAminoAcid('L', "Leu", "Leucine", "C6H11NO", SiteL),
	'M': newAminoAcid('M', "Met", "Methionine", "C5H9NOS", SiteM),
	'N': newAminoAcid('N', "Asn", "Asparagine", "C4H6N2O2", SiteN),
	'P': newAminoAcid('P', "Pro", "Proline", "C5H7NO", SiteP),
	'Q': newAminoAcid('Q', "Gln", "Glutamine", "C5H8N2O2", SiteQ),
	'R': newAminoAcid('R', "Arg", "Arginine", "C6H12N4O", SiteR),
	'S': newAminoAcid('S', "Ser", "Serine", "C3H5NO2", SiteS),
	'T': newAminoAcid('T', "Thr", "Threonine", "C4H7NO2", SiteT),
	'V': newAminoAcid('V', "Val", "Valine", "C5H9NO", SiteV),
	'W': newAminoAcid('W', "Trp", "Tryptophan", "C11H10N2O", SiteW),
	'Y': newAminoAcid('Y', "Tyr", "Tyrosine", "C9H9NO2", SiteY),
}

// GetAminoAcid looks a residue up by its one-letter code
func GetAminoAcid(letter byte) (*AminoAcid, bool) {
	aa, ok := aminoAcids[letter]
	return aa, ok
}
