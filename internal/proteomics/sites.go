// Package proteomics models amino acid polymers: sequence parsing,
// modification bookkeeping, monoisotopic mass accounting, fragment ion
// generation and protease digestion.
package proteomics

// ModificationSites is a bitmask of positions a modification can be
// directed at: one bit per amino acid plus the two peptide termini.
type ModificationSites uint32

const (
	SiteA ModificationSites = 1 << iota
	SiteC
	SiteD
	SiteE
	SiteF
	SiteG
	SiteH
	SiteI
	SiteK
	SiteL
	SiteM
	SiteN
	SiteP
	SiteQ
	SiteR
	SiteS
	SiteT
	SiteV
	SiteW
	SiteY
	SiteNPeptide
	SiteCPeptide
)

const SiteNone ModificationSites = 0

// SiteAllResidues covers every amino acid but neither terminus
const SiteAllResidues = SiteNPeptide - 1
