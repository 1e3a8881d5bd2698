package proteomics

import "github.com/JibranRasheed/CSMSL/internal/chem"

// Terminus flags one or both polymer ends
type Terminus uint8

const (
	NTerminus Terminus = 1 << iota
	CTerminus
)

// Default terminal groups: a free amine keeps an extra H at the N side
// and the carboxyl keeps OH at the C side, so an unmodified polymer
// carries one water over the summed residue masses.
var (
	defaultNTerminus = chem.MustParse("H")
	defaultCTerminus = chem.MustParse("OH")
)
