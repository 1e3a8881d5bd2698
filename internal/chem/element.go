// Package chem holds the elemental composition value type used for
// mass bookkeeping: a periodic table of monoisotopic masses and an
// immutable Formula supporting parsing, addition and equality.
package chem

// Element is one entry of the periodic table. Mass is the monoisotopic
// mass of the principal (most abundant) isotope. Isotopes maps a mass
// number to the monoisotopic mass of that isotope, for compositions
// written with an explicit isotope like C{13}.
type Element struct {
	Symbol   string
	Mass     float64
	Isotopes map[int]float64
}

// elements covers the elements that occur in amino acids and in the
// built-in modifications. Masses are CODATA monoisotopic values.
var elements = map[string]Element{
	"H": {
		Symbol: "H",
		Mass:   1.0078250319,
		Isotopes: map[int]float64{
			1: 1.0078250319,
			2: 2.0141017780,
		},
	},
	"C": {
		Symbol: "C",
		Mass:   12.0,
		Isotopes: map[int]float64{
			12: 12.0,
			13: 13.0033548378,
		},
	},
	"N": {
		Symbol: "N",
		Mass:   14.0030740052,
		Isotopes: map[int]float64{
			14: 14.0030740052,
			15: 15.0001088984,
		},
	},
	"O": {
		Symbol: "O",
		Mass:   15.9949146221,
		Isotopes: map[int]float64{
			16: 15.9949146221,
			17: 16.9991315,
			18: 17.9991604,
		},
	},
	"P": {
		Symbol:   "P",
		Mass:     30.97376151,
		Isotopes: map[int]float64{31: 30.97376151},
	},
	"S": {
		Symbol: "S",
		Mass:   31.97207069,
		Isotopes: map[int]float64{
			32: 31.97207069,
			33: 32.97145850,
			34: 33.96786683,
		},
	},
	"Se": {
		Symbol:   "Se",
		Mass:     79.9165218,
		Isotopes: map[int]float64{80: 79.9165218},
	},
	"Na": {
		Symbol:   "Na",
		Mass:     22.98976928,
		Isotopes: map[int]float64{23: 22.98976928},
	},
	"Fe": {
		Symbol:   "Fe",
		Mass:     55.9349375,
		Isotopes: map[int]float64{56: 55.9349375},
	},
}

// GetElement returns the element for a symbol, if it's in the table
func GetElement(symbol string) (Element, bool) {
	e, ok := elements[symbol]
	return e, ok
}
