package chem

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Formula is an immutable elemental composition. Counts are keyed by
// element symbol, with an optional isotope annotation ("C" vs "C{13}"),
// and may be negative so that a Formula can also express a composition
// difference (eg a light -> heavy isotope swap).
type Formula struct {
	counts map[string]int
	mass   float64
}

// Parse builds a Formula from a literal like "C2H3NO", "HO3P" or
// "C-6C{13}6". Each term is an element symbol, an optional isotope mass
// number in braces, and an optional signed count (defaulting to 1).
func Parse(text string) (Formula, error) {
	if text == "" {
		return Formula{}, fmt.Errorf("empty chemical formula")
	}

	counts := make(map[string]int)
	i := 0
	for i < len(text) {
		if text[i] < 'A' || text[i] > 'Z' {
			return Formula{}, fmt.Errorf("invalid chemical formula %q: expected an element symbol at index %d", text, i)
		}

		symbol := text[i : i+1]
		i++
		if i < len(text) && text[i] >= 'a' && text[i] <= 'z' {
			symbol += text[i : i+1]
			i++
		}
		element, ok := elements[symbol]
		if !ok {
			return Formula{}, fmt.Errorf("invalid chemical formula %q: unknown element %q", text, symbol)
		}

		key := symbol
		if i < len(text) && text[i] == '{' {
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return Formula{}, fmt.Errorf("invalid chemical formula %q: unclosed isotope brace at index %d", text, i)
			}
			isotope, err := strconv.Atoi(text[i+1 : i+end])
			if err != nil {
				return Formula{}, fmt.Errorf("invalid chemical formula %q: bad isotope number %q", text, text[i+1:i+end])
			}
			if _, ok := element.Isotopes[isotope]; !ok {
				return Formula{}, fmt.Errorf("invalid chemical formula %q: element %s has no isotope %d", text, symbol, isotope)
			}
			key = fmt.Sprintf("%s{%d}", symbol, isotope)
			i += end + 1
		}

		count := 1
		start := i
		if i < len(text) && text[i] == '-' {
			i++
		}
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		if i > start {
			n, err := strconv.Atoi(text[start:i])
			if err != nil {
				return Formula{}, fmt.Errorf("invalid chemical formula %q: bad count %q", text, text[start:i])
			}
			count = n
		}

		counts[key] += count
	}

	return fromCounts(counts), nil
}

// IsValid reports whether text parses as a chemical formula literal
func IsValid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// MustParse is Parse for package-level composition tables. It panics on
// malformed literals.
func MustParse(text string) Formula {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

// FromCounts builds a Formula from a counts map keyed like "C" or
// "C{13}". Unknown elements or isotopes are rejected.
func FromCounts(counts map[string]int) (Formula, error) {
	for key := range counts {
		if _, ok := keyMass(key); !ok {
			return Formula{}, fmt.Errorf("unknown element or isotope %q", key)
		}
	}
	return fromCounts(counts), nil
}

// fromCounts copies the map, drops zero counts and fixes the mass.
// The summation runs over sorted keys so that equal compositions built
// through different paths carry bitwise-identical masses.
func fromCounts(counts map[string]int) Formula {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	kept := make(map[string]int, len(counts))
	mass := 0.0
	for _, key := range keys {
		count := counts[key]
		if count == 0 {
			continue
		}
		m, _ := keyMass(key)
		kept[key] = count
		mass += m * float64(count)
	}
	return Formula{counts: kept, mass: mass}
}

// keyMass resolves a counts key to the monoisotopic mass of one atom
func keyMass(key string) (float64, bool) {
	symbol := key
	isotope := -1
	if brace := strings.IndexByte(key, '{'); brace >= 0 {
		if !strings.HasSuffix(key, "}") {
			return 0, false
		}
		n, err := strconv.Atoi(key[brace+1 : len(key)-1])
		if err != nil {
			return 0, false
		}
		symbol, isotope = key[:brace], n
	}

	element, ok := elements[symbol]
	if !ok {
		return 0, false
	}
	if isotope < 0 {
		return element.Mass, true
	}
	mass, ok := element.Isotopes[isotope]
	return mass, ok
}

// Monoisotopic returns the summed monoisotopic mass of the composition
func (f Formula) Monoisotopic() float64 {
	return f.mass
}

// Add returns the combined composition of f and other
func (f Formula) Add(other Formula) Formula {
	merged := make(map[string]int, len(f.counts)+len(other.counts))
	for key, count := range f.counts {
		merged[key] += count
	}
	for key, count := range other.counts {
		merged[key] += count
	}
	return fromCounts(merged)
}

// Equal reports whether both compositions have the same atom counts
func (f Formula) Equal(other Formula) bool {
	if len(f.counts) != len(other.counts) {
		return false
	}
	for key, count := range f.counts {
		if other.counts[key] != count {
			return false
		}
	}
	return true
}

// Counts returns a copy of the per-atom counts, keyed like "C" or "C{13}"
func (f Formula) Counts() map[string]int {
	counts := make(map[string]int, len(f.counts))
	for key, count := range f.counts {
		counts[key] = count
	}
	return counts
}

// String renders the composition in Hill order: carbon, then hydrogen,
// then the remaining elements alphabetically. Isotope-annotated atoms
// sort after the principal atom of the same element. The rendering is
// deterministic and re-parses to an Equal Formula.
func (f Formula) String() string {
	keys := make([]string, 0, len(f.counts))
	for key := range f.counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return hillLess(keys[i], keys[j])
	})

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		if count := f.counts[key]; count != 1 {
			b.WriteString(strconv.Itoa(count))
		}
	}
	return b.String()
}

func hillLess(a, b string) bool {
	symA, isoA := splitKey(a)
	symB, isoB := splitKey(b)
	if symA != symB {
		rankA, rankB := hillRank(symA), hillRank(symB)
		if rankA != rankB {
			return rankA < rankB
		}
		return symA < symB
	}
	return isoA < isoB
}

func splitKey(key string) (string, int) {
	brace := strings.IndexByte(key, '{')
	if brace < 0 {
		return key, 0
	}
	n, _ := strconv.Atoi(key[brace+1 : len(key)-1])
	return key[:brace], n
}

func hillRank(symbol string) int {
	switch symbol {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}
