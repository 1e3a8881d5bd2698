package proteomics

import "sort"

// span is one candidate sub-peptide: a 0-based start and a length
type span struct {
	start  int
	length int
}

// digestionSpans runs the missed-cleavage sliding window over the
// union of every protease's cleavage sites. The virtual boundaries -1
// (before the first residue) and len-1 (at the last residue) are always
// part of the ordered, duplicate-free site list. For each allowed
// missed-cleavage count m, consecutive boundaries m+1 apart delimit one
// candidate span.
//
// Sites outside [0, len-2] are passed through untouched; spans that
// would leave the sequence are simply not emitted.
func digestionSpans(sequence string, prots []Protease, missedCleavages, minLength, maxLength int) ([]span, error) {
	if missedCleavages < 0 {
		return nil, &RangeError{What: "missed cleavages", Value: missedCleavages, Min: 0, Max: -1}
	}
	if maxLength < 1 {
		maxLength = len(sequence)
	}

	locations := []int{-1}
	seen := map[int]bool{-1: true}
	for _, prot := range prots {
		for _, site := range prot.DigestionSites(sequence) {
			if !seen[site] {
				seen[site] = true
				locations = append(locations, site)
			}
		}
	}
	if last := len(sequence) - 1; !seen[last] {
		locations = append(locations, last)
	}
	sort.Ints(locations)

	var spans []span
	for missed := 0; missed <= missedCleavages; missed++ {
		for i := 0; i+missed+1 < len(locations); i++ {
			start := locations[i] + 1
			length := locations[i+missed+1] - locations[i]
			if length < minLength || length > maxLength {
				continue
			}
			if start < 0 || start+length > len(sequence) {
				continue
			}
			spans = append(spans, span{start: start, length: length})
		}
	}
	return spans, nil
}

// Digest cuts the polymer with one or more proteases, producing every
// sub-peptide reachable with up to missedCleavages missed cleavage
// sites and a length within [minLength, maxLength]. A maxLength below 1
// means unbounded. Peptides are independent copies carrying the
// polymer's modifications over their range.
func (p *Polymer) Digest(prots []Protease, missedCleavages, minLength, maxLength int) ([]*Peptide, error) {
	spans, err := digestionSpans(p.Sequence(), prots, missedCleavages, minLength, maxLength)
	if err != nil {
		return nil, err
	}

	peptides := make([]*Peptide, 0, len(spans))
	for _, s := range spans {
		peptides = append(peptides, newPeptideFrom(p, s.start, s.length))
	}
	return peptides, nil
}

// DigestSequence is the string-only overload: same windowing, but the
// sub-peptides are plain sequence slices
func DigestSequence(sequence string, prots []Protease, missedCleavages, minLength, maxLength int) ([]string, error) {
	spans, err := digestionSpans(sequence, prots, missedCleavages, minLength, maxLength)
	if err != nil {
		return nil, err
	}

	peptides := make([]string, 0, len(spans))
	for _, s := range spans {
		peptides = append(peptides, sequence[s.start:s.start+s.length])
	}
	return peptides, nil
}
