package proteomics

import (
	"sort"
	"strings"
)

// Protease yields the 0-based cleavage sites of a sequence, where site
// i means "cleave after residue i"
type Protease interface {
	DigestionSites(sequence string) []int
}

// CleavageRule is a rule-based protease: it cleaves at every residue in
// Cleave, unless the next residue is in Restrict. NSide proteases (eg
// Asp-N) cut before the matched residue instead of after it.
type CleavageRule struct {
	Name     string
	Cleave   string
	Restrict string
	NSide    bool
}

func (r CleavageRule) DigestionSites(sequence string) []int {
	var sites []int
	for i := 0; i < len(sequence); i++ {
		if !strings.ContainsRune(r.Cleave, rune(sequence[i])) {
			continue
		}
		if r.NSide {
			if i > 0 {
				sites = append(sites, i-1)
			}
			continue
		}
		if r.Restrict != "" && i+1 < len(sequence) && strings.ContainsRune(r.Restrict, rune(sequence[i+1])) {
			continue
		}
		sites = append(sites, i)
	}
	return sites
}

func (r CleavageRule) String() string {
	return r.Name
}

// proteases is the built-in registry, keyed by lowercase name
var proteases = map[string]CleavageRule{
	"trypsin":      {Name: "Trypsin", Cleave: "KR", Restrict: "P"},
	"lysc":         {Name: "LysC", Cleave: "K"},
	"argc":         {Name: "ArgC", Cleave: "R"},
	"gluc":         {Name: "GluC", Cleave: "E"},
	"aspn":         {Name: "AspN", Cleave: "D", NSide: true},
	"chymotrypsin": {Name: "Chymotrypsin", Cleave: "FWY", Restrict: "P"},
	"pepsin":       {Name: "Pepsin", Cleave: "FL"},
	"cnbr":         {Name: "CNBr", Cleave: "M"},
	"none":         {Name: "None"},
}

// GetProtease looks a protease up by name, case-insensitively
func GetProtease(name string) (Protease, bool) {
	r, ok := proteases[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return r, true
}

// Proteases returns the built-in rules sorted by name
func Proteases() []CleavageRule {
	rules := make([]CleavageRule, 0, len(proteases))
	for _, r := range proteases {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Name < rules[j].Name })
	return rules
}
