package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/JibranRasheed/CSMSL/internal/proteomics"
	"github.com/spf13/cobra"
)

// proteasesCmd is for listing out all the proteases usable for
// digestion. Useful for if the user doesn't know which are available
var proteasesCmd = &cobra.Command{
	Use:   "proteases",
	Short: "List proteases available for digestion",
	Long: `Lists the built-in proteases by name along with the residues they cleave
at, the residues that suppress a cleavage when they follow the site,
and the side of the matched residue the cut falls on`,
	Run: runProteases,
}

func init() {
	RootCmd.AddCommand(proteasesCmd)
}

func runProteases(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "name\tcleaves at\tnot before\tside\n")
	for _, rule := range proteomics.Proteases() {
		side := "C"
		if rule.NSide {
			side = "N"
		}
		cleave, restrict := rule.Cleave, rule.Restrict
		if cleave == "" {
			cleave = "-"
		}
		if restrict == "" {
			restrict = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rule.Name, cleave, restrict, side)
	}
	w.Flush()
}
