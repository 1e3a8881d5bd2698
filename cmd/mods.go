package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/JibranRasheed/CSMSL/internal/proteomics"
	"github.com/spf13/cobra"
)

// modsCmd lists the named modifications usable in sequence annotations
var modsCmd = &cobra.Command{
	Use:   "mods",
	Short: "List the registered modifications",
	Long: `Lists every named modification usable inside sequence annotations like
"S[Phospho]", with its elemental formula and monoisotopic mass shift`,
	Run: runMods,
}

func init() {
	RootCmd.AddCommand(modsCmd)
}

func runMods(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "name\tformula\tmass\n")
	for _, name := range proteomics.ModificationNames() {
		m, _ := proteomics.GetModification(name)
		formula := "-"
		if fm, ok := m.(proteomics.FormulaModification); ok {
			formula = fm.Formula.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%+.5f\n", name, formula, m.Monoisotopic())
	}
	w.Flush()
}
