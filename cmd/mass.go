package cmd

import (
	"fmt"

	"github.com/JibranRasheed/CSMSL/internal/proteomics"
	"github.com/spf13/cobra"
)

// massCmd computes the monoisotopic mass of one annotated sequence
var massCmd = &cobra.Command{
	Use:   "mass [sequence]",
	Short: "Compute the monoisotopic mass of a peptide sequence",
	Long: `Parses an annotated peptide sequence and prints its neutral monoisotopic
mass. Modifications are written in square brackets after the residue
they sit on, eg "TTGS[Phospho]SK", with "[Acetyl]-" and "-[Amide]"
prefix/suffix forms for the termini. An annotation may be a registered
modification name, a chemical formula like C2H3NO, or a bare mass.

The elemental formula is printed too, unless a bare-mass modification
makes the composition unknowable`,
	Args: cobra.ExactArgs(1),
	Run:  runMass,
}

func init() {
	RootCmd.AddCommand(massCmd)
}

func runMass(cmd *cobra.Command, args []string) {
	p, err := proteomics.NewPolymer(args[0])
	if err != nil {
		stderr.Fatal(err)
	}

	fmt.Printf("%s\n", p.SequenceWithModifications())
	fmt.Printf("monoisotopic mass: %.5f Da\n", p.MonoisotopicMass())
	if f, ok := p.TryGetChemicalFormula(); ok {
		fmt.Printf("formula: %s\n", f)
	}
}
