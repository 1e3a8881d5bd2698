package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/JibranRasheed/CSMSL/config"
	"github.com/JibranRasheed/CSMSL/internal/proteomics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fragmentCmd predicts fragment ions for a peptide sequence
var fragmentCmd = &cobra.Command{
	Use:   "fragment [sequence]",
	Short: "Predict fragment ions for a peptide sequence",
	Long: `Enumerates the fragment ions of an annotated peptide sequence for the
requested ion series (a, b and c count from the N terminus, x, y and z
from the C terminus) and prints each ion with its accumulated neutral
monoisotopic mass`,
	Args: cobra.ExactArgs(1),
	Run:  runFragment,
}

func init() {
	RootCmd.AddCommand(fragmentCmd)

	fragmentCmd.Flags().StringP("types", "t", "b,y", "Comma separated ion series to generate")
	fragmentCmd.Flags().Int("min", 1, "First ion number to generate")
	fragmentCmd.Flags().Int("max", 0, "Last ion number to generate (0 = up to Length-1)")

	viper.BindPFlag("fragment.types", fragmentCmd.Flags().Lookup("types"))
	viper.BindPFlag("fragment.min", fragmentCmd.Flags().Lookup("min"))
	viper.BindPFlag("fragment.max", fragmentCmd.Flags().Lookup("max"))
}

func runFragment(cmd *cobra.Command, args []string) {
	c := config.New()

	types, err := proteomics.ParseFragmentTypes(c.Fragment.Types)
	if err != nil {
		stderr.Fatal(err)
	}

	p, err := proteomics.NewPolymer(args[0])
	if err != nil {
		stderr.Fatal(err)
	}

	max := c.Fragment.Max
	if max < 1 {
		max = p.Length() - 1
	}

	iter, err := p.Fragments(types, c.Fragment.Min, max)
	if err != nil {
		stderr.Fatal(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "ion\tmass\n")
	for {
		frag, ok := iter.Next()
		if !ok {
			break
		}
		fmt.Fprintf(w, "%s\t%.5f\n", frag, frag.Monoisotopic())
	}
	w.Flush()
}
