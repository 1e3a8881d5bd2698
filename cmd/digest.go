package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/JibranRasheed/CSMSL/config"
	"github.com/JibranRasheed/CSMSL/internal/proteomics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// digestCmd cuts a sequence into peptides with one or more proteases
var digestCmd = &cobra.Command{
	Use:   "digest [sequence]",
	Short: "Digest a protein sequence into peptides",
	Long: `Cuts an annotated protein sequence with one or more proteases and lists
every peptide reachable within the missed-cleavage and length bounds,
with its position in the parent and its monoisotopic mass. Run
"csmsl proteases" for the available protease names`,
	Args: cobra.ExactArgs(1),
	Run:  runDigest,
}

func init() {
	RootCmd.AddCommand(digestCmd)

	digestCmd.Flags().StringP("proteases", "p", "trypsin", "Comma separated protease names to cut with")
	digestCmd.Flags().IntP("missed-cleavages", "m", 0, "Maximum number of missed cleavage sites per peptide")
	digestCmd.Flags().Int("min-length", 1, "Minimum peptide length to report")
	digestCmd.Flags().Int("max-length", 0, "Maximum peptide length to report (0 = unbounded)")

	viper.BindPFlag("digest.proteases", digestCmd.Flags().Lookup("proteases"))
	viper.BindPFlag("digest.missed-cleavages", digestCmd.Flags().Lookup("missed-cleavages"))
	viper.BindPFlag("digest.min-length", digestCmd.Flags().Lookup("min-length"))
	viper.BindPFlag("digest.max-length", digestCmd.Flags().Lookup("max-length"))
}

func runDigest(cmd *cobra.Command, args []string) {
	c := config.New()

	var prots []proteomics.Protease
	for _, name := range strings.Split(c.Digest.Proteases, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		prot, ok := proteomics.GetProtease(name)
		if !ok {
			stderr.Fatalf("unknown protease %q. see 'csmsl proteases' for the available ones\n", name)
		}
		prots = append(prots, prot)
	}

	p, err := proteomics.NewPolymer(args[0])
	if err != nil {
		stderr.Fatal(err)
	}

	peptides, err := p.Digest(prots, c.Digest.MissedCleavages, c.Digest.MinLength, c.Digest.MaxLength)
	if err != nil {
		stderr.Fatal(err)
	}

	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "peptide\tstart\tend\tmass\n")
	for _, pep := range peptides {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.5f\n", pep.SequenceWithModifications(), pep.StartResidue(), pep.EndResidue(), pep.MonoisotopicMass())
	}
	w.Flush()
}
