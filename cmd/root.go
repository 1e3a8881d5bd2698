// Package cmd is for command line interactions with the csmsl
// application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// stderr is for fatal command line errors
var stderr = log.New(os.Stderr, "", 0)

// RootCmd represents the base command when called without any
// subcommands
var RootCmd = &cobra.Command{
	Use: "csmsl",
	Short: `Peptide mass spectrometry calculations.
Compute monoisotopic masses, digest proteins with proteases and predict fragment ions`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
