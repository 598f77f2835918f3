package main

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "refnx",
	Short: "Neutron and X-ray reflectometry analysis",
	Long: `refnx analyses specular reflectometry data with slab models.

Describe the layer structure in a YAML model file, then:

  refnx calc model.yaml                 evaluate the model on a q grid
  refnx fit  model.yaml data.dat        refine it against measured data

Fitting uses differential evolution; add --sample to follow up with
MCMC posterior sampling of the varying parameters.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() {
	log.SetHandler(cli.New(os.Stderr))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
