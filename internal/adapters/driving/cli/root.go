// Package cli implements the cobra command surface of sdfix.
// Commands drive the core services through the driving ports; no
// business logic lives here.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driven"
	"github.com/chemtab-labs/sdfix-cli/internal/core/ports/driving"
	"github.com/chemtab-labs/sdfix-cli/internal/logger"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

// Services injected by Execute.
var (
	converter   driving.Converter
	configStore driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sdfix",
	Short: "Repair SDF-like MoNA exports into standard SDF files",
	Long: `sdfix repairs SDF-like record files exported by the Massbank of
North America (MoNA). MoNA records omit mandatory molfile header lines
and the "M  END" end-of-structure marker, so standard SDF readers
reject them. sdfix rebuilds each molecule block, attaches INCHI and
INCHIKEY property sections and writes the repaired records back out.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if !verbose && configStore != nil {
			verbose = configStore.GetBool("verbose")
		}
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging to stderr")
}

// Execute wires the services into the command tree and runs it.
func Execute(conv driving.Converter, cfg driven.ConfigStore) error {
	converter = conv
	configStore = cfg
	return rootCmd.Execute()
}
