// Command postwire is a small operator CLI around the postwire codec: it
// exercises the COBS/CRC framing, the schema hash/print tools, and a
// varint size helper from outside the core package, the way a debug tool
// sits alongside a wire format without becoming part of its contract.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.WithError(err).Error("postwire command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "postwire",
		Short: "Inspect and frame postwire-encoded data",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSizeCmd(),
		newCompressCmd(),
		newDecompressCmd(),
		newTraceCmd(),
		newSchemaCmd(),
	)
	return root
}
