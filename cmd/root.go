package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/luma/skiff/cmd/gen"
)

var rootCmd = &cobra.Command{
	Use:   "skiff",
	Short: "Skiff is a client for RESP key/value servers",
	Long: `Skiff is a client for RESP key/value servers.

It ships a library (the interesting part), a one-shot command runner,
and an HTTP gateway that fronts a server through the client.
`,
}

func init() {
	rootCmd.AddCommand(GatewayCmd)
	rootCmd.AddCommand(CallCmd)
	rootCmd.AddCommand(gen.RootCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
