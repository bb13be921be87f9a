// Package cli implements the articod-cli command tree. Commands talk to a
// running catalog server over its HTTP API; resource files are YAML and are
// converted to the API's JSON on the way out.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	serverURL string
	authToken string
)

var rootCmd = &cobra.Command{
	Use:   "articod-cli",
	Short: "Command line client for the articod catalog server",
	Long: `articod-cli manages catalog objects (families, variants, product types,
products, technical characteristics) and mints generated entries against a
running articod server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8196", "base URL of the catalog server")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "bearer token for authentication")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
