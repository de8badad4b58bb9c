package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "productapi",
	Short: "Product catalogue HTTP service",
	Long:  "productapi serves create/read/update/delete operations over a products table",
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "productapi.yml", "Path to the optional YAML config file")
}
