package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pankajredekar/productapi/internal/utils"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the products table",
	Long:  "Creates the products table if it does not exist yet, retrying the connection per bootstrap_retry",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}

		log, err := newLogger(cfg)
		if err != nil {
			utils.PrintError("Failed to create logger: %v", err)
			os.Exit(1)
		}

		if err := bootstrapSchema(context.Background(), cfg, log); err != nil {
			utils.PrintError("Failed to create products table: %v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Table 'products' checked/created")
	},
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}
