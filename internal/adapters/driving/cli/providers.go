package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered revision providers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		root, err := filepath.Abs(flagRoot)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(root)
		if err != nil {
			return err
		}

		for _, reg := range buildRegistry(cfg).Registrations() {
			cmd.Printf("%-20s %s\n", reg.Pattern, reg.Provider.Name())
		}
		return nil
	},
}

func init() {
	providersCmd.Flags().StringVar(&flagRoot, "root", ".", "solution root directory")
	rootCmd.AddCommand(providersCmd)
}
