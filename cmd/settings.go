package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the effective hover settings as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(getBaseDir())
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(settings)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
