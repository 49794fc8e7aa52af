package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/config"
	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/listdata"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb [path]",
	Short: "Create and seed the demo row database",
	Long: `Creates a SQLite database with contact and task rows for the demo and
records its path in the settings, so subsequent "lvhover demo" runs load
rows from it instead of generating them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitDB,
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}

func runInitDB(cmd *cobra.Command, args []string) error {
	path := filepath.Join(getBaseDir(), "rows.db")
	if len(args) == 1 {
		path = args[0]
	}

	settings, err := config.Load(getBaseDir())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	if err := listdata.InitDB(cmd.Context(), path); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	settings.DatabasePath = path
	if err := config.Save(getBaseDir(), settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	fmt.Printf("Seeded demo database at %s\n", path)
	return nil
}
