package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "lvhover",
	Short: "Hover tracking for scrolling list views",
	Long: `lvhover - Keeps a list view's hover highlight on the row actually under
the pointer while content scrolls beneath a stationary cursor.

The bundled demo drives the engine against terminal list panes so the whole
pipeline (poll scheduler, scroll router, jiggle handshake) can be watched
live.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "settings directory (default ~/.config/lvhover)")
}

func initBaseDir() {
	if baseDir != "" {
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine home directory: %v\n", err)
		os.Exit(1)
	}
	baseDir = filepath.Join(home, ".config", "lvhover")
}

// getBaseDir returns the settings directory
func getBaseDir() string {
	return baseDir
}
