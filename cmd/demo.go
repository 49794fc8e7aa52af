package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/config"
	"github.com/OneTapDeploy/ListView-Hover-Creator/internal/listdata"
	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/monitor"
)

var demoRows int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive hover demo",
	Long: `Opens two scrollable list panes and tracks hover across them. Park the
pointer on a row and scroll with the wheel: the highlight stays on the row
actually under the cursor.

Rows come from the demo database when one is configured (see "lvhover
initdb"), otherwise they are generated.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoRows, "rows", 64, "generated rows per pane when no database is configured")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo needs an interactive terminal")
	}

	settings, err := config.Load(getBaseDir())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	var contacts, tasks []listdata.Row
	if settings.DatabasePath != "" {
		contacts, tasks, err = listdata.LoadDB(cmd.Context(), settings.DatabasePath)
		if err != nil {
			return fmt.Errorf("load demo database: %w", err)
		}
	} else {
		contacts = listdata.Contacts(demoRows)
		tasks = listdata.Tasks(demoRows)
	}

	model, err := monitor.New(settings, getBaseDir(), contacts, tasks)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(context.Background()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
