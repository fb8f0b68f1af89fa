package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/session"
)

// viewCommand creates the view command, the interactive model browser.
func (c *CLI) viewCommand() *cobra.Command {
	var expandDepth int

	cmd := &cobra.Command{
		Use:   "view <file>...",
		Short: "Browse and edit models interactively",
		Long: `Browse models in an interactive terminal UI.

The left pane shows the spatial hierarchy of every open file, the
right pane the attributes, property sets and quantities of the
selected entity. Scalar attributes can be edited in place and saved
back with ctrl+s. Multiple files open side by side in one session.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(args, expandDepth)
		},
	}

	cmd.Flags().IntVar(&expandDepth, "depth", -1, "initial expansion depth (default from settings)")

	return cmd
}

func (c *CLI) runView(paths []string, expandDepth int) error {
	sess := session.New()
	for _, path := range paths {
		if _, err := sess.Open(path); err != nil {
			return err
		}
	}

	cfg := c.loadSettings()
	if expandDepth < 0 {
		expandDepth = cfg.TUI.ExpandDepth
	}
	for _, doc := range sess.Documents() {
		cfg.AddRecent(doc.Path())
	}
	c.saveSettings(cfg)

	model, err := newViewModel(sess, expandDepth)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
