package root

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/pkg/cmd/console"
	"github.com/Paintersrp/studio/pkg/cmd/initialize"
	"github.com/Paintersrp/studio/pkg/cmd/jump"
	"github.com/Paintersrp/studio/pkg/cmd/org"
	"github.com/Paintersrp/studio/pkg/cmd/settings"
)

var backendName string

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Arrange and launch the studio authoring modes from the terminal.",
		Long: `A terminal console for the studio authoring modes: arrange the sidebar
by dragging modes between categories, preview each mode's reference
document, and jump straight to a mode from the shell.

  studio                              open the console
  studio jump -q re                   fuzzy-find a mode matching "re"
  studio org move flashcards workspace 1
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Applied after flag parsing so --backend reaches every command.
			return s.UseBackend(backendName)
		},
		// Run the console tui by default, or leave as help?
		RunE: console.NewCmdConsole(s).RunE,
	}

	cmd.PersistentFlags().
		StringVarP(
			&backendName,
			"backend",
			"b",
			"",
			"Storage backend for this run: file, memory, or postgres.",
		)
	viper.BindPFlag("backend", cmd.PersistentFlags().Lookup("backend"))

	// Add Child Commands to Root
	cmd.AddCommand(
		initialize.NewCmdInit(s.Config),
		console.NewCmdConsole(s),
		jump.NewCmdJump(s),
		org.NewCmdOrg(s),
		settings.NewCmdSettings(s.Config),
	)

	return cmd, nil
}
