package console

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/internal/tui/console"
)

func NewCmdConsole(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "console",
		Aliases: []string{"c"},
		Short:   "Open the full-screen authoring console",
		Long: heredoc.Doc(`
			Open the two-pane console: the sidebar lists every mode grouped by
			category, and the preview pane renders the selected mode's reference
			document. Drag modes between categories with the mouse, or cut and
			paste them with the keyboard; the arrangement is saved as you go.
		`),
		Example: "studio console",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := console.Run(s); err != nil {
				return err
			}
			return nil
		},
	}

	return cmd
}
