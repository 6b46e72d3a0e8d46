package orgReset

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/state"
)

func NewCmdReset(s *state.State) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default arrangement",
		Long: heredoc.Doc(`
			Reset discards the saved arrangement and restores the catalog's
			default category layout. This cannot be undone.
		`),
		Example: heredoc.Doc(`
			studio org reset
			studio org reset --force
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				prompt := confirmation.New(
					"This discards your saved arrangement. Continue?",
					confirmation.No,
				)
				confirmed, err := prompt.RunPrompt()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Reset cancelled.")
					return nil
				}
			}

			s.Organizer.Reset()
			fmt.Println("Arrangement reset to defaults.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
