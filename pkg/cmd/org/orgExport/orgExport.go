package orgExport

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/organizer"
	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/pkg/shared/flags"
)

func NewCmdExport(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export",
		Aliases: []string{"e"},
		Short:   "Print the arrangement document as JSON",
		Long: heredoc.Doc(`
			Export writes the arrangement in the same JSON shape the store
			persists, suitable for keeping in dotfiles or feeding back to
			restore on another machine.
		`),
		Example: heredoc.Doc(`
			studio org export > sidebar.json
			studio org export --clipboard
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := organizer.EncodeDocument(s.Organizer.Snapshot())
			if err != nil {
				return err
			}

			copied, err := flags.HandleClipboard(cmd, string(raw))
			if err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			if copied {
				fmt.Println("Arrangement copied to clipboard.")
				return nil
			}

			fmt.Println(string(raw))
			return nil
		},
	}

	flags.AddClipboard(cmd)

	return cmd
}
