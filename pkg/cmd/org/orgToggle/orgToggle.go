package orgToggle

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/state"
	cmdpkg "github.com/Paintersrp/studio/pkg/cmd"
)

func NewCmdToggle(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle <category>",
		Aliases: []string{"t"},
		Short:   "Collapse or expand a category",
		Long: heredoc.Doc(`
			Toggle flips a category between collapsed and expanded. Collapsed
			categories hide their modes in the sidebar but keep their
			arrangement.
		`),
		Example: "studio org toggle workspace",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, args)
		},
	}

	return cmd
}

func run(s *state.State, args []string) error {
	categoryID, err := cmdpkg.ResolveCategory(s, args[0])
	if err != nil {
		return err
	}

	if !s.Organizer.ToggleCollapsed(categoryID) {
		return fmt.Errorf("%s cannot be collapsed", s.Catalog.Label(categoryID))
	}

	category, _ := s.Organizer.Snapshot().CategoryByID(categoryID)
	word := "Expanded"
	if category.Collapsed {
		word = "Collapsed"
	}
	fmt.Printf("%s %s.\n", word, category.Label)
	return nil
}
