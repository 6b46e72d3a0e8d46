package orgMoveCategory

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/state"
	cmdpkg "github.com/Paintersrp/studio/pkg/cmd"
)

func NewCmdMoveCategory(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move-category <category> <position>",
		Aliases: []string{"mvc"},
		Short:   "Reorder a category within the sidebar",
		Long: heredoc.Doc(`
			Move a category to a new 1-based position in the sidebar sequence.
			The uncategorized bucket always stays at the bottom and cannot be
			reordered.
		`),
		Example: "studio org move-category interactive 1",
		Args:    cobra.ExactArgs(2),
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

	pos, err := strconv.Atoi(args[1])
	if err != nil || pos < 1 {
		return fmt.Errorf("position must be a positive number, got %q", args[1])
	}

	if !s.Organizer.MoveCategory(categoryID, pos-1) {
		return fmt.Errorf("%s cannot be reordered", s.Catalog.Label(categoryID))
	}

	// Report where the category actually landed after clamping.
	for i, c := range s.Organizer.Snapshot().OrderedCategories() {
		if c.ID == categoryID {
			fmt.Printf("Moved %s to position %d.\n", c.Label, i+1)
			break
		}
	}
	return nil
}
