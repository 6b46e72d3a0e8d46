package orgMove

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/state"
	cmdpkg "github.com/Paintersrp/studio/pkg/cmd"
)

func NewCmdMove(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move <mode> <category> [position]",
		Aliases: []string{"mv"},
		Short:   "Move a mode into a category",
		Long: heredoc.Doc(`
			Move places a mode into a category, appending when no position is
			given. Positions are 1-based within the target category; anything
			past the end is clamped. Use "uncategorized" to pull a mode out of
			every category.
		`),
		Example: heredoc.Doc(`
			studio org move flashcards workspace
			studio org move flashcards workspace 1
			studio org move rewriter uncategorized
		`),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, args)
		},
	}

	return cmd
}

func run(s *state.State, args []string) error {
	modeID, err := cmdpkg.ResolveMode(s, args[0])
	if err != nil {
		return err
	}
	categoryID, err := cmdpkg.ResolveCategory(s, args[1])
	if err != nil {
		return err
	}

	// Append unless a 1-based position was given; the store clamps.
	index := len(s.Organizer.Snapshot().Features)
	if len(args) == 3 {
		pos, err := strconv.Atoi(args[2])
		if err != nil || pos < 1 {
			return fmt.Errorf("position must be a positive number, got %q", args[2])
		}
		index = pos - 1
	}

	if !s.Organizer.MoveFeature(modeID, categoryID, index) {
		return fmt.Errorf("could not move %s into %s", modeID, categoryID)
	}

	fmt.Printf("Moved %s to %s.\n", modeID, s.Catalog.Label(categoryID))
	return nil
}
