package orgShow

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/organizer"
	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/utils"
)

func NewCmdShow(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"ls"},
		Short:   "Print the sidebar arrangement as a tree",
		Long: heredoc.Doc(`
			Show prints every category in sidebar order with the modes it holds.
			Collapsed categories are marked, the active mode carries a star, and
			modes pulled out of every category appear under Uncategorized at the
			bottom.
		`),
		Example: heredoc.Doc(`
			studio org show
			studio org
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s)
		},
	}

	return cmd
}

func run(s *state.State) error {
	snap := s.Organizer.Snapshot()
	width := utils.TerminalWidth()

	for _, category := range snap.OrderedCategories() {
		printCategory(s, category.Label, categoryMarker(category), snap.FeaturesIn(category.ID), width)
	}

	if stray := snap.FeaturesIn(organizer.UncategorizedID); len(stray) > 0 {
		printCategory(s, s.Catalog.Label(organizer.UncategorizedID), "", stray, width)
	}

	return nil
}

func categoryMarker(c organizer.Category) string {
	if c.Collapsed {
		return " (collapsed)"
	}
	return ""
}

func printCategory(s *state.State, label, marker string, features []organizer.Feature, width int) {
	fmt.Printf("%s%s\n", label, marker)

	for i, feature := range features {
		mode, ok := s.Catalog.Mode(feature.ID)
		if !ok {
			continue
		}

		prefix := "  "
		if mode.ID == s.Config.ActiveMode {
			prefix = "* "
		}

		line := fmt.Sprintf("%s%d. %s (%s)", prefix, i+1, mode.Label, mode.ID)
		if mode.Description != "" {
			line += " - " + mode.Description
		}
		fmt.Println(truncate(line, width))
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 1 || len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
