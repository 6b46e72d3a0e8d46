package org

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/pkg/cmd/org/orgBackup"
	"github.com/Paintersrp/studio/pkg/cmd/org/orgExport"
	"github.com/Paintersrp/studio/pkg/cmd/org/orgMove"
	"github.com/Paintersrp/studio/pkg/cmd/org/orgMoveCategory"
	"github.com/Paintersrp/studio/pkg/cmd/org/orgReset"
	"github.com/Paintersrp/studio/pkg/cmd/org/orgRestore"
	"github.com/Paintersrp/studio/pkg/cmd/org/orgShow"
	"github.com/Paintersrp/studio/pkg/cmd/org/orgToggle"
)

func NewCmdOrg(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "org",
		Aliases: []string{"o"},
		Short:   "Inspect and edit the sidebar arrangement",
		Long: heredoc.Doc(`
			Inspect and edit the sidebar arrangement without opening the console.
			Changes are written through the same store the console uses, so the
			two always agree.
		`),
		// Print the arrangement by default when no subcommand is given.
		RunE: orgShow.NewCmdShow(s).RunE,
	}

	cmd.AddCommand(
		orgShow.NewCmdShow(s),
		orgMove.NewCmdMove(s),
		orgMoveCategory.NewCmdMoveCategory(s),
		orgToggle.NewCmdToggle(s),
		orgReset.NewCmdReset(s),
		orgExport.NewCmdExport(s),
		orgBackup.NewCmdBackup(s),
		orgRestore.NewCmdRestore(s),
	)

	return cmd
}
