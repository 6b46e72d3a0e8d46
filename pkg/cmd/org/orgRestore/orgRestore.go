package orgRestore

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/internal/sync"
)

func NewCmdRestore(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restore [key]",
		Aliases: []string{"r"},
		Short:   "Download an arrangement backup and install it",
		Long: heredoc.Doc(`
			Restore downloads a backup from the configured bucket and installs
			it as the current arrangement. Without a key the most recent backup
			is used; run 'studio org backup --list' to see the stored keys.
			The document is reconciled against the catalog on the way in, so
			backups from older catalogs stay safe to restore.
		`),
		Example: heredoc.Doc(`
			studio org restore
			studio org restore backups/organization-20240818T090000Z.json
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			syncer, err := sync.NewSyncer(cmd.Context(), s.Config.Backup)
			if err != nil {
				return err
			}

			var key string
			if len(args) == 1 {
				key = args[0]
			}

			raw, resolved, err := syncer.Restore(cmd.Context(), key)
			if err != nil {
				return err
			}

			s.Organizer.RestoreDocument(raw)
			fmt.Printf("Restored arrangement from %s.\n", resolved)
			return nil
		},
	}

	return cmd
}
