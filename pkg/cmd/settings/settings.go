package settings

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/studio/internal/config"
	"github.com/Paintersrp/studio/internal/tui/settings"
)

func NewCmdSettings(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "Interactive settings menu",
		Long:    "Adjust the storage backend, preview style, and sidebar defaults without editing the config file by hand.",
		Example: "studio settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return settings.Run(c)
		},
	}

	return cmd
}
