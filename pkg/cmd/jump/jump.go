package jump

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/studio/internal/fzf"
	"github.com/Paintersrp/studio/internal/state"
)

func NewCmdJump(s *state.State) *cobra.Command {
	var query string
	var printOnly bool

	cmd := &cobra.Command{
		Use:     "jump",
		Aliases: []string{"j"},
		Short:   "Fuzzy-find a mode and make it active",
		Long: heredoc.Doc(`
			Jump opens a fuzzy finder over every mode in the catalog, listed in
			the same order the sidebar shows them. Picking a mode saves it as
			the active mode, so the console opens on it next time. With --print
			the chosen id goes to stdout instead, for scripting.
		`),
		Example: heredoc.Doc(`
			studio jump
			studio jump --query flash
			studio jump --print
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("jump needs an interactive terminal")
			}
			finder := fzf.NewFuzzyFinder(s, "Jump to mode")
			id, err := finder.RunWithQuery(query, !printOnly)
			if err != nil {
				return err
			}
			if printOnly {
				fmt.Println(id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Seed the finder with an initial query")
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print the selected mode id instead of activating it")

	return cmd
}
