package flags

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func AddClipboard(cmd *cobra.Command) {
	cmd.Flags().
		BoolP("clipboard", "c", false, "Copy the output to the clipboard instead of printing it")
}

func HandleClipboard(cmd *cobra.Command, content string) (bool, error) {
	copyFlag, _ := cmd.Flags().GetBool("clipboard")
	if !copyFlag {
		return false, nil
	}
	return true, clipboard.WriteAll(content)
}
