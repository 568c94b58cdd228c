package cmd

import (
	"fmt"

	"github.com/rkjdid/termchart/funcs"
	"github.com/spf13/cobra"
)

var funcsCmd = &cobra.Command{
	Use:   "funcs",
	Short: "List available functions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range funcs.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
