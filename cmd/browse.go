package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tvdbx/tvdbx/details"
	"github.com/tvdbx/tvdbx/tui"
	"github.com/tvdbx/tvdbx/util"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse <dir>",
	Short: "Browse the seasons and episodes of series details extracted to a directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bundle, err := details.New(args[0], language())
		handleErr(err)
		defer util.Ignore(bundle.Close)

		handleErr(tui.Run(&tui.Options{Details: bundle}))
	},
}
