package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tvdbx/tvdbx/color"
	"github.com/tvdbx/tvdbx/inline"
	"github.com/tvdbx/tvdbx/style"
)

func init() {
	rootCmd.AddCommand(languagesCmd)
	languagesCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages records are available in",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		client := newClient()
		languages, err := client.Languages(cmd.Context(), resolveMirror(cmd.Context(), cmd, client, asJson))
		handleErr(err)

		if asJson {
			handleErr(inline.Write(os.Stdout, &inline.Output{Languages: languages}))
			return
		}

		for _, l := range languages {
			fmt.Printf("%s %s\n", style.Fg(color.Yellow)(fmt.Sprintf("%-3s", l.Abbreviation)), l.Name)
		}
	},
}
