package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tvdbx/tvdbx/inline"
	"github.com/tvdbx/tvdbx/style"
)

func init() {
	rootCmd.AddCommand(remoteCmd)

	remoteCmd.Flags().String("imdb", "", "IMDb identifier, such as tt1219024")
	remoteCmd.Flags().String("zap2it", "", "Zap2it identifier, such as EP01085421")
	remoteCmd.MarkFlagsMutuallyExclusive("imdb", "zap2it")
	remoteCmd.MarkFlagsOneRequired("imdb", "zap2it")
	remoteCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Find a series by its IMDb or Zap2it identifier",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			imdb   = lo.Must(cmd.Flags().GetString("imdb"))
			zap2it = lo.Must(cmd.Flags().GetString("zap2it"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			client = newClient()
		)

		if imdb == "" && zap2it == "" {
			handleErr(errors.New("an identifier must not be empty"))
		}

		series, err := client.SeriesByRemoteID(cmd.Context(), imdb, zap2it, language(), resolveMirror(cmd.Context(), cmd, client, asJson))
		handleErr(err)

		if asJson {
			handleErr(inline.Write(os.Stdout, &inline.Output{Query: imdb + zap2it, Series: series}))
			return
		}

		if len(series) == 0 {
			fmt.Println(style.Faint("No series found"))
			return
		}

		for _, s := range series {
			fmt.Printf("%d\t%s\n", s.ID, s.Name)
		}
	},
}
