package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tvdbx/tvdbx/color"
	"github.com/tvdbx/tvdbx/icon"
	"github.com/tvdbx/tvdbx/inline"
	"github.com/tvdbx/tvdbx/model"
	"github.com/tvdbx/tvdbx/style"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(mirrorsCmd)
	mirrorsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
}

var mirrorsCmd = &cobra.Command{
	Use:   "mirrors",
	Short: "List the mirrors advertised by the service",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		mirrors, err := client.Mirrors(cmd.Context())
		handleErr(err)
		mirrors = ordered(mirrors)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(inline.Write(os.Stdout, &inline.Output{Mirrors: mirrors}))
			return
		}

		if len(mirrors) == 0 {
			fmt.Println(style.Faint("No mirrors advertised"))
			return
		}

		for _, m := range mirrors {
			marker := " "
			if m == client.DefaultMirror() {
				marker = style.Fg(color.Green)(icon.Get(icon.Mark))
			}

			fmt.Printf("%s %s %s\n", marker, m.Address, style.Faint(capabilities(m)))
		}
	},
}

// ordered returns a copy of mirrors sorted by descending ID.
func ordered(mirrors []*model.Mirror) []*model.Mirror {
	sorted := slices.Clone(mirrors)
	model.SortMirrors(sorted)
	return sorted
}

func capabilities(m *model.Mirror) string {
	flag := func(has bool, name string) string {
		if has {
			return name
		}
		return "-"
	}

	return fmt.Sprintf("[%s %s %s]",
		flag(m.ContainsXMLFile, "xml"),
		flag(m.ContainsBannerFile, "banner"),
		flag(m.ContainsZipFile, "zip"),
	)
}
