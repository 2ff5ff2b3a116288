package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/color"
	"github.com/tvdbx/tvdbx/details"
	"github.com/tvdbx/tvdbx/icon"
	"github.com/tvdbx/tvdbx/inline"
	"github.com/tvdbx/tvdbx/key"
	"github.com/tvdbx/tvdbx/model"
	"github.com/tvdbx/tvdbx/style"
	"github.com/tvdbx/tvdbx/util"
)

func init() {
	rootCmd.AddCommand(seriesCmd)

	seriesCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
}

var seriesCmd = &cobra.Command{
	Use:   "series <id>",
	Short: "Download the full record of a series with its episodes, cast and artwork",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			handleErr(fmt.Errorf("invalid series id: %s", args[0]))
		}

		var (
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			client = newClient()
			mirror = resolveMirror(cmd.Context(), cmd, client, asJson)
		)

		erase := func() {}
		if !asJson {
			erase = util.PrintErasable(fmt.Sprintf("%s Downloading series %d...", icon.Get(icon.Progress), id))
		}
		bundle, err := client.FullSeries(cmd.Context(), id, language(), mirror)
		erase()
		handleErr(err)
		if bundle == nil {
			handleErr(fmt.Errorf("series %d could not be downloaded", id))
		}
		defer util.Ignore(bundle.Close)

		if asJson {
			handleErr(inline.Write(os.Stdout, &inline.Output{Details: []*inline.Details{inline.DetailsOf(bundle)}}))
			return
		}

		fmt.Print(summary(bundle))
	},
}

// summary renders the overview of downloaded or extracted series details.
func summary(d *details.SeriesDetails) string {
	var (
		b       strings.Builder
		series  = d.Series()
		heading = style.New().Bold(true).Foreground(color.Purple).Render
		width   = viper.GetInt(key.CliWrapWidth)
	)

	if series == nil {
		return style.Faint("No series record") + "\n"
	}

	b.WriteString(style.Title(series.Name))
	b.WriteString(" ")
	b.WriteString(style.Rating(series.Rating))
	b.WriteString("\n\n")

	row := func(name, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", heading(fmt.Sprintf("%-10s", name)), value)
	}

	row("ID", strconv.Itoa(series.ID))
	if series.Aired() {
		row("Aired", series.FirstAired.Format("2006-01-02"))
	}
	row("Network", series.Network)
	row("Status", series.Status)
	row("Genre", series.Genre)
	row("Airs", strings.TrimSpace(series.AirsDayOfWeek+" "+series.AirsTime))

	seasons := lo.Filter(series.Seasons(), func(n, _ int) bool { return n > 0 })
	row("Seasons", strconv.Itoa(len(seasons)))
	row("Episodes", util.Quantify(len(series.Episodes), "episode", "episodes"))
	row("Cast", util.Quantify(len(d.Actors()), "actor", "actors"))
	row("Artwork", util.Quantify(len(d.Banners()), "banner", "banners"))

	if poster, ok := d.Banner(model.BannerPoster).Get(); ok {
		row("Poster", poster.BannerPath)
	}
	row("Location", d.Dir())

	if series.Overview != "" {
		b.WriteString("\n")
		b.WriteString(util.Wrap(series.Overview, width))
		b.WriteString("\n")
	}

	return b.String()
}
