package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/color"
	"github.com/tvdbx/tvdbx/details"
	"github.com/tvdbx/tvdbx/inline"
	"github.com/tvdbx/tvdbx/key"
	"github.com/tvdbx/tvdbx/model"
	"github.com/tvdbx/tvdbx/open"
	"github.com/tvdbx/tvdbx/style"
	"github.com/tvdbx/tvdbx/util"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("episode", "e", "", "Show episodes whose name matches the query")
	inspectCmd.Flags().IntP("season", "s", -1, "Show the episodes of a season")
	inspectCmd.Flags().StringP("open", "o", "", "Open the first listed artwork of a type: fanart, poster, season or series")
	inspectCmd.Flags().BoolP("cast", "c", false, "List the cast in billing order")
	inspectCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	lo.Must0(inspectCmd.RegisterFlagCompletionFunc("open", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"fanart", "poster", "season", "series"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <dir>",
	Short: "Show series details extracted to a directory",
	Long: `Show series details extracted to a directory.

The directory holds actors.xml, banners.xml and <language>.xml, as written by
"tvdbx series" into the downloads directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bundle, err := details.New(args[0], language())
		handleErr(err)
		defer util.Ignore(bundle.Close)

		if kind := lo.Must(cmd.Flags().GetString("open")); kind != "" {
			t := model.ParseBannerType(kind)
			banner, ok := bundle.Banner(t).Get()
			if t == model.BannerUnknown || !ok {
				handleErr(fmt.Errorf("no %s artwork", kind))
			}

			handleErr(open.Artwork(nil, banner.BannerPath))
			return
		}

		if lo.Must(cmd.Flags().GetBool("cast")) {
			fmt.Print(castList(bundle.Actors()))
			return
		}

		series := bundle.Series()
		if series == nil {
			handleErr(fmt.Errorf("%s has no series record", args[0]))
		}

		episodes, filtered := inspectedEpisodes(cmd, series)

		if lo.Must(cmd.Flags().GetBool("json")) {
			d := inline.DetailsOf(bundle)
			if filtered {
				d.Series.Episodes = episodes
			}
			handleErr(inline.Write(os.Stdout, &inline.Output{Details: []*inline.Details{d}}))
			return
		}

		if !filtered {
			fmt.Print(summary(bundle))
			return
		}

		for i, e := range episodes {
			fmt.Print(describeEpisode(e))
			if i < len(episodes)-1 {
				fmt.Println()
			}
		}
	},
}

func inspectedEpisodes(cmd *cobra.Command, series *model.Series) (episodes []*model.Episode, filtered bool) {
	episodes = series.Episodes

	if season := lo.Must(cmd.Flags().GetInt("season")); season >= 0 {
		episodes, filtered = series.Season(season), true
	}

	if q := lo.Must(cmd.Flags().GetString("episode")); q != "" {
		names := lo.Map(episodes, func(e *model.Episode, _ int) string { return e.Name })
		ranks := fuzzy.RankFindFold(q, names)
		sort.Sort(ranks)

		episodes = lo.Map(ranks, func(r fuzzy.Rank, _ int) *model.Episode {
			return episodes[r.OriginalIndex]
		})
		filtered = true
	}

	return
}

func describeEpisode(e *model.Episode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n",
		style.Fg(color.Yellow)(e.Code()),
		style.Bold(e.Name),
		style.Rating(e.Rating),
	)

	var meta []string
	if e.Aired() {
		meta = append(meta, e.FirstAired.Format("2006-01-02"))
	}
	if e.Director != "" {
		meta = append(meta, "directed by "+e.Director)
	}
	if e.Writer != "" {
		meta = append(meta, "written by "+e.Writer)
	}
	if len(meta) > 0 {
		b.WriteString(style.Faint(strings.Join(meta, ", ")))
		b.WriteString("\n")
	}

	if e.Overview != "" {
		b.WriteString(util.Wrap(e.Overview, viper.GetInt(key.CliWrapWidth)))
		b.WriteString("\n")
	}

	return b.String()
}

// castList prints actors in billing order, one per line.
func castList(actors []*model.Actor) string {
	if len(actors) == 0 {
		return style.Faint("No cast listed") + "\n"
	}

	billed := slices.Clone(actors)
	model.SortActors(billed)

	var b strings.Builder
	for _, a := range billed {
		b.WriteString(style.Bold(a.Name))
		if a.Role != "" {
			b.WriteString(style.Faint(" as " + a.Role))
		}
		b.WriteString("\n")
	}

	return b.String()
}
