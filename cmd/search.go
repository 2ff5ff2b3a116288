package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/inline"
	"github.com/tvdbx/tvdbx/key"
	"github.com/tvdbx/tvdbx/log"
	"github.com/tvdbx/tvdbx/model"
	"github.com/tvdbx/tvdbx/query"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	searchCmd.Flags().IntP("limit", "n", 0, "Maximum number of series to list")
	lo.Must0(viper.BindPFlag(key.SearchLimit, searchCmd.Flags().Lookup("limit")))

	searchCmd.Flags().StringP("series", "s", "", "Criteria for selecting a series from the results")
	searchCmd.Flags().BoolP("pick", "p", false, "Pick a series interactively")
	searchCmd.Flags().BoolP("closest", "c", false, "Pick the series whose name is closest to the query")
	searchCmd.MarkFlagsMutuallyExclusive("series", "pick", "closest")

	searchCmd.Flags().BoolP("full", "f", false, "Download the bundle of each picked series and list its episodes")
	searchCmd.Flags().StringP("episodes", "e", "", "Criteria for selecting episodes of downloaded series")
}

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search series by name",
	Long: `Search series by name and print the matches.

Series selectors:
  first - first series in the list
  last - last series in the list
  exact - series named exactly like the query
  [number] - select series by index (starting from 0)

Episode selectors:
  first - first episode in the list
  last - last episode in the list
  all - all episodes in the list
  [number] - select episode by index (starting from 0)
  [from]-[to] - select episodes by range
  S[season] - all episodes of a season
  S[season]E[episode] - a single episode by its code
  @[substring]@ - select episodes by name substring`,
	Example: "  tvdbx search castle --closest --full --episodes S01",
	Args:    cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	PreRun: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("episodes") && !lo.Must(cmd.Flags().GetBool("full")) {
			handleErr(errors.New("--episodes requires --full"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			name   = strings.Join(args, " ")
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			client = newClient()
		)

		if err := query.Remember(name, 1); err != nil {
			log.Warn(err)
		}

		picker := mo.None[inline.SeriesPicker]()
		switch {
		case cmd.Flags().Changed("series"):
			fn, err := inline.ParseSeriesPicker(lo.Must(cmd.Flags().GetString("series")), name)
			handleErr(err)
			picker = mo.Some(fn)
		case lo.Must(cmd.Flags().GetBool("closest")):
			picker = mo.Some(closestTo(name))
		case lo.Must(cmd.Flags().GetBool("pick")):
			picker = mo.Some[inline.SeriesPicker](pickInteractively)
		}

		filter := mo.None[inline.EpisodesFilter]()
		if description := lo.Must(cmd.Flags().GetString("episodes")); description != "" {
			fn, err := inline.ParseEpisodesFilter(description)
			handleErr(err)
			filter = mo.Some(fn)
		}

		handleErr(inline.Run(cmd.Context(), &inline.Options{
			Out:            os.Stdout,
			Client:         client,
			Mirror:         resolveMirror(cmd.Context(), cmd, client, asJson),
			Language:       language(),
			Json:           asJson,
			Query:          name,
			Limit:          viper.GetInt(key.SearchLimit),
			Full:           lo.Must(cmd.Flags().GetBool("full")),
			SeriesPicker:   picker,
			EpisodesFilter: filter,
		}))
	},
}

func closestTo(name string) inline.SeriesPicker {
	name = strings.ToLower(name)
	distance := func(s *model.Series) int {
		return levenshtein.Distance(name, strings.ToLower(s.Name))
	}

	return func(series []*model.Series) *model.Series {
		if len(series) == 0 {
			return nil
		}

		return lo.MinBy(series, func(a, b *model.Series) bool {
			return distance(a) < distance(b)
		})
	}
}

func pickInteractively(series []*model.Series) *model.Series {
	if len(series) == 0 {
		return nil
	}

	options := lo.Map(series, func(s *model.Series, _ int) string {
		if s.Aired() {
			return s.Name + " (" + s.FirstAired.Format("2006") + ")"
		}
		return s.Name
	})

	var index int
	err := survey.AskOne(&survey.Select{
		Message: "Pick a series",
		Options: options,
	}, &index)
	if errors.Is(err, terminal.InterruptErr) {
		os.Exit(0)
	}
	handleErr(err)

	return series[index]
}
