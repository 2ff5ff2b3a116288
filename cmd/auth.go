package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tvdbx/tvdbx/auth"
	"github.com/tvdbx/tvdbx/color"
	"github.com/tvdbx/tvdbx/icon"
	"github.com/tvdbx/tvdbx/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the API key stored in the system keyring",
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("key", "k", "", "API key to store instead of prompting for it")
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the API key issued by thetvdb.com",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := lo.Must(cmd.Flags().GetString("key"))

		if apiKey == "" {
			handleErr(survey.AskOne(&survey.Password{
				Message: "API key",
			}, &apiKey, survey.WithValidator(survey.Required)))
		}

		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			handleErr(errors.New("API key must not be empty"))
		}

		handleErr(auth.SetAPIKey(apiKey))
		fmt.Printf("%s API key saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authGetCmd)
	authGetCmd.Flags().BoolP("reveal", "r", false, "Print the whole key instead of masking it")
}

var authGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored API key",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, err := auth.GetAPIKey()
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("reveal")) {
			apiKey = mask(apiKey)
		}

		fmt.Println(apiKey)
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the stored API key",
	Aliases: []string{"remove"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteAPIKey())
		fmt.Printf("%s API key deleted\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

// mask hides all but the last four characters of apiKey.
func mask(apiKey string) string {
	if len(apiKey) <= 4 {
		return strings.Repeat("*", len(apiKey))
	}
	return strings.Repeat("*", len(apiKey)-4) + apiKey[len(apiKey)-4:]
}
