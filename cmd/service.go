package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/auth"
	"github.com/tvdbx/tvdbx/constant"
	"github.com/tvdbx/tvdbx/icon"
	"github.com/tvdbx/tvdbx/key"
	"github.com/tvdbx/tvdbx/model"
	"github.com/tvdbx/tvdbx/util"
	"github.com/tvdbx/tvdbx/web"
)

var errNoMirror = errors.New("no mirror serves xml, banners and zip bundles")

// newClient builds a service client from the configured API key.
func newClient() *web.Client {
	apiKey, err := auth.APIKey()
	handleErr(err)

	return web.New(apiKey, web.WithRootURL(viper.GetString(key.APIRootURL)))
}

// language is the --language flag, the api.language key or the default.
func language() string {
	if lang := viper.GetString(key.APILanguage); lang != "" {
		return lang
	}
	return constant.DefaultLanguage
}

// resolveMirror returns the --mirror address or discovers the default mirror.
// Progress is only printed when quiet is false.
func resolveMirror(ctx context.Context, cmd *cobra.Command, client *web.Client, quiet bool) *model.Mirror {
	if address, _ := cmd.Flags().GetString("mirror"); address != "" {
		mirror := model.NewMirror()
		mirror.Address = address
		mirror.SetTypeMask(model.MaskAll)
		return mirror
	}

	erase := func() {}
	if !quiet {
		erase = util.PrintErasable(fmt.Sprintf("%s Discovering mirrors...", icon.Get(icon.Progress)))
	}
	_, err := client.Mirrors(ctx)
	erase()
	handleErr(err)

	mirror := client.DefaultMirror()
	if mirror == nil {
		handleErr(errNoMirror)
	}

	return mirror
}

// contextOf returns the context cmd was executed with.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
