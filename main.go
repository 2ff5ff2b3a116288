package main

import (
	"github.com/samber/lo"
	"github.com/tvdbx/tvdbx/cmd"
	"github.com/tvdbx/tvdbx/config"
	"github.com/tvdbx/tvdbx/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
