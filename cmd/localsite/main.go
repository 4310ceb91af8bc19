package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/localsite/cmd/localsite/commands"
	ferrors "git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{}

	ctx := kong.Parse(&cli,
		kong.Name("localsite"),
		kong.Description("Generate a small static website for a local business."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	if err := ctx.Run(global, &cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
