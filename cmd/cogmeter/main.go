package main

import (
	stdcontext "context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/pescuma/cogmeter/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" help:"Workspace to store data: a .sqlite file or mysql:<dsn>. Default is ./.cogmeter or ~/.cogmeter if that does not exist."`

	Compute ComputeCmd `cmd:"" help:"Compute the cognitive complexity of the functions inside the given paths."`
	Show    ShowCmd    `cmd:"" help:"Show the most complex functions."`
	Serve   ServeCmd   `cmd:"" help:"Serve the results as a JSON API."`

	Config struct {
		Set ConfigSetCmd `cmd:"" help:"Set configuration parameters."`
	} `cmd:""`
}

type context struct {
	ctx stdcontext.Context
	ws  *workspace.Workspace
}

func main() {
	kctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := workspace.NewWorkspace(cli.Workspace)
	kctx.FatalIfErrorf(err)

	c, stop := signal.NotifyContext(stdcontext.Background(), os.Interrupt)

	err = kctx.Run(&context{
		ctx: c,
		ws:  ws,
	})

	stop()
	_ = ws.Close()

	kctx.FatalIfErrorf(err)
}
