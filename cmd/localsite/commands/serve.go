package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/localsite/internal/server/httpserver"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address; defaults to server.addr"`
}

func (s *ServeCmd) Run(glob *Global, root *CLI) error {
	cfg, err := root.loadConfig(glob)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(cfg, httpserver.Options{Logger: glob.Logger})
	return srv.ListenAndServe(ctx, s.Addr)
}
