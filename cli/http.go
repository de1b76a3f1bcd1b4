package cli

import (
	"context"
	"log"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/geoconv/geoconv/api"
	"github.com/geoconv/geoconv/app"
)

func HTTPHandle(ctx context.Context, a *app.App, args []string) {
	addr := a.Config().HTTPAddr
	if addr == "" {
		addr = "localhost:8080"
	}

	set := pflag.NewFlagSet("http", pflag.ExitOnError)
	set.StringVarP(&addr, "addr", "a", addr, "Listen address.")
	set.Parse(args)

	if addr == "" {
		set.Usage()
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return api.ListenAndServe(ctx, a, addr) })
	g.Go(func() error {
		if err := a.WatchConfig(ctx); err != nil {
			log.Println(err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Println(err)
	}
}
