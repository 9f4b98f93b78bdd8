package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/thdelmas/PPP-Price-Converter/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := newApp(config.Load())
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("ppp: %v", err)
	}
}

func newApp(cfg config.Config) *cli.App {
	e := &env{cfg: cfg}

	return &cli.App{
		Name:  "ppp",
		Usage: "convert prices between countries by market rate and purchasing power parity",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug messages"},
			&cli.StringFlag{Name: "year", Value: cfg.ReferenceYear, Usage: "PPP dataset column to read"},
			&cli.StringFlag{Name: "dataset", Usage: "PPP dataset file path or http(s) URL"},
			&cli.StringFlag{Name: "cache", Value: cfg.RatesCache, Usage: "exchange rate cache: file, memory or postgres"},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})))
			return e.applyFlags(c)
		},
		After: func(_ *cli.Context) error {
			e.close()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "convert",
				Usage: "convert an amount from one country to another",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "amount", Aliases: []string{"a"}, Required: true},
					&cli.StringFlag{Name: "from", Usage: "origin country or currency code, e.g. USA or EUR", Required: true},
					&cli.StringFlag{Name: "to", Usage: "target country or currency code, e.g. IND or INR", Required: true},
				},
				Action: e.convertAction,
			},
			{
				Name:  "countries",
				Usage: "list countries with a PPP factor and a known currency",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "region", Usage: "only list countries of this region"},
				},
				Action: e.countriesAction,
			},
			{
				Name:  "rates",
				Usage: "show the exchange rate snapshot in use",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "refresh", Usage: "fetch from the network even if the cache is fresh"},
				},
				Action: e.ratesAction,
				Subcommands: []*cli.Command{
					{
						Name:  "watch",
						Usage: "refresh the rate cache periodically until interrupted",
						Flags: []cli.Flag{
							&cli.DurationFlag{Name: "interval", Value: cfg.RatesWatchInterval},
						},
						Action: e.watchAction,
					},
				},
			},
			{
				Name:  "export",
				Usage: "write the catalog, rates and optional conversions to a spreadsheet",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: formatXLSX, Usage: "xlsx or sheets"},
					&cli.StringFlag{Name: "out", Value: "ppp.xlsx", Usage: "xlsx output path"},
					&cli.StringFlag{Name: "sheet-id", Usage: "Google spreadsheet ID"},
					&cli.StringFlag{Name: "sheet", Value: "PPP", Usage: "sheet name"},
					&cli.Float64Flag{Name: "amount", Usage: "amount to convert for every country"},
					&cli.StringFlag{Name: "from", Usage: "country or currency code the amount is priced in"},
				},
				Action: e.exportAction,
			},
		},
	}
}
