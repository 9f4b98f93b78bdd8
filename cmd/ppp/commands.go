package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/thdelmas/PPP-Price-Converter/internal/display"
	"github.com/thdelmas/PPP-Price-Converter/internal/export"
	"github.com/thdelmas/PPP-Price-Converter/internal/ppp"
	"github.com/thdelmas/PPP-Price-Converter/internal/rates"
	"github.com/thdelmas/PPP-Price-Converter/internal/worker"
)

const (
	formatXLSX   = "xlsx"
	formatSheets = "sheets"
)

func (e *env) convertAction(c *cli.Context) error {
	s, err := e.session(c.Context)
	if err != nil {
		return err
	}

	from, to := c.String("from"), c.String("to")
	out, ok, err := s.Convert(c.Float64("amount"), from, to)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no conversion from %s to %s: missing PPP factor or amount out of range", from, to)
	}

	origin, _ := s.Country(from)
	target, _ := s.Country(to)
	w := c.App.Writer

	fmt.Fprintf(w, "%s %s -> %s %s\n", origin.Flag, display.Amount(c.Float64("amount"), origin.CurrencyCode), target.Flag, target.Name)
	fmt.Fprintf(w, "  market rate:  %s  (1 %s = %s %s)\n",
		display.Amount(out.ExchangeAmount, out.CurrencyCode),
		origin.CurrencyCode, display.Factor(out.ConversionRate), out.CurrencyCode)
	fmt.Fprintf(w, "  PPP adjusted: %s  (factors %s -> %s)\n",
		display.Amount(out.PPPAmount, out.CurrencyCode),
		display.Factor(out.OriginPPP), display.Factor(out.TargetPPP))
	if gap, ok := display.Gap(out.ExchangeAmount, out.PPPAmount); ok {
		fmt.Fprintf(w, "  PPP vs market: %s\n", gap)
	}

	printRateWarning(w, s.Rates())
	return nil
}

func (e *env) countriesAction(c *cli.Context) error {
	countries, err := e.loader().GetCountriesFromPPPData(c.Context)
	if err != nil {
		return err
	}
	if region := c.String("region"); region != "" {
		countries = ppp.FilterRegion(countries, region)
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tCOUNTRY\tCODE\tCURRENCY\tPPP")
	for _, ct := range countries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ct.Flag, ct.Name, ct.Code, ct.CurrencyCode, display.Factor(ct.PPPFactor))
	}
	return tw.Flush()
}

func (e *env) ratesAction(c *cli.Context) error {
	provider, err := e.provider(c.Context)
	if err != nil {
		return err
	}

	var res rates.Result
	if c.Bool("refresh") {
		res = provider.Refresh(c.Context)
	} else {
		res = provider.FetchExchangeRates(c.Context)
	}

	snap := res.Snapshot
	w := c.App.Writer
	fmt.Fprintf(w, "origin:       %s\n", res.Origin)
	fmt.Fprintf(w, "base:         %s\n", snap.Base)
	fmt.Fprintf(w, "last updated: %s\n", snap.LastUpdated)
	fmt.Fprintf(w, "age:          %s\n", snap.Age(time.Now()).Round(time.Second))
	fmt.Fprintf(w, "currencies:   %d\n", len(snap.Rates))
	printRateWarning(w, res)
	return nil
}

func (e *env) watchAction(c *cli.Context) error {
	interval := c.Duration("interval")
	if interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %s", interval)
	}
	provider, err := e.provider(c.Context)
	if err != nil {
		return err
	}
	worker.NewRateWorker(provider, interval).Run(c.Context)
	return nil
}

func (e *env) exportAction(c *cli.Context) error {
	var quote *export.Quote
	if c.IsSet("amount") || c.IsSet("from") {
		if !c.IsSet("amount") || !c.IsSet("from") {
			return errors.New("--amount and --from must be used together")
		}
		quote = &export.Quote{Amount: c.Float64("amount"), From: c.String("from")}
	}

	s, err := e.session(c.Context)
	if err != nil {
		return err
	}

	switch c.String("format") {
	case formatXLSX:
		path := c.String("out")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := export.NewService(s, export.NewXLSXWriter(f, c.String("sheet"))).Export(c.Context, quote); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
		fmt.Fprintf(c.App.Writer, "wrote %d countries to %s\n", len(s.Countries()), path)
	case formatSheets:
		id := c.String("sheet-id")
		if id == "" {
			return errors.New("--sheet-id is required for sheets export")
		}
		if e.cfg.GoogleCredentials == "" {
			return errors.New("GOOGLE_CREDENTIALS_JSON is required for sheets export")
		}
		w, err := export.NewSheetsWriter(c.Context, id, c.String("sheet"), e.cfg.GoogleCredentials)
		if err != nil {
			return err
		}
		if err := export.NewService(s, w).Export(c.Context, quote); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "wrote %d countries to spreadsheet %s\n", len(s.Countries()), id)
	default:
		return fmt.Errorf("unknown export format %q", c.String("format"))
	}

	printRateWarning(c.App.Writer, s.Rates())
	return nil
}

func printRateWarning(w io.Writer, res rates.Result) {
	switch res.Origin {
	case rates.OriginStale:
		fmt.Fprintf(w, "warning: exchange rates could not be refreshed; using cached rates from %s\n", res.Snapshot.LastUpdated)
	case rates.OriginStatic:
		fmt.Fprintf(w, "warning: exchange rates unavailable; using built-in approximate rates (%s)\n", res.Snapshot.LastUpdated)
	}
}
