// Package session loads everything a conversion needs and runs conversions against it.
package session

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thdelmas/PPP-Price-Converter/internal/convert"
	"github.com/thdelmas/PPP-Price-Converter/internal/currency"
	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
	"github.com/thdelmas/PPP-Price-Converter/internal/ppp"
	"github.com/thdelmas/PPP-Price-Converter/internal/rates"
)

// DatasetLoader loads the PPP dataset.
type DatasetLoader interface {
	LoadPPPData(ctx context.Context) (map[string]domain.PPPRecord, error)
}

// RateProvider resolves an exchange rate snapshot.
type RateProvider interface {
	FetchExchangeRates(ctx context.Context) rates.Result
}

var representatives = currency.RepresentativeCountries()

// Session holds one loaded catalog and rate snapshot. It is read-only after Load.
type Session struct {
	countries []domain.Country
	factors   map[string]float64
	rates     rates.Result
}

// Load fetches the dataset and the exchange rates concurrently.
func Load(ctx context.Context, loader DatasetLoader, provider RateProvider) (*Session, error) {
	var records map[string]domain.PPPRecord
	var result rates.Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = loader.LoadPPPData(gctx)
		return err
	})
	g.Go(func() error {
		result = provider.FetchExchangeRates(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	return &Session{
		countries: ppp.BuildCatalog(records),
		factors:   ppp.Factors(records),
		rates:     result,
	}, nil
}

// Countries returns the catalog sorted by name.
func (s *Session) Countries() []domain.Country {
	return s.countries
}

// Factors returns PPP factors keyed by country code.
func (s *Session) Factors() map[string]float64 {
	return s.factors
}

// Rates returns the snapshot in use and how it was obtained.
func (s *Session) Rates() rates.Result {
	return s.rates
}

// Country looks a country up in the catalog. A currency code resolves to the
// currency's representative country, e.g. EUR to France.
func (s *Session) Country(code string) (domain.Country, error) {
	if c, ok := ppp.FindCountry(s.countries, code); ok {
		return c, nil
	}
	if rep, ok := representatives[code]; ok {
		if c, ok := ppp.FindCountry(s.countries, rep); ok {
			return c, nil
		}
	}
	return domain.Country{}, fmt.Errorf("%w: %s", domain.ErrUnknownCountry, code)
}

// Convert converts amount between two catalog countries. ok is false when
// the engine has no result, e.g. a missing PPP factor.
func (s *Session) Convert(amount float64, from, to string) (domain.ConversionOutcome, bool, error) {
	origin, err := s.Country(from)
	if err != nil {
		return domain.ConversionOutcome{}, false, err
	}
	target, err := s.Country(to)
	if err != nil {
		return domain.ConversionOutcome{}, false, err
	}

	snap := s.rates.Snapshot
	out, ok := convert.Calculate(convert.Input{
		Amount:   &amount,
		Origin:   &origin,
		Target:   &target,
		Factors:  s.factors,
		Snapshot: &snap,
	})
	return out, ok, nil
}
