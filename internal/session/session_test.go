package session

import (
	"context"
	"errors"
	"testing"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
	"github.com/thdelmas/PPP-Price-Converter/internal/rates"
)

type mockLoader struct {
	records map[string]domain.PPPRecord
	err     error
}

func (m *mockLoader) LoadPPPData(_ context.Context) (map[string]domain.PPPRecord, error) {
	return m.records, m.err
}

type mockProvider struct {
	result rates.Result
	calls  int
}

func (m *mockProvider) FetchExchangeRates(_ context.Context) rates.Result {
	m.calls++
	return m.result
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	loader := &mockLoader{records: map[string]domain.PPPRecord{
		"USA": {CountryName: "United States", CountryCode: "USA", PPPFactor: 1},
		"GBR": {CountryName: "United Kingdom", CountryCode: "GBR", PPPFactor: 0.7},
		"FRA": {CountryName: "France", CountryCode: "FRA", PPPFactor: 0},
		"WLD": {CountryName: "World", CountryCode: "WLD", PPPFactor: 1},
	}}
	provider := &mockProvider{result: rates.Result{
		Snapshot: domain.ExchangeRateSnapshot{Base: "USD", Rates: map[string]float64{"USD": 1, "GBP": 0.79, "EUR": 0.92}},
		Origin:   rates.OriginNetwork,
	}}

	s, err := Load(context.Background(), loader, provider)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestLoadBuildsCatalog(t *testing.T) {
	s := newTestSession(t)

	if len(s.Countries()) != 3 {
		t.Fatalf("len(Countries) = %d, want 3", len(s.Countries()))
	}
	if s.Countries()[0].Code != "FRA" {
		t.Errorf("first country = %s, want FRA", s.Countries()[0].Code)
	}
	if s.Factors()["GBR"] != 0.7 {
		t.Errorf("GBR factor = %v", s.Factors()["GBR"])
	}
	if s.Rates().Origin != rates.OriginNetwork {
		t.Errorf("origin = %s", s.Rates().Origin)
	}
}

func TestLoadPropagatesDatasetError(t *testing.T) {
	loader := &mockLoader{err: domain.ErrDataFormat}
	provider := &mockProvider{}

	_, err := Load(context.Background(), loader, provider)
	if !errors.Is(err, domain.ErrDataFormat) {
		t.Errorf("err = %v, want ErrDataFormat", err)
	}
}

func TestConvert(t *testing.T) {
	s := newTestSession(t)

	out, ok, err := s.Convert(100, "USA", "GBR")
	if err != nil || !ok {
		t.Fatalf("Convert: ok=%v err=%v", ok, err)
	}
	if out.ExchangeAmount != 79 {
		t.Errorf("ExchangeAmount = %v, want 79", out.ExchangeAmount)
	}
	if out.PPPAmount < 69.999999 || out.PPPAmount > 70.000001 {
		t.Errorf("PPPAmount = %v, want 70", out.PPPAmount)
	}
}

func TestConvertZeroFactorHasNoResult(t *testing.T) {
	s := newTestSession(t)

	_, ok, err := s.Convert(100, "USA", "FRA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no result for zero PPP factor")
	}
}

func TestConvertUnknownCountry(t *testing.T) {
	s := newTestSession(t)

	if _, _, err := s.Convert(100, "USA", "WLD"); !errors.Is(err, domain.ErrUnknownCountry) {
		t.Errorf("err = %v, want ErrUnknownCountry", err)
	}
}

func TestCountryByCurrencyCode(t *testing.T) {
	s := newTestSession(t)

	tests := map[string]string{
		"GBP": "GBR",
		"EUR": "FRA",
		"USD": "USA",
		"USA": "USA",
	}
	for code, want := range tests {
		c, err := s.Country(code)
		if err != nil {
			t.Errorf("Country(%s): %v", code, err)
			continue
		}
		if c.Code != want {
			t.Errorf("Country(%s) = %s, want %s", code, c.Code, want)
		}
	}

	// JPY resolves to Japan, which is not in this catalog.
	if _, err := s.Country("JPY"); !errors.Is(err, domain.ErrUnknownCountry) {
		t.Errorf("Country(JPY) err = %v, want ErrUnknownCountry", err)
	}
}

func TestConvertByCurrencyCode(t *testing.T) {
	s := newTestSession(t)

	out, ok, err := s.Convert(100, "USD", "GBP")
	if err != nil || !ok {
		t.Fatalf("Convert: ok=%v err=%v", ok, err)
	}
	if out.ExchangeAmount != 79 {
		t.Errorf("ExchangeAmount = %v, want 79", out.ExchangeAmount)
	}
}
