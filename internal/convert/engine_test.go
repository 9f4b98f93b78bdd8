package convert

import (
	"math"
	"testing"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
)

var (
	usa = domain.Country{Name: "United States", Code: "USA", CurrencyCode: "USD"}
	gbr = domain.Country{Name: "United Kingdom", Code: "GBR", CurrencyCode: "GBP"}
	fra = domain.Country{Name: "France", Code: "FRA", CurrencyCode: "EUR"}
	deu = domain.Country{Name: "Germany", Code: "DEU", CurrencyCode: "EUR"}
)

func snapshot() *domain.ExchangeRateSnapshot {
	return &domain.ExchangeRateSnapshot{
		Base:  "USD",
		Rates: map[string]float64{"USD": 1, "GBP": 0.79, "EUR": 0.92},
	}
}

func amount(v float64) *float64 { return &v }

func TestCalculate(t *testing.T) {
	factors := map[string]float64{"USA": 1.0, "GBR": 0.7, "FRA": 0.708, "DEU": 0.729}

	out, ok := Calculate(Input{
		Amount:   amount(100),
		Origin:   &usa,
		Target:   &gbr,
		Factors:  factors,
		Snapshot: snapshot(),
	})
	if !ok {
		t.Fatal("expected a result")
	}

	if math.Abs(out.PPPAmount-70) > 1e-9 {
		t.Errorf("PPPAmount = %v, want 70", out.PPPAmount)
	}
	if out.ExchangeAmount != 100*0.79 {
		t.Errorf("ExchangeAmount = %v, want 79", out.ExchangeAmount)
	}
	if out.ConversionRate != 0.79 || out.CurrencyCode != "GBP" {
		t.Errorf("rate/currency = %v/%s", out.ConversionRate, out.CurrencyCode)
	}
	if out.OriginPPP != 1.0 || out.TargetPPP != 0.7 {
		t.Errorf("PPP factors = %v/%v", out.OriginPPP, out.TargetPPP)
	}
}

func TestCalculateSameCurrencyDifferentCountries(t *testing.T) {
	factors := map[string]float64{"FRA": 0.708, "DEU": 0.729}

	out, ok := Calculate(Input{Amount: amount(50), Origin: &fra, Target: &deu, Factors: factors, Snapshot: snapshot()})
	if !ok {
		t.Fatal("expected a result")
	}
	if out.ExchangeAmount != 50 || out.ConversionRate != 1 {
		t.Errorf("ExchangeAmount = %v rate = %v, want 50 and 1", out.ExchangeAmount, out.ConversionRate)
	}
	if out.PPPAmount != 50*0.729/0.708 {
		t.Errorf("PPPAmount = %v", out.PPPAmount)
	}
}

func TestCalculateUnknownCurrencyUsesUnitRate(t *testing.T) {
	xxx := domain.Country{Code: "XXX", CurrencyCode: "XXX"}
	factors := map[string]float64{"USA": 1, "XXX": 3}

	out, ok := Calculate(Input{Amount: amount(10), Origin: &usa, Target: &xxx, Factors: factors, Snapshot: snapshot()})
	if !ok {
		t.Fatal("expected a result")
	}
	if out.ConversionRate != 1 || out.ExchangeAmount != 10 {
		t.Errorf("rate = %v amount = %v, want 1 and 10", out.ConversionRate, out.ExchangeAmount)
	}
}

func TestCalculateNoResult(t *testing.T) {
	factors := map[string]float64{"USA": 1.0, "GBR": 0.7, "FRA": 0}

	tests := []struct {
		name string
		in   Input
	}{
		{"no amount", Input{Origin: &usa, Target: &gbr, Factors: factors, Snapshot: snapshot()}},
		{"NaN amount", Input{Amount: amount(math.NaN()), Origin: &usa, Target: &gbr, Factors: factors, Snapshot: snapshot()}},
		{"infinite amount", Input{Amount: amount(math.Inf(1)), Origin: &usa, Target: &gbr, Factors: factors, Snapshot: snapshot()}},
		{"no origin", Input{Amount: amount(100), Target: &gbr, Factors: factors, Snapshot: snapshot()}},
		{"no target", Input{Amount: amount(100), Origin: &usa, Factors: factors, Snapshot: snapshot()}},
		{"no snapshot", Input{Amount: amount(100), Origin: &usa, Target: &gbr, Factors: factors}},
		{"origin PPP missing", Input{Amount: amount(100), Origin: &deu, Target: &gbr, Factors: factors, Snapshot: snapshot()}},
		{"target PPP missing", Input{Amount: amount(100), Origin: &usa, Target: &deu, Factors: factors, Snapshot: snapshot()}},
		{"target PPP zero", Input{Amount: amount(100), Origin: &usa, Target: &fra, Factors: factors, Snapshot: snapshot()}},
		{"no factors", Input{Amount: amount(100), Origin: &usa, Target: &gbr, Snapshot: snapshot()}},
		{"PPP amount overflows", Input{Amount: amount(1e308), Origin: &usa, Target: &gbr, Factors: map[string]float64{"USA": 1, "GBR": 22}, Snapshot: snapshot()}},
		{"exchange amount overflows", Input{Amount: amount(-1.5e308), Origin: &gbr, Target: &usa, Factors: map[string]float64{"USA": 1, "GBR": 1}, Snapshot: snapshot()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out, ok := Calculate(tt.in); ok {
				t.Errorf("Calculate() = %+v, want no result", out)
			}
		})
	}
}
