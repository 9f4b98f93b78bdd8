package domain

import "time"

// StaticFallbackLabel marks a snapshot built from the built-in rate table.
const StaticFallbackLabel = "static fallback"

// ExchangeRateSnapshot is a point-in-time set of multipliers relative to Base.
type ExchangeRateSnapshot struct {
	Base        string             `json:"base"`
	Rates       map[string]float64 `json:"rates"`
	Timestamp   time.Time          `json:"timestamp"`
	LastUpdated string             `json:"lastUpdated"`
}

// IsStatic reports whether the snapshot comes from the built-in table.
func (s ExchangeRateSnapshot) IsStatic() bool {
	return s.LastUpdated == StaticFallbackLabel
}

// Age returns how old the snapshot is at now.
func (s ExchangeRateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.Timestamp)
}

// Multiplier returns the rate of code against Base. Base is implicitly 1;
// zero or negative entries count as missing.
func (s ExchangeRateSnapshot) Multiplier(code string) (float64, bool) {
	if r, ok := s.Rates[code]; ok {
		return r, r > 0
	}
	if code == s.Base {
		return 1, true
	}
	return 0, false
}

// Rate returns the multiplier converting one unit of from into to.
// ok is false when either currency is unknown to the snapshot.
func (s ExchangeRateSnapshot) Rate(from, to string) (float64, bool) {
	if from == to {
		return 1, true
	}
	fromRate, okFrom := s.Multiplier(from)
	toRate, okTo := s.Multiplier(to)
	if !okFrom || !okTo {
		return 0, false
	}

	switch {
	case from == s.Base:
		return toRate, true
	case to == s.Base:
		return 1 / fromRate, true
	default:
		return toRate / fromRate, true
	}
}

// ConversionOutcome holds both derived values plus the inputs used to compute them.
type ConversionOutcome struct {
	ExchangeAmount float64 `json:"exchangeAmount"`
	PPPAmount      float64 `json:"pppAmount"`
	CurrencyCode   string  `json:"currencyCode"`
	OriginPPP      float64 `json:"originPpp"`
	TargetPPP      float64 `json:"targetPpp"`
	ConversionRate float64 `json:"conversionRate"`
}
