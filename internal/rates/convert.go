package rates

import "github.com/thdelmas/PPP-Price-Converter/internal/domain"

// ConvertCurrency converts amount from one currency to another. When either
// currency is missing from the snapshot the amount is returned unchanged.
func ConvertCurrency(amount float64, from, to string, snap domain.ExchangeRateSnapshot) float64 {
	if from == to {
		return amount
	}
	fromRate, okFrom := snap.Multiplier(from)
	toRate, okTo := snap.Multiplier(to)
	if !okFrom || !okTo {
		return amount
	}

	switch {
	case from == snap.Base:
		return amount * toRate
	case to == snap.Base:
		return amount / fromRate
	default:
		return amount / fromRate * toRate
	}
}

// GetExchangeRate returns the multiplier from one currency to another, or 1
// when the currencies match or either is missing from the snapshot.
func GetExchangeRate(from, to string, snap domain.ExchangeRateSnapshot) float64 {
	rate, ok := snap.Rate(from, to)
	if !ok {
		return 1
	}
	return rate
}
