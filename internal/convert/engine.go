// Package convert computes the market and PPP-adjusted conversions of a price.
package convert

import (
	"math"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
	"github.com/thdelmas/PPP-Price-Converter/internal/rates"
)

// Input gathers everything needed for one conversion. Nil pointers mean "not provided".
type Input struct {
	Amount   *float64
	Origin   *domain.Country
	Target   *domain.Country
	Factors  map[string]float64
	Snapshot *domain.ExchangeRateSnapshot
}

// Calculate returns both conversions, or false when any input is missing:
// no amount, a non-finite amount, a missing country or snapshot, or a PPP
// factor that is absent or zero on either side. Results that overflow to a
// non-finite value are also rejected. No rounding is applied.
func Calculate(in Input) (domain.ConversionOutcome, bool) {
	if in.Amount == nil || in.Origin == nil || in.Target == nil || in.Snapshot == nil {
		return domain.ConversionOutcome{}, false
	}
	amount := *in.Amount
	if !finite(amount) {
		return domain.ConversionOutcome{}, false
	}

	originPPP := in.Factors[in.Origin.Code]
	targetPPP := in.Factors[in.Target.Code]
	if originPPP == 0 || targetPPP == 0 {
		return domain.ConversionOutcome{}, false
	}

	rate := rates.GetExchangeRate(in.Origin.CurrencyCode, in.Target.CurrencyCode, *in.Snapshot)
	exchangeAmount := amount * rate
	pppAmount := amount * targetPPP / originPPP
	if !finite(exchangeAmount) || !finite(pppAmount) {
		return domain.ConversionOutcome{}, false
	}

	return domain.ConversionOutcome{
		ExchangeAmount: exchangeAmount,
		PPPAmount:      pppAmount,
		CurrencyCode:   in.Target.CurrencyCode,
		OriginPPP:      originPPP,
		TargetPPP:      targetPPP,
		ConversionRate: rate,
	}, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
