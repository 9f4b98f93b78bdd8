// Package display formats conversion values for people.
package display

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount rounds value to the currency's minor unit and formats it with the
// currency's symbol and separators. Unknown codes get two decimals and the code.
// NaN and infinities are printed as-is followed by the code.
func Amount(value float64, currencyCode string) string {
	if !finite(value) {
		return strconv.FormatFloat(value, 'f', -1, 64) + " " + currencyCode
	}
	d := decimal.NewFromFloat(value)

	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return d.StringFixed(2) + " " + currencyCode
	}

	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// Factor formats a PPP factor or an exchange rate with up to 6 significant decimals.
func Factor(value float64) string {
	if !finite(value) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return decimal.NewFromFloat(value).Round(6).String()
}

// Gap returns how much the PPP-adjusted amount differs from the market
// conversion, as a percentage of the market conversion. ok is false when the
// market amount is zero or either amount is not finite.
func Gap(exchangeAmount, pppAmount float64) (string, bool) {
	if !finite(exchangeAmount) || !finite(pppAmount) {
		return "", false
	}
	ex := decimal.NewFromFloat(exchangeAmount)
	if ex.IsZero() {
		return "", false
	}
	pct := decimal.NewFromFloat(pppAmount).Sub(ex).Div(ex).Mul(decimal.NewFromInt(100)).Round(1)
	if pct.IsPositive() {
		return "+" + pct.StringFixed(1) + "%", true
	}
	return pct.StringFixed(1) + "%", true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
