// Package currency holds the static country/currency reference table.
package currency

import (
	"github.com/samber/lo"
)

// SharedEuroCode is the currency code shared by the euro area.
const SharedEuroCode = "EUR"

// pinnedRepresentatives overrides first-wins for shared currencies that need
// a designated representative country.
var pinnedRepresentatives = map[string]string{
	SharedEuroCode: "FRA",
}

var byCode = lo.KeyBy(countries, func(e entry) string { return e.Code })

// CurrencyFor returns the ISO 4217 code used by the country, if mapped.
func CurrencyFor(countryCode string) (string, bool) {
	e, ok := byCode[countryCode]
	if !ok {
		return "", false
	}
	return e.Currency, true
}

// CurrencyName returns the display name of a currency code, or the code itself.
func CurrencyName(currencyCode string) string {
	if name, ok := currencyNames[currencyCode]; ok {
		return name
	}
	return currencyCode
}

// Flag returns the emoji flag for the country, or "" when unknown.
func Flag(countryCode string) string {
	e, ok := byCode[countryCode]
	if !ok || len(e.Alpha2) != 2 {
		return ""
	}
	const regionalIndicatorA = 0x1F1E6
	runes := make([]rune, 0, 2)
	for _, c := range e.Alpha2 {
		if c < 'A' || c > 'Z' {
			return ""
		}
		runes = append(runes, regionalIndicatorA+(c-'A'))
	}
	return string(runes)
}

// Region returns the country's region, or "" when unknown.
func Region(countryCode string) string {
	return byCode[countryCode].Region
}

// RepresentativeCountries maps each currency code to one country using it.
// The first country in table order wins, except for pinned shared currencies.
func RepresentativeCountries() map[string]string {
	reps := make(map[string]string, len(currencyNames))
	for _, e := range countries {
		if _, seen := reps[e.Currency]; !seen {
			reps[e.Currency] = e.Code
		}
	}
	for cur, code := range pinnedRepresentatives {
		reps[cur] = code
	}
	return reps
}
