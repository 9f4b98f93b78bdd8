package ppp

import (
	"context"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/thdelmas/PPP-Price-Converter/internal/currency"
	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
)

// CatalogLanguage is the locale used to order country names.
var CatalogLanguage = language.English

// GetCountriesFromPPPData loads the dataset and builds the country catalog.
func (l *Loader) GetCountriesFromPPPData(ctx context.Context) ([]domain.Country, error) {
	records, err := l.LoadPPPData(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCatalog(records), nil
}

// BuildCatalog joins PPP records with the currency reference table. Countries
// without a mapped currency are dropped. The result is sorted by name.
func BuildCatalog(records map[string]domain.PPPRecord) []domain.Country {
	countries := lo.FilterMap(lo.Values(records), func(r domain.PPPRecord, _ int) (domain.Country, bool) {
		code, ok := currency.CurrencyFor(r.CountryCode)
		if !ok || code == "" {
			return domain.Country{}, false
		}
		return domain.Country{
			Name:         r.CountryName,
			Code:         r.CountryCode,
			Currency:     currency.CurrencyName(code),
			CurrencyCode: code,
			Flag:         currency.Flag(r.CountryCode),
			Region:       currency.Region(r.CountryCode),
			PPPFactor:    r.PPPFactor,
		}, true
	})

	col := collate.New(CatalogLanguage)
	slices.SortFunc(countries, func(a, b domain.Country) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Code, b.Code)
	})
	return countries
}

// Factors returns the PPP factor of each record keyed by country code.
func Factors(records map[string]domain.PPPRecord) map[string]float64 {
	return lo.MapValues(records, func(r domain.PPPRecord, _ string) float64 { return r.PPPFactor })
}

// FindCountry returns the catalog entry with the given code.
func FindCountry(countries []domain.Country, code string) (domain.Country, bool) {
	return lo.Find(countries, func(c domain.Country) bool { return c.Code == code })
}

// FilterRegion returns the countries of one region, keeping catalog order.
func FilterRegion(countries []domain.Country, region string) []domain.Country {
	if region == "" {
		return countries
	}
	return lo.Filter(countries, func(c domain.Country, _ int) bool {
		return strings.EqualFold(c.Region, region)
	})
}
