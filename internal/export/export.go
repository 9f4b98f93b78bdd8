// Package export writes the country catalog, with rates and optional
// conversions, to spreadsheets.
package export

import (
	"context"
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
	"github.com/thdelmas/PPP-Price-Converter/internal/rates"
)

// Row is one exported country.
type Row struct {
	domain.Country
	// Rate converts one unit of the reference currency into the country's currency.
	Rate           float64
	ExchangeAmount *float64
	PPPAmount      *float64
}

// Quote asks for every country's conversion of Amount priced in From.
type Quote struct {
	Amount float64
	From   string
}

// Catalog is the loaded data being exported.
type Catalog interface {
	Countries() []domain.Country
	Rates() rates.Result
	Country(code string) (domain.Country, error)
	Convert(amount float64, from, to string) (domain.ConversionOutcome, bool, error)
}

// SheetWriter writes rows to a spreadsheet destination.
type SheetWriter interface {
	Write(ctx context.Context, header []string, rows [][]any) error
}

// Service builds export rows and delegates writing to a SheetWriter.
type Service struct {
	catalog Catalog
	writer  SheetWriter
}

// NewService creates a new export Service.
func NewService(catalog Catalog, writer SheetWriter) *Service {
	return &Service{catalog: catalog, writer: writer}
}

// Export writes one row per catalog country. With a quote, rates are relative
// to the quoted country's currency and conversions are included.
func (s *Service) Export(ctx context.Context, q *Quote) error {
	rows, err := BuildRows(s.catalog, q)
	if err != nil {
		return err
	}
	return s.writer.Write(ctx, Header(q != nil), Values(rows, q != nil))
}

// BuildRows computes the exported rows in catalog order.
func BuildRows(catalog Catalog, q *Quote) ([]Row, error) {
	snap := catalog.Rates().Snapshot
	refCurrency := snap.Base
	if q != nil {
		origin, err := catalog.Country(q.From)
		if err != nil {
			return nil, fmt.Errorf("building export rows: %w", err)
		}
		refCurrency = origin.CurrencyCode
	}

	rows := make([]Row, 0, len(catalog.Countries()))
	for _, c := range catalog.Countries() {
		row := Row{
			Country: c,
			Rate:    rates.GetExchangeRate(refCurrency, c.CurrencyCode, snap),
		}
		if q != nil {
			out, ok, err := catalog.Convert(q.Amount, q.From, c.Code)
			if err != nil {
				return nil, fmt.Errorf("converting to %s: %w", c.Code, err)
			}
			if ok {
				row.ExchangeAmount = &out.ExchangeAmount
				row.PPPAmount = &out.PPPAmount
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Header returns the column titles.
func Header(withQuote bool) []string {
	h := []string{"Country", "Code", "Region", "Currency", "Currency code", "PPP factor", "Exchange rate"}
	if withQuote {
		h = append(h, "Exchange amount", "PPP amount")
	}
	return h
}

// Values converts rows to spreadsheet cells. withQuote must match the Header
// the rows are written under. Missing and non-finite numbers become empty cells.
func Values(rows []Row, withQuote bool) [][]any {
	return lo.Map(rows, func(r Row, _ int) []any {
		cells := []any{r.Name, r.Code, r.Region, r.Currency, r.CurrencyCode, round(r.PPPFactor, 6), round(r.Rate, 6)}
		if withQuote {
			cells = append(cells, ptrRound(r.ExchangeAmount, 2), ptrRound(r.PPPAmount, 2))
		}
		return cells
	})
}

func round(v float64, places int32) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func ptrRound(v *float64, places int32) any {
	if v == nil {
		return nil
	}
	return round(*v, places)
}
