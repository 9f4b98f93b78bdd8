// Package ppp loads the PPP conversion factor dataset and builds the country catalog.
package ppp

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
)

// DefaultReferenceYear is the dataset column used for PPP factors.
const DefaultReferenceYear = "2024"

// Column positions of the country fields.
const (
	nameColumn = 0
	codeColumn = 1
)

// Loader reads and parses the PPP dataset. It does not cache.
type Loader struct {
	source Source
	year   string
}

// NewLoader creates a Loader reading from source and selecting the year column.
func NewLoader(source Source, year string) *Loader {
	if source == nil {
		panic("ppp.NewLoader: source is nil")
	}
	if year == "" {
		year = DefaultReferenceYear
	}
	return &Loader{source: source, year: year}
}

// Year returns the reference year column the loader selects.
func (l *Loader) Year() string {
	return l.year
}

// LoadPPPData fetches the dataset and returns PPP records keyed by country code.
func (l *Loader) LoadPPPData(ctx context.Context) (map[string]domain.PPPRecord, error) {
	data, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching PPP dataset: %w", err)
	}

	records, err := Parse(string(data), l.year)
	if err != nil {
		return nil, err
	}

	slog.Debug("PPP dataset loaded", "year", l.year, "records", len(records))
	return records, nil
}

// Parse parses CSV text into PPP records for the given year column.
// Rows with missing fields or an unparsable year value are skipped; the last
// row wins for duplicate country codes.
func Parse(text, year string) (map[string]domain.PPPRecord, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: expected a header and at least one row, got %d lines", domain.ErrDataFormat, len(lines))
	}

	header := splitLine(strings.TrimSuffix(lines[0], "\r"))
	if len(header) <= codeColumn {
		return nil, fmt.Errorf("%w: header has %d columns", domain.ErrDataFormat, len(header))
	}
	yearColumn := -1
	for i, name := range header {
		if name == year {
			yearColumn = i
			break
		}
	}
	if yearColumn < 0 {
		return nil, fmt.Errorf("%w: no column for year %s", domain.ErrDataFormat, year)
	}
	if yearColumn <= codeColumn {
		return nil, fmt.Errorf("%w: year %s overlaps the country columns", domain.ErrDataFormat, year)
	}

	yearNum, err := strconv.Atoi(year)
	if err != nil {
		return nil, fmt.Errorf("%w: year column %q is not a year", domain.ErrDataFormat, year)
	}

	records := make(map[string]domain.PPPRecord)
	skipped := 0
	for _, line := range lines[1:] {
		values := splitLine(strings.TrimSuffix(line, "\r"))
		record, ok := parseRow(values, yearColumn, yearNum)
		if !ok {
			skipped++
			continue
		}
		records[record.CountryCode] = record
	}

	if skipped > 0 {
		slog.Debug("PPP dataset rows skipped", "count", skipped)
	}
	return records, nil
}

func parseRow(values []string, yearColumn, year int) (domain.PPPRecord, bool) {
	if len(values) <= codeColumn || len(values) <= yearColumn {
		return domain.PPPRecord{}, false
	}

	name := values[nameColumn]
	code := values[codeColumn]
	raw := values[yearColumn]
	if name == "" || code == "" || raw == "" {
		return domain.PPPRecord{}, false
	}

	factor, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return domain.PPPRecord{}, false
	}

	return domain.PPPRecord{
		CountryName: name,
		CountryCode: code,
		PPPFactor:   factor,
		Year:        year,
	}, true
}

// splitLine splits one CSV line on commas outside double quotes. A doubled
// quote inside a quoted field is a literal quote; an unterminated quote keeps
// the rest of the line in the last field.
func splitLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			field.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	return append(fields, strings.TrimSpace(field.String()))
}
