package export

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// SheetsWriter implements SheetWriter using the Google Sheets API.
type SheetsWriter struct {
	spreadsheetID string
	sheet         string
	svc           *sheets.Service
}

// NewSheetsWriter creates a SheetsWriter authenticated with a service account JSON.
func NewSheetsWriter(ctx context.Context, spreadsheetID, sheet, credentialsJSON string) (*SheetsWriter, error) {
	creds, err := google.CredentialsFromJSON(
		ctx,
		[]byte(credentialsJSON),
		sheets.SpreadsheetsScope,
	)
	if err != nil {
		return nil, fmt.Errorf("parsing google credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &SheetsWriter{spreadsheetID: spreadsheetID, sheet: sheet, svc: svc}, nil
}

// Write ensures the sheet exists, then clears and rewrites it.
func (w *SheetsWriter) Write(ctx context.Context, header []string, rows [][]any) error {
	if err := w.ensureSheet(ctx); err != nil {
		return err
	}

	_, err := w.svc.Spreadsheets.Values.Clear(
		w.spreadsheetID,
		w.sheet,
		&sheets.ClearValuesRequest{},
	).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clearing sheet %s: %w", w.sheet, err)
	}

	_, err = w.svc.Spreadsheets.Values.Update(
		w.spreadsheetID,
		w.sheet+"!A1",
		&sheets.ValueRange{Values: sheetValues(header, rows)},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing sheet %s: %w", w.sheet, err)
	}

	return nil
}

func sheetValues(header []string, rows [][]any) [][]any {
	data := make([][]any, 0, len(rows)+1)
	h := make([]any, len(header))
	for i, v := range header {
		h[i] = v
	}
	data = append(data, h)
	for _, r := range rows {
		cells := make([]any, len(r))
		for i, v := range r {
			// Sheets rejects JSON null cells.
			if v == nil {
				v = ""
			}
			cells[i] = v
		}
		data = append(data, cells)
	}
	return data
}

// ensureSheet creates the target sheet if it does not already exist.
func (w *SheetsWriter) ensureSheet(ctx context.Context) error {
	spreadsheet, err := w.svc.Spreadsheets.Get(w.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("getting spreadsheet metadata: %w", err)
	}

	for _, s := range spreadsheet.Sheets {
		if s.Properties.Title == w.sheet {
			return nil
		}
	}

	_, err = w.svc.Spreadsheets.BatchUpdate(
		w.spreadsheetID,
		&sheets.BatchUpdateSpreadsheetRequest{Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: w.sheet},
			},
		}}},
	).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("creating sheet %s: %w", w.sheet, err)
	}

	return nil
}
