package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetStore backs the table store with one Google Spreadsheet; each table
// is a named worksheet. Authenticated with a service-account credential.
type SheetStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

var spreadsheetIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// SpreadsheetIDFromURL extracts the spreadsheet ID from a full edit URL,
// e.g. https://docs.google.com/spreadsheets/d/<id>/edit#gid=0.
func SpreadsheetIDFromURL(url string) (string, error) {
	m := spreadsheetIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("no spreadsheet ID in URL %q", url)
	}
	return m[1], nil
}

func NewSheetStore(ctx context.Context, sheetURL string, credentialsJSON []byte) (*SheetStore, error) {
	id, err := SpreadsheetIDFromURL(sheetURL)
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &SheetStore{svc: svc, spreadsheetID: id}, nil
}

func (s *SheetStore) FetchTable(ctx context.Context, table string) ([]*Record, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, table).Context(ctx).Do()
	if err != nil {
		if isMissingWorksheet(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	return recordsFromValues(resp.Values), nil
}

func (s *SheetStore) AppendRecord(ctx context.Context, table string, rec *Record) error {
	row := make([]interface{}, 0, rec.Len())
	for _, v := range rec.Values() {
		row = append(row, v)
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, table, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return &WriteError{Table: table, Op: "append", Err: err}
	}
	return nil
}

// ReplaceTable is not atomic: a failure after the clear and before the
// rewrite leaves the worksheet empty. Callers retry the whole operation.
func (s *SheetStore) ReplaceTable(ctx context.Context, table string, recs []*Record) error {
	_, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, table, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return &WriteError{Table: table, Op: "clear", Err: err}
	}
	if len(recs) == 0 {
		return nil
	}
	vr := &sheets.ValueRange{Values: valuesFromRecords(recs)}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, table+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return &WriteError{Table: table, Op: "update", Err: err}
	}
	return nil
}

// recordsFromValues maps raw sheet values (header row first) to records.
// Header-only or empty ranges yield no records. Short rows are padded with
// empty fields; extra cells beyond the header are dropped.
func recordsFromValues(values [][]interface{}) []*Record {
	if len(values) < 2 {
		return nil
	}
	header := make([]string, 0, len(values[0]))
	for _, h := range values[0] {
		header = append(header, fmt.Sprint(h))
	}
	out := make([]*Record, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := NewRecord()
		for i, key := range header {
			val := ""
			if i < len(row) {
				val = fmt.Sprint(row[i])
			}
			rec.Set(key, val)
		}
		out = append(out, rec)
	}
	return out
}

// valuesFromRecords builds the header row from the first record's fields
// followed by every record's values aligned to that header.
func valuesFromRecords(recs []*Record) [][]interface{} {
	header := recs[0].Keys()
	rows := make([][]interface{}, 0, len(recs)+1)
	headerRow := make([]interface{}, 0, len(header))
	for _, h := range header {
		headerRow = append(headerRow, h)
	}
	rows = append(rows, headerRow)
	for _, rec := range recs {
		row := make([]interface{}, 0, len(header))
		for _, key := range header {
			row = append(row, rec.Get(key))
		}
		rows = append(rows, row)
	}
	return rows
}

// A worksheet that does not exist comes back as a 400 "Unable to parse
// range"; treat it, and plain 404s, as no data rather than an error.
func isMissingWorksheet(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	if gerr.Code == http.StatusNotFound {
		return true
	}
	return gerr.Code == http.StatusBadRequest && strings.Contains(gerr.Message, "Unable to parse range")
}
