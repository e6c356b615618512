// Package ingest turns uploaded CSV/Excel payloads into canonical
// contact rows. Parsing and normalization are pure transformations with
// no persistence side effects.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for file extensions outside csv/xlsx/xls.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoValidData is returned when a file parses cleanly but yields zero
// usable rows. Distinct from a parse failure: the file was readable, it
// just had nothing in it.
var ErrNoValidData = errors.New("no valid data found in file, ensure it has data for FirstName and Phone")

// RawRow is a column-resolved row as read from the file, before
// validity filtering. Fields may be empty.
type RawRow struct {
	FirstName string
	Phone     string
	Notes     string
}

// Header synonyms accepted on the CSV path, all matched case-insensitively.
// The spreadsheet path deliberately does not share these: it requires the
// literal headers FirstName and Phone (see parseExcel).
var (
	firstNameHeaders = []string{"firstname", "first name", "name"}
	phoneHeaders     = []string{"phone", "telephone", "contact"}
	notesHeaders     = []string{"notes", "note", "comments"}
)

// Parse reads an uploaded file into canonical contact rows. ext is the
// declared file extension including the dot, matched case-insensitively.
func Parse(data []byte, ext string) ([]ContactRow, error) {
	var raw []RawRow
	var err error

	switch strings.ToLower(ext) {
	case ".csv":
		raw, err = parseCSV(bytes.NewReader(data))
	case ".xlsx", ".xls":
		raw, err = parseExcel(bytes.NewReader(data))
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	rows := Normalize(raw)
	if len(rows) == 0 {
		return nil, ErrNoValidData
	}
	return rows, nil
}

// parseCSV reads rows with no assumed header. Only the first row is
// inspected: if any cell matches a first-name synonym it is treated as
// a header row and column positions are derived by synonym lookup;
// otherwise the layout is positional [firstName, phone, notes] and the
// first row is kept as data.
func parseCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []RawRow
	var headers []string
	firstRow := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv parsing error: %w", err)
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		if firstRow {
			firstRow = false
			if hasHeaderRow(record) {
				headers = make([]string, len(record))
				for i, h := range record {
					headers[i] = strings.ToLower(h)
				}
				continue
			}
			headers = []string{"firstname", "phone", "notes"}
		}

		// Blank-line noise: zero cells, or a single empty cell.
		if len(record) == 0 || (len(record) == 1 && record[0] == "") {
			continue
		}

		rows = append(rows, RawRow{
			FirstName: cellFor(record, headers, firstNameHeaders, 0),
			Phone:     cellFor(record, headers, phoneHeaders, 1),
			Notes:     cellFor(record, headers, notesHeaders, 2),
		})
	}

	return rows, nil
}

// hasHeaderRow reports whether the first CSV row looks like a header.
func hasHeaderRow(record []string) bool {
	for _, cell := range record {
		lower := strings.ToLower(cell)
		for _, h := range firstNameHeaders {
			if lower == h {
				return true
			}
		}
	}
	return false
}

// cellFor resolves a value by trying each synonym column in order,
// falling back to the positional index.
func cellFor(record, headers, synonyms []string, fallback int) string {
	for _, syn := range synonyms {
		for i, h := range headers {
			if h == syn {
				if i < len(record) {
					return record[i]
				}
				return ""
			}
		}
	}
	if fallback < len(record) {
		return record[fallback]
	}
	return ""
}

// parseExcel loads the first sheet and keys rows by header text. The
// headers FirstName and Phone are matched case-sensitively here; the
// asymmetry with the CSV path's case-insensitive synonyms is inherited
// source behavior, pinned by tests, not to be normalized away.
func parseExcel(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	firstCol, okFirst := cols["FirstName"]
	phoneCol, okPhone := cols["Phone"]
	notesCol, okNotes := cols["Notes"]
	if !okFirst || !okPhone {
		// Without the literal headers no row can resolve; the caller
		// reports ErrNoValidData.
		return nil, nil
	}

	var rows []RawRow
	for _, record := range cells[1:] {
		row := RawRow{
			FirstName: cellAt(record, firstCol),
			Phone:     cellAt(record, phoneCol),
		}
		if okNotes {
			row.Notes = cellAt(record, notesCol)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cellAt(record []string, i int) string {
	if i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}
