// Package export regenerates spreadsheets from persisted contact items
// for the download endpoint and the messaging forward path.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"agent-distribution-backend/internal/database/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "List Items"

// ItemsWorkbook builds an xlsx workbook with the columns
// First Name, Phone, Notes, Assigned To. Items without an agent are
// rendered as "Unassigned".
func ItemsWorkbook(items []models.ContactItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"First Name", "Phone", "Notes", "Assigned To"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, item := range items {
		assigned := "Unassigned"
		if item.Agent != nil {
			assigned = item.Agent.Name
		}
		row := []interface{}{item.FirstName, item.Phone, item.Notes, assigned}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ItemsCSV builds the CSV forwarded to an agent over the messaging
// channel: First Name, Phone, Notes, Status.
func ItemsCSV(items []models.ContactItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"First Name", "Phone", "Notes", "Status"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, item := range items {
		if err := w.Write([]string{item.FirstName, item.Phone, item.Notes, string(item.Status)}); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
