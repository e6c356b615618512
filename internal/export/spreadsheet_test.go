package export_test

import (
	"bytes"
	"testing"

	"agent-distribution-backend/internal/database/models"
	"agent-distribution-backend/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestItemsWorkbook(t *testing.T) {
	agent := &models.Agent{Name: "Test Agent"}
	items := []models.ContactItem{
		{FirstName: "John", Phone: "5551234567", Notes: "vip", Agent: agent},
		{FirstName: "Jane", Phone: "5559876543", Notes: ""},
	}

	data, err := export.ItemsWorkbook(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("List Items")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"First Name", "Phone", "Notes", "Assigned To"}, rows[0])
	assert.Equal(t, "John", rows[1][0])
	assert.Equal(t, "Test Agent", rows[1][3])
	assert.Equal(t, "Jane", rows[2][0])
	// Items without an agent reference render as Unassigned.
	assert.Equal(t, "Unassigned", rows[2][3])
}

func TestItemsWorkbookEmpty(t *testing.T) {
	data, err := export.ItemsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("List Items")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestItemsCSV(t *testing.T) {
	items := []models.ContactItem{
		{FirstName: "John", Phone: "5551234567", Notes: "vip", Status: models.ItemStatusPending},
		{FirstName: "Jane", Phone: "5559876543", Status: models.ItemStatusCompleted},
	}

	data, err := export.ItemsCSV(items)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "First Name,Phone,Notes,Status\n")
	assert.Contains(t, out, "John,5551234567,vip,pending\n")
	assert.Contains(t, out, "Jane,5559876543,,completed\n")
}
