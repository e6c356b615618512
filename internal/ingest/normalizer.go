package ingest

// ContactRow is the canonical item shape produced by normalization.
type ContactRow struct {
	FirstName string `json:"firstName"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// Normalize maps raw rows into canonical contact rows. A candidate is
// discarded when its first name or phone is empty; notes default to the
// empty string. Pure function: same input, same output.
func Normalize(raw []RawRow) []ContactRow {
	rows := make([]ContactRow, 0, len(raw))
	for _, r := range raw {
		if r.FirstName == "" || r.Phone == "" {
			continue
		}
		rows = append(rows, ContactRow{
			FirstName: r.FirstName,
			Phone:     r.Phone,
			Notes:     r.Notes,
		})
	}
	return rows
}
