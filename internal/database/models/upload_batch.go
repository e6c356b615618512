package models

import (
	"github.com/google/uuid"
)

// UploadBatch is one uploaded file's processing unit. It is created the
// moment a file is accepted (count 0, status processed) and walks the
// status machine processed -> distributing -> complete, or to failed
// with the triggering error captured in Notes.
//
// ItemCount on a failed batch is the parsed count, not necessarily the
// persisted count; a failed batch may be partially populated.
type UploadBatch struct {
	BaseModel
	FileName     string       `json:"file_name" gorm:"not null;size:255" validate:"required"`
	OriginalName string       `json:"original_name" gorm:"not null;size:255" validate:"required"`
	ItemCount    int          `json:"item_count" gorm:"not null;default:0"`
	Status       UploadStatus `json:"status" gorm:"type:varchar(20);not null;default:'processed'"`
	Notes        string       `json:"notes,omitempty" gorm:"size:500"`
	UploadedBy   uuid.UUID    `json:"uploaded_by" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Items []ContactItem `json:"items,omitempty" gorm:"foreignKey:UploadID"`
}

// TableName returns the table name for UploadBatch
func (UploadBatch) TableName() string {
	return "upload_batches"
}
