package models

import (
	"github.com/google/uuid"
)

// ContactItem is one contact record derived from an upload batch.
// Phone is stored as a string to preserve leading symbols. AssignedTo
// is immutable after creation in the common path; deleting an agent
// clears the reference rather than reassigning.
type ContactItem struct {
	BaseModel
	FirstName  string     `json:"first_name" gorm:"not null;size:100" validate:"required"`
	Phone      string     `json:"phone" gorm:"not null;size:30" validate:"required"`
	Notes      string     `json:"notes" gorm:"size:500"`
	Status     ItemStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	UploadID   uuid.UUID  `json:"upload_id" gorm:"type:uuid;not null;index" validate:"required"`
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Agent *Agent `json:"agent,omitempty" gorm:"foreignKey:AssignedTo"`
}

// TableName returns the table name for ContactItem
func (ContactItem) TableName() string {
	return "contact_items"
}
