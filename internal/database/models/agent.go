package models

import (
	"github.com/google/uuid"
)

// Agent represents a roster member that receives a share of each
// distributed contact list. Only active agents are eligible for new
// distributions; ContactItem.AssignedTo is the source of truth for
// assignment, AssignedItems is a convenience back-reference.
type Agent struct {
	BaseModel
	Name      string      `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email     string      `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Mobile    string      `json:"mobile" gorm:"not null;size:20" validate:"required"`
	Password  string      `json:"-" gorm:"not null;size:100" validate:"required,min=6"`
	Status    AgentStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CreatedBy uuid.UUID   `json:"created_by" gorm:"type:uuid;not null" validate:"required"`

	// Relationships
	AssignedItems []ContactItem `json:"assigned_items,omitempty" gorm:"foreignKey:AssignedTo"`
}

// TableName returns the table name for Agent
func (Agent) TableName() string {
	return "agents"
}
