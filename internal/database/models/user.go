package models

// UserRole represents the role of an operator account
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
)

// User represents an operator account that can log in and manage the roster
type User struct {
	BaseModel
	Name     string   `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password string   `json:"-" gorm:"not null;size:100" validate:"required,min=6"`
	Mobile   string   `json:"mobile" gorm:"size:20"`
	Role     UserRole `json:"role" gorm:"type:varchar(20);not null;default:'admin'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
