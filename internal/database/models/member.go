package models

// Member represents a team member whose work is rated
type Member struct {
	BaseModel
	Name    string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Role    string `json:"role" gorm:"not null;size:100" validate:"required,max=100"`
	Contact string `json:"contact" gorm:"size:255" validate:"max=255"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
