package models

import (
	"time"

	"github.com/google/uuid"
)

// RatingDimensions holds the four scores of a rating, conventionally 1-5 each
type RatingDimensions struct {
	Quality       int `json:"quality" gorm:"not null"`
	Timeliness    int `json:"timeliness" gorm:"not null"`
	Communication int `json:"communication" gorm:"not null"`
	Initiative    int `json:"initiative" gorm:"not null"`
}

// Rating is a performance rating of one member on one task
type Rating struct {
	BaseModel
	TaskID     uuid.UUID        `json:"task_id" gorm:"type:uuid;not null;index"`
	MemberID   uuid.UUID        `json:"member_id" gorm:"type:uuid;not null;index"`
	Dimensions RatingDimensions `json:"dimensions" gorm:"embedded"`
	Comments   string           `json:"comments" gorm:"type:text"`
	Mode       RatingMode       `json:"mode" gorm:"type:varchar(10);not null;default:'daily'"`
	Timestamp  time.Time        `json:"timestamp" gorm:"not null;index"`

	// Relationships
	Task   *Task   `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Member *Member `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Rating
func (Rating) TableName() string {
	return "ratings"
}
