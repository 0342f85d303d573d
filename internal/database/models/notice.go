package models

import "time"

// Notice represents a community notice published to residents.
type Notice struct {
	BaseModel
	Title     string         `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Body      string         `json:"body" gorm:"type:text;not null" validate:"required"`
	Category  NoticeCategory `json:"category" gorm:"size:20;not null;default:'general'"`
	Published bool           `json:"published" gorm:"default:false"`
	PublishAt *time.Time     `json:"publish_at,omitempty"`
}

// TableName returns the table name for Notice
func (Notice) TableName() string {
	return "notices"
}
