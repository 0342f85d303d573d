package models

import "time"

// Event represents a community event residents can attend.
type Event struct {
	BaseModel
	Title    string    `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Venue    string    `json:"venue" gorm:"size:200" validate:"max=200"`
	StartsAt time.Time `json:"starts_at" gorm:"not null" validate:"required"`
	EndsAt   time.Time `json:"ends_at" gorm:"not null" validate:"required"`
	Capacity int       `json:"capacity" gorm:"default:0" validate:"min=0"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
