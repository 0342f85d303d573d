package models

// Project represents a real-estate project. Each project owns its
// registration stage configuration.
type Project struct {
	BaseModel
	Name        string `json:"name" gorm:"size:120;not null;uniqueIndex" validate:"required,min=1,max=120"`
	Code        string `json:"code" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	City        string `json:"city" gorm:"size:80" validate:"max=80"`
	Address     string `json:"address" gorm:"size:200" validate:"max=200"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	Stages   []Stage   `json:"stages,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
