package models

import "github.com/google/uuid"

// Lead represents a prospective customer in the sales funnel.
type Lead struct {
	BaseModel
	ProjectID *uuid.UUID `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Name      string     `json:"name" gorm:"size:120;not null" validate:"required,max=120"`
	Phone     string     `json:"phone" gorm:"size:20;not null" validate:"required,max=20"`
	Email     string     `json:"email" gorm:"size:120" validate:"omitempty,email,max=120"`
	Source    string     `json:"source" gorm:"size:80" validate:"max=80"`
	Status    LeadStatus `json:"status" gorm:"size:20;not null;default:'new'"`
	Notes     string     `json:"notes" gorm:"size:1000" validate:"max=1000"`

	// Relationships
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
