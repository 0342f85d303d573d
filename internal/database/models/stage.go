package models

import "github.com/google/uuid"

// Stage represents one ordered step of a project's registration workflow.
// SortOrder defines a strict total ordering within a project; uniqueness
// per project is enforced at the service layer.
type Stage struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"size:80;not null" validate:"required,min=1,max=80"`
	SortOrder int       `json:"sort_order" gorm:"not null" validate:"required,min=1"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Stage
func (Stage) TableName() string {
	return "stages"
}
