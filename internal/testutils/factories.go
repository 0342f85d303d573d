package testutils

import (
	"time"

	"realty-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FactorySet bundles all model factories for convenience in suites
type FactorySet struct {
	Project      *ProjectFactory
	Stage        *StageFactory
	Booking      *BookingFactory
	StageHistory *StageHistoryFactory
	Lead         *LeadFactory
	DemandNote   *DemandNoteFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:      NewProjectFactory(),
		Stage:        NewStageFactory(),
		Booking:      NewBookingFactory(),
		StageHistory: NewStageHistoryFactory(),
		Lead:         NewLeadFactory(),
		DemandNote:   NewDemandNoteFactory(),
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Project " + id.String()[:6],
		Code:        "PRJ-" + id.String()[:6],
		City:        "Pune",
		Address:     "123 Test Road",
		Description: "A test project",
		IsActive:    true,
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// StageFactory provides methods to create test Stage data
type StageFactory struct{}

// NewStageFactory creates a new StageFactory
func NewStageFactory() *StageFactory {
	return &StageFactory{}
}

// Create creates a test Stage with default values
func (f *StageFactory) Create(projectID uuid.UUID, name string, order int) *models.Stage {
	return &models.Stage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: projectID,
		Name:      name,
		SortOrder: order,
	}
}

// CreateSet creates the default four-stage progression for a project
func (f *StageFactory) CreateSet(projectID uuid.UUID) []*models.Stage {
	return []*models.Stage{
		f.Create(projectID, "Booking", 1),
		f.Create(projectID, "KYC", 2),
		f.Create(projectID, "Agreement", 3),
		f.Create(projectID, "Registered", 4),
	}
}

// BookingFactory provides methods to create test Booking data
type BookingFactory struct{}

// NewBookingFactory creates a new BookingFactory
func NewBookingFactory() *BookingFactory {
	return &BookingFactory{}
}

// Create creates a test Booking with default values
func (f *BookingFactory) Create(projectID uuid.UUID) *models.Booking {
	id := uuid.New()
	return &models.Booking{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:     projectID,
		BookingCode:   "BK-" + id.String()[:8],
		FormRefNo:     "FRM-" + id.String()[:6],
		CustomerName:  "Test Customer",
		CustomerPhone: "+91-5550-0123",
		CustomerEmail: "customer@test.com",
		UnitNo:        "A-101",
		Amount:        decimal.NewFromInt(4500000),
	}
}

// WithShifted marks the booking as already shifted
func (f *BookingFactory) WithShifted(projectID uuid.UUID) *models.Booking {
	booking := f.Create(projectID)
	booking.IsShifted = true
	booking.ShiftNote = "moved to tower B"
	return booking
}

// StageHistoryFactory provides methods to create test StageHistory data
type StageHistoryFactory struct{}

// NewStageHistoryFactory creates a new StageHistoryFactory
func NewStageHistoryFactory() *StageHistoryFactory {
	return &StageHistoryFactory{}
}

// Create creates a test StageHistory entry
func (f *StageHistoryFactory) Create(bookingID uuid.UUID, fromStageID *uuid.UUID, toStageID uuid.UUID) *models.StageHistory {
	return &models.StageHistory{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BookingID:   bookingID,
		FromStageID: fromStageID,
		ToStageID:   toStageID,
		ChangedBy:   "ops@realty.test",
		Note:        "test transition",
		ChangedAt:   time.Now(),
	}
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	id := uuid.New()
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "Test Lead " + id.String()[:6],
		Phone:  "+91-5550-0456",
		Email:  "lead@test.com",
		Source: "walk-in",
		Status: models.LeadStatusNew,
	}
}

// DemandNoteFactory provides methods to create test DemandNote data
type DemandNoteFactory struct{}

// NewDemandNoteFactory creates a new DemandNoteFactory
func NewDemandNoteFactory() *DemandNoteFactory {
	return &DemandNoteFactory{}
}

// Create creates a test DemandNote in draft status
func (f *DemandNoteFactory) Create(bookingID uuid.UUID) *models.DemandNote {
	id := uuid.New()
	return &models.DemandNote{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BookingID: bookingID,
		NoteNo:    "DN-" + id.String()[:8],
		Amount:    decimal.NewFromInt(250000),
		DueDate:   time.Now().AddDate(0, 0, 30),
		Status:    models.DemandNoteStatusDraft,
	}
}
