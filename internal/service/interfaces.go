package service

import (
	"realty-crm-backend/internal/database/models"
	"realty-crm-backend/internal/viewmode"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest, actor string) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	List(page, pageSize int) (*ProjectListResponse, error)
	Update(id uuid.UUID, req *UpdateProjectRequest, actor string) (*ProjectResponse, error)
	Delete(id uuid.UUID) error
}

// StageServiceInterface defines the interface for stage service
type StageServiceInterface interface {
	Create(req *CreateStageRequest, actor string) (*StageResponse, error)
	ListByProject(projectID uuid.UUID) ([]StageResponse, error)
	Update(id uuid.UUID, req *UpdateStageRequest, actor string) (*StageResponse, error)
	Delete(id uuid.UUID) error
}

// BookingServiceInterface defines the interface for booking service
type BookingServiceInterface interface {
	Create(req *CreateBookingRequest, actor string) (*BookingResponse, error)
	GetByID(id uuid.UUID) (*BookingResponse, error)
	ListByProject(projectID uuid.UUID, page, pageSize int) (*BookingListResponse, error)
	Update(id uuid.UUID, req *UpdateBookingRequest, actor string) (*BookingResponse, error)
	Delete(id uuid.UUID) error
}

// RegistrationServiceInterface defines the interface for the registration
// stage progression workflow
type RegistrationServiceInterface interface {
	GetTimeline(bookingID uuid.UUID) (*TimelineSnapshotResponse, error)
	AdvanceStage(bookingID uuid.UUID, req *AdvanceStageRequest, actor string, mode viewmode.Mode) (*TimelineSnapshotResponse, error)
	ShiftBooking(bookingID uuid.UUID, req *ShiftBookingRequest, actor string, mode viewmode.Mode) error
}

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	Create(req *CreateLeadRequest, actor string) (*LeadResponse, error)
	GetByID(id uuid.UUID) (*LeadResponse, error)
	List(status *models.LeadStatus, page, pageSize int) (*LeadListResponse, error)
	Update(id uuid.UUID, req *UpdateLeadRequest, actor string) (*LeadResponse, error)
	Delete(id uuid.UUID) error
}

// DemandNoteServiceInterface defines the interface for demand note service
type DemandNoteServiceInterface interface {
	Create(req *CreateDemandNoteRequest, actor string) (*DemandNoteResponse, error)
	GetByID(id uuid.UUID) (*DemandNoteResponse, error)
	ListByBooking(bookingID uuid.UUID, page, pageSize int) (*DemandNoteListResponse, error)
	Issue(id uuid.UUID, actor string) (*DemandNoteResponse, error)
	MarkPaid(id uuid.UUID, actor string) (*DemandNoteResponse, error)
	Cancel(id uuid.UUID, actor string) (*DemandNoteResponse, error)
}

// PaymentReceiptServiceInterface defines the interface for receipt service
type PaymentReceiptServiceInterface interface {
	Create(req *CreatePaymentReceiptRequest, actor string) (*PaymentReceiptResponse, error)
	GetByID(id uuid.UUID) (*PaymentReceiptResponse, error)
	ListByBooking(bookingID uuid.UUID, page, pageSize int) (*PaymentReceiptListResponse, error)
}

// NoticeServiceInterface defines the interface for notice service
type NoticeServiceInterface interface {
	Create(req *CreateNoticeRequest, actor string) (*NoticeResponse, error)
	GetByID(id uuid.UUID) (*NoticeResponse, error)
	List(publishedOnly bool, page, pageSize int) (*NoticeListResponse, error)
	Update(id uuid.UUID, req *UpdateNoticeRequest, actor string) (*NoticeResponse, error)
	Publish(id uuid.UUID, actor string) (*NoticeResponse, error)
	Delete(id uuid.UUID) error
}

// EventServiceInterface defines the interface for event service
type EventServiceInterface interface {
	Create(req *CreateEventRequest, actor string) (*EventResponse, error)
	GetByID(id uuid.UUID) (*EventResponse, error)
	List(upcoming bool, page, pageSize int) (*EventListResponse, error)
	Delete(id uuid.UUID) error
}
