package service

import (
	"testing"
	"time"

	"realty-crm-backend/internal/database/models"
	"realty-crm-backend/internal/stagegraph"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestSnapshotHistoryCarriesStageIDs verifies history rows expose the
// authoritative stage IDs. Stage names are not unique within a project, so
// consumers that classify stages must never have to resolve history rows
// by name.
func TestSnapshotHistoryCarriesStageIDs(t *testing.T) {
	projectID := uuid.New()
	booking := &models.Booking{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectID: projectID, BookingCode: "BK-7001"}

	// Two distinct stages sharing the display name "KYC".
	kycEarly := models.Stage{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectID: projectID, Name: "KYC", SortOrder: 2}
	kycLate := models.Stage{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectID: projectID, Name: "KYC", SortOrder: 4}
	stages := []models.Stage{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectID: projectID, Name: "Booking", SortOrder: 1},
		kycEarly,
		{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectID: projectID, Name: "Agreement", SortOrder: 3},
		kycLate,
	}

	fromID := stages[0].ID
	history := []models.StageHistory{
		{
			BookingID:   booking.ID,
			FromStageID: &fromID,
			FromStage:   &stages[0],
			ToStageID:   kycEarly.ID,
			ToStage:     kycEarly,
			ChangedBy:   "ops@realty.test",
			ChangedAt:   time.Now(),
		},
	}

	svc := &RegistrationService{}
	snapshot := svc.toSnapshot(booking, stages, history)

	row := snapshot.History[0]
	assert.Equal(t, kycEarly.ID, row.ToStageID)
	assert.Equal(t, "KYC", row.ToStage)
	if assert.NotNil(t, row.FromStageID) {
		assert.Equal(t, stages[0].ID, *row.FromStageID)
	}

	// The earlier KYC stage, and only that one, is marked visited.
	byID := make(map[uuid.UUID]stagegraph.Classification)
	for _, stage := range snapshot.Stages {
		byID[stage.ID] = stage.Classification
	}
	assert.Equal(t, stagegraph.ClassificationCurrent, byID[kycEarly.ID])
	assert.Equal(t, stagegraph.ClassificationPending, byID[kycLate.ID])
}
