package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"realty-crm-backend/internal/api/handlers"
	"realty-crm-backend/internal/api/middleware"
	apperrors "realty-crm-backend/internal/errors"
	"realty-crm-backend/internal/mocks"
	"realty-crm-backend/internal/service"
	"realty-crm-backend/internal/viewmode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RegistrationHandlerTestSuite defines the test suite for RegistrationHandler
type RegistrationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRegistrationServiceInterface
	handler     *handlers.RegistrationHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *RegistrationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRegistrationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRegistrationHandler(suite.mockService)
	suite.router = gin.New()
	suite.setupRoutes()
}

// TearDownTest cleans up after each test
func (suite *RegistrationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// setupRoutes mirrors the production mounts: the operations group is
// editable, the post-sales group is read-only.
func (suite *RegistrationHandlerTestSuite) setupRoutes() {
	operations := suite.router.Group("/operations")
	operations.Use(middleware.ViewMode(viewmode.ModeEditable))
	operations.GET("/bookings/:id/timeline", suite.handler.GetTimeline)
	operations.POST("/bookings/:id/advance", suite.handler.AdvanceStage)
	operations.POST("/bookings/:id/shift", suite.handler.ShiftBooking)

	postSales := suite.router.Group("/post-sales")
	postSales.Use(middleware.ViewMode(viewmode.ModeReadOnly))
	postSales.POST("/bookings/:id/advance", suite.handler.AdvanceStage)
}

func (suite *RegistrationHandlerTestSuite) TestGetTimeline() {
	bookingID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetTimeline(bookingID).
			Return(&service.TimelineSnapshotResponse{BookingID: bookingID, BookingCode: "BK-001"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/operations/bookings/"+bookingID.String()+"/timeline", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "BK-001")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/operations/bookings/not-a-uuid/timeline", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetTimeline(bookingID).
			Return(nil, apperrors.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/operations/bookings/"+bookingID.String()+"/timeline", nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (suite *RegistrationHandlerTestSuite) TestAdvanceStage() {
	bookingID := uuid.New()
	stageID := uuid.New()
	body, _ := json.Marshal(service.AdvanceStageRequest{StageID: stageID, Note: "docs verified"})

	suite.T().Run("Editable Mount Passes Editable Mode", func(t *testing.T) {
		suite.mockService.EXPECT().
			AdvanceStage(bookingID, gomock.Any(), gomock.Any(), viewmode.ModeEditable).
			Return(&service.TimelineSnapshotResponse{BookingID: bookingID}, nil)

		req := httptest.NewRequest(http.MethodPost, "/operations/bookings/"+bookingID.String()+"/advance", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Post Sales Mount Passes Read Only Mode", func(t *testing.T) {
		suite.mockService.EXPECT().
			AdvanceStage(bookingID, gomock.Any(), gomock.Any(), viewmode.ModeReadOnly).
			Return(nil, apperrors.ErrReadOnlyMode)

		req := httptest.NewRequest(http.MethodPost, "/post-sales/bookings/"+bookingID.String()+"/advance", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	suite.T().Run("Transition Not Allowed Maps To 422", func(t *testing.T) {
		suite.mockService.EXPECT().
			AdvanceStage(bookingID, gomock.Any(), gomock.Any(), viewmode.ModeEditable).
			Return(nil, apperrors.ErrStageTransitionNotAllowed)

		req := httptest.NewRequest(http.MethodPost, "/operations/bookings/"+bookingID.String()+"/advance", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	suite.T().Run("Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/operations/bookings/"+bookingID.String()+"/advance", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (suite *RegistrationHandlerTestSuite) TestShiftBooking() {
	bookingID := uuid.New()
	body, _ := json.Marshal(service.ShiftBookingRequest{Note: "moved to tower B"})

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			ShiftBooking(bookingID, gomock.Any(), gomock.Any(), viewmode.ModeEditable).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/operations/bookings/"+bookingID.String()+"/shift", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Already Shifted Maps To 409", func(t *testing.T) {
		suite.mockService.EXPECT().
			ShiftBooking(bookingID, gomock.Any(), gomock.Any(), viewmode.ModeEditable).
			Return(apperrors.ErrBookingAlreadyShifted)

		req := httptest.NewRequest(http.MethodPost, "/operations/bookings/"+bookingID.String()+"/shift", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// Run the test suite
func TestRegistrationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}
