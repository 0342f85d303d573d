package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"realty-crm-backend/internal/api/handlers"
	apperrors "realty-crm-backend/internal/errors"
	"realty-crm-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StageHandlerTestSuite defines the test suite for StageHandler
type StageHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStageServiceInterface
	handler     *handlers.StageHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *StageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStageServiceInterface(suite.ctrl)
	suite.handler = handlers.NewStageHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.DELETE("/api/v1/stages/:id", suite.handler.DeleteStage)
}

// TearDownTest cleans up after each test
func (suite *StageHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StageHandlerTestSuite) deleteStage(id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/stages/"+id, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestDeleteStage tests deleting an unreferenced stage
func (suite *StageHandlerTestSuite) TestDeleteStage() {
	stageID := uuid.New()
	suite.mockService.EXPECT().Delete(stageID).Return(nil)

	w := suite.deleteStage(stageID.String())

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestDeleteStageInUse tests that deleting a stage referenced by
// registration history is rejected with a conflict
func (suite *StageHandlerTestSuite) TestDeleteStageInUse() {
	stageID := uuid.New()
	suite.mockService.EXPECT().Delete(stageID).Return(apperrors.ErrStageInUse)

	w := suite.deleteStage(stageID.String())

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var response map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(suite.T(), response["error"], "registration history")
}

// TestDeleteStageNotFound tests deleting a missing stage
func (suite *StageHandlerTestSuite) TestDeleteStageNotFound() {
	stageID := uuid.New()
	suite.mockService.EXPECT().Delete(stageID).Return(apperrors.ErrStageNotFound)

	w := suite.deleteStage(stageID.String())

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteStageInvalidID tests that a malformed stage ID is rejected
func (suite *StageHandlerTestSuite) TestDeleteStageInvalidID() {
	w := suite.deleteStage("not-a-uuid")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// Run the test suite
func TestStageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StageHandlerTestSuite))
}
