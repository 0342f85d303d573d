//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"realty-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// StageHistoryRepositoryTestSuite tests the StageHistoryRepository
type StageHistoryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StageHistoryRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *StageHistoryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewStageHistoryRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *StageHistoryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StageHistoryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StageHistoryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedBookingWithStages creates a project, its stage set and a booking
func (suite *StageHistoryRepositoryTestSuite) seedBookingWithStages() (uuid.UUID, []uuid.UUID) {
	db := suite.baseTestSuite.DB

	project := suite.factories.Project.Create()
	suite.NoError(db.Create(project).Error)

	stageIDs := make([]uuid.UUID, 0, 4)
	for _, stage := range suite.factories.Stage.CreateSet(project.ID) {
		suite.NoError(db.Create(stage).Error)
		stageIDs = append(stageIDs, stage.ID)
	}

	booking := suite.factories.Booking.Create(project.ID)
	suite.NoError(db.Create(booking).Error)

	return booking.ID, stageIDs
}

// TestCreateAndGetLatest tests appending entries and reading the newest one
func (suite *StageHistoryRepositoryTestSuite) TestCreateAndGetLatest() {
	bookingID, stageIDs := suite.seedBookingWithStages()

	first := suite.factories.StageHistory.Create(bookingID, nil, stageIDs[0])
	first.ChangedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.Create(first))

	fromID := stageIDs[0]
	second := suite.factories.StageHistory.Create(bookingID, &fromID, stageIDs[1])
	suite.NoError(suite.repo.Create(second))

	latest, err := suite.repo.GetLatestByBookingID(bookingID)
	suite.NoError(err)
	suite.Equal(stageIDs[1], latest.ToStageID)
	suite.NotNil(latest.FromStageID)
	suite.Equal(stageIDs[0], *latest.FromStageID)
}

// TestGetByBookingID tests that history comes back newest first with stages preloaded
func (suite *StageHistoryRepositoryTestSuite) TestGetByBookingID() {
	bookingID, stageIDs := suite.seedBookingWithStages()

	first := suite.factories.StageHistory.Create(bookingID, nil, stageIDs[0])
	first.ChangedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.Create(first))

	fromID := stageIDs[0]
	second := suite.factories.StageHistory.Create(bookingID, &fromID, stageIDs[2])
	suite.NoError(suite.repo.Create(second))

	history, err := suite.repo.GetByBookingID(bookingID)
	suite.NoError(err)
	suite.Len(history, 2)
	suite.Equal(stageIDs[2], history[0].ToStageID)
	suite.Equal("Agreement", history[0].ToStage.Name)
	suite.Nil(history[1].FromStageID)
}

// TestExistsByStageID tests that history references are found by origin
// and target stage alike
func (suite *StageHistoryRepositoryTestSuite) TestExistsByStageID() {
	bookingID, stageIDs := suite.seedBookingWithStages()

	fromID := stageIDs[0]
	suite.NoError(suite.repo.Create(suite.factories.StageHistory.Create(bookingID, &fromID, stageIDs[1])))

	exists, err := suite.repo.ExistsByStageID(stageIDs[1])
	suite.NoError(err)
	suite.True(exists, "target stage is referenced")

	exists, err = suite.repo.ExistsByStageID(stageIDs[0])
	suite.NoError(err)
	suite.True(exists, "origin stage is referenced")

	exists, err = suite.repo.ExistsByStageID(stageIDs[3])
	suite.NoError(err)
	suite.False(exists)
}

// TestCountByBookingID tests the history count
func (suite *StageHistoryRepositoryTestSuite) TestCountByBookingID() {
	bookingID, stageIDs := suite.seedBookingWithStages()

	count, err := suite.repo.CountByBookingID(bookingID)
	suite.NoError(err)
	suite.Zero(count)

	suite.NoError(suite.repo.Create(suite.factories.StageHistory.Create(bookingID, nil, stageIDs[0])))

	count, err = suite.repo.CountByBookingID(bookingID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// Run the test suite
func TestStageHistoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StageHistoryRepositoryTestSuite))
}
