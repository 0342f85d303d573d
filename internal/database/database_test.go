//go:build integration
// +build integration

package database_test

import (
	"strings"
	"testing"

	"realty-crm-backend/internal/database"
	"realty-crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm/logger"
)

// DatabaseTestSuite tests connection initialization options
type DatabaseTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
}

// SetupSuite runs before all tests in the suite
func (suite *DatabaseTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
}

// TearDownSuite runs after all tests in the suite
func (suite *DatabaseTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// TestSkipAutoMigrate tests that migration can be turned off and that
// the default still migrates
func (suite *DatabaseTestSuite) TestSkipAutoMigrate() {
	// A fresh database in the shared container, so testdb's schema
	// cannot mask the outcome. CREATE DATABASE has no IF NOT EXISTS;
	// a second run just fails the statement.
	_ = suite.baseTestSuite.DB.Exec("CREATE DATABASE migrate_check").Error
	dsn := strings.Replace(suite.baseTestSuite.Config.DatabaseURL, "/testdb", "/migrate_check", 1)

	db, err := database.Initialize(dsn, &database.Options{
		LogLevel:        logger.Silent,
		SkipAutoMigrate: true,
	})
	suite.Require().NoError(err)
	suite.False(db.Migrator().HasTable("projects"))

	db, err = database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
	suite.Require().NoError(err)
	suite.True(db.Migrator().HasTable("projects"))
	suite.True(db.Migrator().HasTable("stage_histories"))
}

// Run the test suite
func TestDatabaseTestSuite(t *testing.T) {
	suite.Run(t, new(DatabaseTestSuite))
}
