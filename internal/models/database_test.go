package models_test

import (
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNotFoundMessage() {
	err := models.DB.First(&models.CategoryFamily{}, uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no category family matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestUniqueConstraintMessages() {
	suite.createTestSource(models.Source{Name: "Checking"})
	err := models.DB.Create(&models.Source{Name: "Checking"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrSourceNameNotUnique)

	suite.createTestUser(models.User{Username: "sam"})
	err = models.DB.Create(&models.User{Username: "sam"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrUserNameNotUnique)
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.First(&models.Source{}, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
