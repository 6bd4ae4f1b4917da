package v1_test

import (
	"net/http"

	"github.com/expenses-tracker/backend/internal/models"
	"github.com/expenses-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestCleanup() {
	_ = suite.createTestExpense(models.Expense{})
	_ = suite.createTestBudget(models.Budget{})
	_ = suite.createTestCategory(models.Category{})
	_ = suite.createTestUser(models.User{})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var count int64
	for _, model := range []any{models.Expense{}, models.Budget{}, models.Category{}, models.CategoryFamily{}, models.Source{}, models.User{}} {
		suite.Require().NoError(models.DB.Unscoped().Model(model).Count(&count).Error)
		suite.Assert().Equal(int64(0), count, "%T is not empty", model)
	}
}

func (suite *TestSuiteStandard) TestCleanupWrongConfirmation() {
	source := suite.createTestSource(models.Source{})

	for _, query := range []string{"", "?confirm=yes", "?confirm=YES-PLEASE-DELETE-EVERYTHING"} {
		r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1"+query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Source{}).Where("id = ?", source.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
