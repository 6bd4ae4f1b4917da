package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/expenses-tracker/backend/internal/controllers/v1"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/expenses-tracker/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCategoryFamiliesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/category-families", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/category-families/combine", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("PATCH", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/category-families/recalculate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoryFamilyListAndGet() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food", Pattern: "IGA|METRO"})
	suite.createTestCategoryFamily(models.CategoryFamily{Name: "Leisure"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-families", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.CategoryFamilyListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("Food", list.Data[0].Name)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/category-families/%s", family.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var single v1.CategoryFamilyResponse
	test.DecodeResponse(suite.T(), &r, &single)
	suite.Assert().Equal("IGA|METRO", single.Data.Pattern)
}

func (suite *TestSuiteStandard) TestCategoryFamilyMapping() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food"})
	suite.createTestCategory(models.Category{Name: "Restaurants", CategoryFamilyID: family.ID})
	suite.createTestCategory(models.Category{Name: "Groceries", CategoryFamilyID: family.ID})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-families/mapping", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryFamilyListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Len(response.Data[0].Categories, 2)
}

func (suite *TestSuiteStandard) TestCategoryFamilyUpdatePattern() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-families/%s/regex", family.ID), v1.PatternEditable{Pattern: "UBER\\s*EATS"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryFamilyResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(`UBER\s*EATS`, response.Data.Pattern)

	// A whitespace-only pattern removes the pattern
	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-families/%s/regex", family.ID), v1.PatternEditable{Pattern: "   "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var reloaded models.CategoryFamily
	suite.Require().NoError(models.DB.First(&reloaded, family.ID).Error)
	suite.Assert().Empty(reloaded.Pattern)
}

func (suite *TestSuiteStandard) TestCategoryFamilyUpdatePatternInvalid() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-families/%s/regex", family.ID), v1.PatternEditable{Pattern: "(["})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryFamilyResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, models.ErrInvalidRegexPattern.Error())
}

func (suite *TestSuiteStandard) TestCategoryFamilyCombine() {
	survivor := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food"})
	loser := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Dining"})
	suite.createTestCategory(models.Category{Name: "Restaurants", CategoryFamilyID: loser.ID})
	expense := suite.createTestExpense(models.Expense{CategoryFamilyID: loser.ID})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/category-families/combine", v1.CombineEditable{
		SurvivingID: survivor.ID,
		DeletingID:  loser.ID,
		Name:        "Food & Dining",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryFamilyResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Food & Dining", response.Data.Name)
	suite.Require().Len(response.Data.Categories, 1)

	var moved models.Expense
	suite.Require().NoError(models.DB.First(&moved, expense.ID).Error)
	suite.Assert().Equal(survivor.ID, moved.CategoryFamilyID)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/category-families/%s", loser.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryFamilyCombineUnknownFamily() {
	survivor := suite.createTestCategoryFamily(models.CategoryFamily{})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/category-families/combine", v1.CombineEditable{
		SurvivingID: survivor.ID,
		DeletingID:  uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryFamilyRecalculate() {
	food := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food", Pattern: "RESTAURANT"})
	other := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Uncategorized"})

	moving := suite.createTestExpense(models.Expense{Description: "RESTAURANT LE PARIS", CategoryFamilyID: other.ID})
	locked := suite.createTestExpense(models.Expense{Description: "RESTAURANT CHEZ MOI", CategoryFamilyID: other.ID, LockCategory: true})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/category-families/recalculate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReclassifyResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(1, response.Data.UpdatedExpenses)

	var movedExpense models.Expense
	suite.Require().NoError(models.DB.First(&movedExpense, moving.ID).Error)
	suite.Assert().Equal(food.ID, movedExpense.CategoryFamilyID)

	var lockedExpense models.Expense
	suite.Require().NoError(models.DB.First(&lockedExpense, locked.ID).Error)
	suite.Assert().Equal(other.ID, lockedExpense.CategoryFamilyID)
}
