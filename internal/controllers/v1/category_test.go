package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/expenses-tracker/backend/internal/controllers/v1"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/expenses-tracker/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("POST", r.Header().Get("allow"))

	category := suite.createTestCategory(models.Category{})
	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoryCreate() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{
		Name:             "Restaurants",
		CategoryFamilyID: family.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Restaurants", response.Data.Name)
	suite.Assert().Equal(family.ID, response.Data.CategoryFamilyID)
}

func (suite *TestSuiteStandard) TestCategoryCreateUnknownFamily() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{
		Name:             "Restaurants",
		CategoryFamilyID: uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// The conflict check is case-insensitive and reports which family
// already holds the name.
func (suite *TestSuiteStandard) TestCategoryCreateConflict() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food"})
	suite.createTestCategory(models.Category{Name: "Restaurants", CategoryFamilyID: family.ID})

	other := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Leisure"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{
		Name:             "RESTAURANTS",
		CategoryFamilyID: other.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, "Restaurants")
	suite.Assert().Contains(*response.Error, "Food")
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	category := suite.createTestCategory(models.Category{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
