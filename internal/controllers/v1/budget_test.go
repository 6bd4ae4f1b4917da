package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/expenses-tracker/backend/internal/controllers/v1"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/expenses-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))

	budget := suite.createTestBudget(models.Budget{})
	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets/calculate", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetCreateAndGet() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		Amount:           decimal.New(400, 0),
		Frequency:        models.FrequencyMonthly,
		CategoryFamilyID: family.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Assert().Equal(family.ID, created.Data.CategoryFamilyID)
	suite.Assert().Contains(created.Data.Links.Calculate, fmt.Sprintf("/v1/budgets/%s/calculate", created.Data.ID))

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &fetched)
	suite.Assert().True(fetched.Data.Amount.Equal(decimal.New(400, 0)), "amount is %s", fetched.Data.Amount)
}

func (suite *TestSuiteStandard) TestBudgetCreateUnknownFamily() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		Amount:           decimal.New(400, 0),
		Frequency:        models.FrequencyMonthly,
		CategoryFamilyID: uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetCreateDuplicate() {
	budget := suite.createTestBudget(models.Budget{Frequency: models.FrequencyMonthly})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		Amount:           decimal.New(100, 0),
		Frequency:        models.FrequencyMonthly,
		CategoryFamilyID: budget.CategoryFamilyID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrBudgetExists.Error(), *response.Error)

	// A second frequency for the same family is fine
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		Amount:           decimal.New(1200, 0),
		Frequency:        models.FrequencyYearly,
		CategoryFamilyID: budget.CategoryFamilyID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestBudgetCreateInvalidFrequency() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		Amount:           decimal.New(400, 0),
		Frequency:        "WEEKLY",
		CategoryFamilyID: family.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrInvalidFrequency.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestBudgetList() {
	suite.createTestBudget(models.Budget{})
	suite.createTestBudget(models.Budget{})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	budget := suite.createTestBudget(models.Budget{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetCalculate() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food"})
	budget := suite.createTestBudget(models.Budget{
		Amount:           decimal.New(120, 0),
		Frequency:        models.FrequencyMonthly,
		CategoryFamilyID: family.ID,
	})

	// 100 per month over three months
	for month := time.Month(1); month <= 3; month++ {
		suite.createTestExpense(models.Expense{
			Amount:           decimal.New(100, 0),
			Date:             time.Date(2024, month, 10, 0, 0, 0, 0, time.UTC),
			CategoryFamilyID: family.ID,
		})
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s/calculate?startDate=2024-01-01&endDate=2024-03-31", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetAverageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Average.Equal(decimal.New(100, 0)), "average is %s", response.Data.Average)
	suite.Assert().Equal(budget.ID, response.Data.Budget.ID)
}

func (suite *TestSuiteStandard) TestBudgetCalculateAll() {
	food := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food"})
	leisure := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Leisure"})

	suite.createTestBudget(models.Budget{Amount: decimal.New(120, 0), CategoryFamilyID: food.ID})
	suite.createTestBudget(models.Budget{Amount: decimal.New(50, 0), CategoryFamilyID: leisure.ID})

	for month := time.Month(1); month <= 2; month++ {
		suite.createTestExpense(models.Expense{
			Amount:           decimal.New(80, 0),
			Date:             time.Date(2024, month, 5, 0, 0, 0, 0, time.UTC),
			CategoryFamilyID: food.ID,
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/calculate?startDate=2024-01-01&endDate=2024-02-29", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetAverageListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().True(response.Data[0].Average.Equal(decimal.New(80, 0)), "average is %s", response.Data[0].Average)

	// The leisure budget has no expenses
	suite.Assert().True(response.Data[1].Average.IsZero(), "average is %s", response.Data[1].Average)
}

func (suite *TestSuiteStandard) TestBudgetCalculateNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s/calculate", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
