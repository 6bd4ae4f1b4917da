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

const bncStatement = `Date;card Number;Description;Category;Debit;Credit
2024-01-05;**1234;COFFEE SHOP;Restaurants;4.50;
2024-01-06;**1234;GROCERY STORE;Groceries;52.10;
`

func (suite *TestSuiteStandard) TestExpensesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses/upload", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("POST", r.Header().Get("allow"))

	expense := suite.createTestExpense(models.Expense{})
	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpenseCreateWithFamily() {
	source := suite.createTestSource(models.Source{Name: "Checking"})
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", v1.ExpenseEditable{
		Description:      "COFFEE SHOP",
		Amount:           decimal.NewFromFloat(4.5),
		Date:             time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CategoryFamilyID: family.ID,
		SourceID:         source.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("COFFEE SHOP", response.Data.Description)
	suite.Assert().Equal("Checking", response.Data.Source.Name)
	suite.Assert().Equal("Food", response.Data.CategoryFamily.Name)
	suite.Assert().Nil(response.Data.User)
	suite.Assert().Contains(response.Data.Links.Self, fmt.Sprintf("/v1/expenses/%s", response.Data.ID))
}

// Without an explicit family the classification engine resolves one
// from the description.
func (suite *TestSuiteStandard) TestExpenseCreateClassified() {
	source := suite.createTestSource(models.Source{})
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Food", Pattern: "COFFEE"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", v1.ExpenseEditable{
		Description: "COFFEE SHOP",
		Amount:      decimal.NewFromFloat(4.5),
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		SourceID:    source.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(family.ID, response.Data.CategoryFamily.ID)
}

func (suite *TestSuiteStandard) TestExpenseCreateDuplicate() {
	user := suite.createTestUser(models.User{})
	expense := suite.createTestExpense(models.Expense{Description: "COFFEE SHOP", UserID: &user.ID})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", v1.ExpenseEditable{
		Description:      expense.Description,
		Amount:           expense.Amount,
		Date:             expense.Date,
		CategoryFamilyID: expense.CategoryFamilyID,
		SourceID:         expense.SourceID,
		UserID:           &user.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrExpenseExists.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestExpenseList() {
	suite.createTestExpense(models.Expense{Description: "COFFEE SHOP", Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)})
	suite.createTestExpense(models.Expense{Description: "GAS STATION", Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)})
	suite.createTestExpense(models.Expense{Description: "HARDWARE STORE", Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Newest first
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("HARDWARE STORE", response.Data[0].Description)
	suite.Assert().Equal("COFFEE SHOP", response.Data[2].Description)
}

func (suite *TestSuiteStandard) TestExpenseListWindow() {
	suite.createTestExpense(models.Expense{Description: "JANUARY", Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)})
	suite.createTestExpense(models.Expense{Description: "FEBRUARY", Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)})
	suite.createTestExpense(models.Expense{Description: "MARCH", Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?startDate=2024-02-01&endDate=2024-02-29", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("FEBRUARY", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestExpenseListDescriptionGlob() {
	suite.createTestExpense(models.Expense{Description: "COFFEE SHOP DOWNTOWN"})
	suite.createTestExpense(models.Expense{Description: "Coffee shop uptown"})
	suite.createTestExpense(models.Expense{Description: "GAS STATION"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?description=*coffee*", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestExpenseListBadDate() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?startDate=05/01/2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// Moving an expense to another family locks its category so the next
// reclassification run leaves it alone.
func (suite *TestSuiteStandard) TestExpenseUpdateFamilyLocksCategory() {
	expense := suite.createTestExpense(models.Expense{})
	target := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Leisure"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), map[string]any{
		"categoryFamilyId": target.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(target.ID, response.Data.CategoryFamily.ID)
	suite.Assert().True(response.Data.LockCategory)
}

func (suite *TestSuiteStandard) TestExpenseUpdateUnknownFamily() {
	expense := suite.createTestExpense(models.Expense{})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), map[string]any{
		"categoryFamilyId": uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseUpdateCalculationStatus() {
	expense := suite.createTestExpense(models.Expense{})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), map[string]any{
		"calculationStatus": models.CalculationSkip,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.CalculationSkip, response.Data.CalculationStatus)

	// Fields not named in the body are untouched
	suite.Assert().Equal(expense.Description, response.Data.Description)
	suite.Assert().False(response.Data.LockCategory)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	expense := suite.createTestExpense(models.Expense{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseUploadProbed() {
	suite.createTestSource(models.Source{Type: models.SourceTypeBNC, CardNumber: "1234"})

	body, headers := test.UploadBody(suite.T(), []test.StatementFile{
		{Name: "statement.csv", Content: []byte(bncStatement)},
	}, nil)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/upload", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UploadResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(2, response.Data.Created)
	suite.Assert().Equal(0, response.Data.Existing)
	suite.Assert().Empty(response.Data.Failed)

	// Uploading the same statement again creates nothing new
	body, headers = test.UploadBody(suite.T(), []test.StatementFile{
		{Name: "statement.csv", Content: []byte(bncStatement)},
	}, nil)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/upload", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(0, response.Data.Created)
	suite.Assert().Equal(2, response.Data.Existing)
}

func (suite *TestSuiteStandard) TestExpenseUploadWithSource() {
	source := suite.createTestSource(models.Source{Type: models.SourceTypeBNC, CardNumber: "1234"})

	body, headers := test.UploadBody(suite.T(), []test.StatementFile{
		{Name: "statement.csv", Content: []byte(bncStatement)},
	}, map[string]string{"sourceId": source.ID.String()})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/upload", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UploadResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(2, response.Data.Created)

	var expenses []models.Expense
	suite.Require().NoError(models.DB.Find(&expenses).Error)
	for _, expense := range expenses {
		suite.Assert().Equal(source.ID, expense.SourceID)
	}
}

func (suite *TestSuiteStandard) TestExpenseUploadBrokenFileDoesNotAbort() {
	suite.createTestSource(models.Source{Type: models.SourceTypeBNC, CardNumber: "1234"})

	body, headers := test.UploadBody(suite.T(), []test.StatementFile{
		{Name: "statement.csv", Content: []byte(bncStatement)},
		{Name: "notes.txt", Content: []byte("not a statement")},
	}, nil)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/upload", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UploadResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(2, response.Data.Created)
	suite.Require().Len(response.Data.Failed, 1)
	suite.Assert().Equal("notes.txt", response.Data.Failed[0].Filename)
}

func (suite *TestSuiteStandard) TestExpenseUploadNoFiles() {
	body, headers := test.UploadBody(suite.T(), nil, map[string]string{"sourceId": uuid.NewString()})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/upload", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.UploadResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, "at least one file")
}

func (suite *TestSuiteStandard) TestExpenseUploadUnknownSource() {
	body, headers := test.UploadBody(suite.T(), []test.StatementFile{
		{Name: "statement.csv", Content: []byte(bncStatement)},
	}, map[string]string{"sourceId": uuid.NewString()})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses/upload", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
