package models_test

import (
	"time"

	"github.com/expenses-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (suite *TestSuiteStandard) TestBudgetInvalidFrequency() {
	err := models.DB.Create(&models.Budget{
		Frequency:        "WEEKLY",
		CategoryFamilyID: suite.createTestCategoryFamily(models.CategoryFamily{}).ID,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrInvalidFrequency)
}

func (suite *TestSuiteStandard) TestBudgetUniquePerFamilyAndFrequency() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{})
	suite.createTestBudget(models.Budget{CategoryFamilyID: family.ID, Frequency: models.FrequencyMonthly})

	err := models.DB.Create(&models.Budget{
		CategoryFamilyID: family.ID,
		Frequency:        models.FrequencyMonthly,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetExists)

	// A different frequency for the same family is fine
	suite.createTestBudget(models.Budget{CategoryFamilyID: family.ID, Frequency: models.FrequencyYearly})
}

func (suite *TestSuiteStandard) TestBudgetAverageMonthly() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Groceries"})
	source := suite.createTestSource(models.Source{})
	budget := suite.createTestBudget(models.Budget{CategoryFamilyID: family.ID, Frequency: models.FrequencyMonthly})

	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(300), Date: date(2024, 1, 10),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(150), Date: date(2024, 2, 10),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})

	from := date(2024, 1, 1)
	until := date(2024, 3, 31)
	average, err := budget.Average(models.DB, &from, &until)
	require.NoError(suite.T(), err)

	// Jan 1 to Mar 31 spans 2 whole months plus remainder days
	assert.True(suite.T(), average.Equal(decimal.NewFromInt(150)), "average is %s", average)
}

func (suite *TestSuiteStandard) TestBudgetAverageExcludesOtherFamilies() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Mine"})
	other := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Other"})
	source := suite.createTestSource(models.Source{})
	budget := suite.createTestBudget(models.Budget{CategoryFamilyID: family.ID, Frequency: models.FrequencyMonthly})

	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(100), Date: date(2024, 1, 10),
		SourceID: source.ID, CategoryFamilyID: other.ID,
	})

	from := date(2024, 1, 1)
	until := date(2024, 1, 31)
	average, err := budget.Average(models.DB, &from, &until)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), average.IsZero(), "average is %s", average)
}

func (suite *TestSuiteStandard) TestBudgetAverageInclusionRules() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Rules"})
	source := suite.createTestSource(models.Source{})
	budget := suite.createTestBudget(models.Budget{CategoryFamilyID: family.ID, Frequency: models.FrequencyMonthly})

	// Counted
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(100), Date: date(2024, 1, 5),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})
	// Refund, not counted
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(-40), Date: date(2024, 1, 6),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})
	// Refund forced in
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(-10), Date: date(2024, 1, 7),
		CalculationStatus: models.CalculationInclude,
		SourceID:          source.ID, CategoryFamilyID: family.ID,
	})
	// Spend forced out
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(500), Date: date(2024, 1, 8),
		CalculationStatus: models.CalculationSkip,
		SourceID:          source.ID, CategoryFamilyID: family.ID,
	})

	from := date(2024, 1, 1)
	until := date(2024, 1, 25)
	average, err := budget.Average(models.DB, &from, &until)
	require.NoError(suite.T(), err)

	// 100 - 10 over a single (partial) month
	assert.True(suite.T(), average.Equal(decimal.NewFromInt(90)), "average is %s", average)
}

func (suite *TestSuiteStandard) TestBudgetAverageYearlyShortWindow() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Yearly"})
	source := suite.createTestSource(models.Source{})
	budget := suite.createTestBudget(models.Budget{CategoryFamilyID: family.ID, Frequency: models.FrequencyYearly})

	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(250), Date: date(2024, 2, 1),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})

	// Less than a month, not even one full year: the raw sum is reported
	from := date(2024, 2, 1)
	until := date(2024, 2, 20)
	average, err := budget.Average(models.DB, &from, &until)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), average.Equal(decimal.NewFromInt(250)), "average is %s", average)
}

func (suite *TestSuiteStandard) TestBudgetAverageYearly() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "YearlySpan"})
	source := suite.createTestSource(models.Source{})
	budget := suite.createTestBudget(models.Budget{CategoryFamilyID: family.ID, Frequency: models.FrequencyYearly})

	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(600), Date: date(2023, 3, 1),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(400), Date: date(2024, 3, 1),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})

	// Two full years
	from := date(2023, 1, 1)
	until := date(2025, 1, 1)
	average, err := budget.Average(models.DB, &from, &until)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), average.Equal(decimal.NewFromInt(500)), "average is %s", average)
}

func (suite *TestSuiteStandard) TestBudgetAverageNoExpenses() {
	budget := suite.createTestBudget(models.Budget{})

	from := date(2024, 1, 1)
	until := date(2024, 3, 1)
	average, err := budget.Average(models.DB, &from, &until)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), average.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetAverageDefaultWindow() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Open"})
	source := suite.createTestSource(models.Source{})
	budget := suite.createTestBudget(models.Budget{CategoryFamilyID: family.ID, Frequency: models.FrequencyMonthly})

	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(60), Date: date(2024, 5, 1),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})

	// No bounds: window runs from the earliest expense to today
	average, err := budget.Average(models.DB, nil, nil)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), average.IsPositive(), "average is %s", average)
}
