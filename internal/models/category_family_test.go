package models_test

import (
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryFamilyInvalidPattern() {
	err := models.DB.Create(&models.CategoryFamily{
		Name:    "Broken",
		Pattern: "[unclosed",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrInvalidRegexPattern)
}

func (suite *TestSuiteStandard) TestCategoryFamilyNameUnique() {
	suite.createTestCategoryFamily(models.CategoryFamily{Name: "Groceries"})

	err := models.DB.Create(&models.CategoryFamily{Name: "Groceries"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryFamilyNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryFamilyMatches() {
	family := models.CategoryFamily{Pattern: "TIM HORTONS|STARBUCKS"}

	assert.True(suite.T(), family.Matches("STARBUCKS #1234 MONTREAL"))
	assert.True(suite.T(), family.Matches("tim hortons 567"))
	assert.False(suite.T(), family.Matches("GROCERY STORE"))
	assert.False(suite.T(), models.CategoryFamily{}.Matches("STARBUCKS"))
}

func (suite *TestSuiteStandard) TestCategoryFamilyCombine() {
	survivor := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Restaurants"})
	loser := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Coffee"})

	category := suite.createTestCategory(models.Category{Name: "Coffee", CategoryFamilyID: loser.ID})
	expense := suite.createTestExpense(models.Expense{CategoryFamilyID: loser.ID, Amount: decimal.NewFromFloat(4.5)})
	budget := suite.createTestBudget(models.Budget{CategoryFamilyID: loser.ID, Frequency: models.FrequencyMonthly})

	err := survivor.Combine(models.DB, loser, "Eating out")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Eating out", survivor.Name)

	// The loser is gone
	err = models.DB.First(&models.CategoryFamily{}, loser.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	// Everything references the survivor now
	require.NoError(suite.T(), models.DB.First(&category, category.ID).Error)
	assert.Equal(suite.T(), survivor.ID, category.CategoryFamilyID)

	require.NoError(suite.T(), models.DB.First(&expense, expense.ID).Error)
	assert.Equal(suite.T(), survivor.ID, expense.CategoryFamilyID)

	require.NoError(suite.T(), models.DB.First(&budget, budget.ID).Error)
	assert.Equal(suite.T(), survivor.ID, budget.CategoryFamilyID)
}

func (suite *TestSuiteStandard) TestCategoryFamilyCombineSelf() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Self"})

	err := family.Combine(models.DB, family, "Still self")
	assert.ErrorIs(suite.T(), err, models.ErrCombineSameFamily)
}

func (suite *TestSuiteStandard) TestCategoryFamilyCombineBudgetConflict() {
	survivor := suite.createTestCategoryFamily(models.CategoryFamily{Name: "A"})
	loser := suite.createTestCategoryFamily(models.CategoryFamily{Name: "B"})

	suite.createTestBudget(models.Budget{CategoryFamilyID: survivor.ID, Frequency: models.FrequencyMonthly})
	loserBudget := suite.createTestBudget(models.Budget{CategoryFamilyID: loser.ID, Frequency: models.FrequencyMonthly})

	err := survivor.Combine(models.DB, loser, "AB")
	assert.ErrorIs(suite.T(), err, models.ErrBudgetExists)

	// The merge rolled back completely
	var loserReloaded models.CategoryFamily
	require.NoError(suite.T(), models.DB.First(&loserReloaded, loser.ID).Error)

	require.NoError(suite.T(), models.DB.First(&loserBudget, loserBudget.ID).Error)
	assert.Equal(suite.T(), loser.ID, loserBudget.CategoryFamilyID)
}

func (suite *TestSuiteStandard) TestCategoryFamilyCategories() {
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Transport"})
	suite.createTestCategory(models.Category{Name: "Gas", CategoryFamilyID: family.ID})
	suite.createTestCategory(models.Category{Name: "Transit", CategoryFamilyID: family.ID})
	suite.createTestCategory(models.Category{Name: "Elsewhere", CategoryFamilyID: uuid.Nil})

	categories, err := family.Categories(models.DB)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), categories, 2)
}
