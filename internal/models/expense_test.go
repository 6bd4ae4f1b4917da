package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/expenses-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseTrimWhitespace() {
	description := "  COFFEE SHOP MONTREAL  "
	category := "\tRestaurants "

	expense := suite.createTestExpense(models.Expense{
		Description:      description,
		OriginalCategory: category,
		Amount:           decimal.NewFromFloat(4.5),
	})

	assert.Equal(suite.T(), strings.TrimSpace(description), expense.Description)
	assert.Equal(suite.T(), strings.TrimSpace(category), expense.OriginalCategory)
}

func (suite *TestSuiteStandard) TestExpenseDateTruncated() {
	expense := suite.createTestExpense(models.Expense{
		Date: time.Date(2024, 3, 14, 15, 9, 26, 0, time.FixedZone("EST", -5*3600)),
	})

	assert.Equal(suite.T(), time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), expense.Date)
}

func (suite *TestSuiteStandard) TestExpenseRequiresSource() {
	err := models.DB.Create(&models.Expense{
		Description:      "no source",
		CategoryFamilyID: suite.createTestCategoryFamily(models.CategoryFamily{}).ID,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrExpenseSourceMissing)
}

func (suite *TestSuiteStandard) TestExpenseInvalidCalculationStatus() {
	err := models.DB.Create(&models.Expense{
		Description:       "bad status",
		CalculationStatus: "MAYBE",
		SourceID:          suite.createTestSource(models.Source{}).ID,
		CategoryFamilyID:  suite.createTestCategoryFamily(models.CategoryFamily{}).ID,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrInvalidCalculation)
}

func (suite *TestSuiteStandard) TestExpenseDuplicateIdentity() {
	source := suite.createTestSource(models.Source{})
	family := suite.createTestCategoryFamily(models.CategoryFamily{})
	user := suite.createTestUser(models.User{})

	expense := models.Expense{
		Description:      "GROCERY STORE",
		Amount:           decimal.NewFromFloat(54.23),
		Date:             time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		UserID:           &user.ID,
		SourceID:         source.ID,
		CategoryFamilyID: family.ID,
	}
	suite.createTestExpense(expense)

	duplicate := expense
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpenseExists)

	// Changing any single identity field makes the expense distinct
	differentAmount := expense
	differentAmount.Amount = decimal.NewFromFloat(54.24)
	assert.NoError(suite.T(), models.DB.Create(&differentAmount).Error)

	differentDate := expense
	differentDate.Date = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	assert.NoError(suite.T(), models.DB.Create(&differentDate).Error)

	differentUser := expense
	differentUser.UserID = nil
	assert.NoError(suite.T(), models.DB.Create(&differentUser).Error)
}

func (suite *TestSuiteStandard) TestExpenseNilUserPointer() {
	nilID := uuid.Nil
	expense := suite.createTestExpense(models.Expense{
		UserID: &nilID,
	})

	assert.Nil(suite.T(), expense.UserID)
}

func (suite *TestSuiteStandard) TestExpenseIncluded() {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		status   string
		included bool
	}{
		{"positive", decimal.NewFromFloat(10), "", true},
		{"zero", decimal.Zero, "", true},
		{"negative", decimal.NewFromFloat(-10), "", false},
		{"negative forced in", decimal.NewFromFloat(-10), models.CalculationInclude, true},
		{"positive skipped", decimal.NewFromFloat(10), models.CalculationSkip, false},
		{"negative skipped", decimal.NewFromFloat(-10), models.CalculationSkip, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			expense := models.Expense{Amount: tt.amount, CalculationStatus: tt.status}
			assert.Equal(t, tt.included, expense.Included())
		})
	}
}
