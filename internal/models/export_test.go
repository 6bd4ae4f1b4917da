package models_test

import (
	"strings"

	"github.com/expenses-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExport() {
	source := suite.createTestSource(models.Source{Name: "Checking"})
	family := suite.createTestCategoryFamily(models.CategoryFamily{Name: "Groceries"})
	suite.createTestExpense(models.Expense{
		Description: "SUPERMARKET", Amount: decimal.NewFromFloat(12.34),
		Date: date(2024, 1, 5), SourceID: source.ID, CategoryFamilyID: family.ID,
	})

	dump, err := models.Export(models.DB)
	require.NoError(suite.T(), err)

	assert.True(suite.T(), strings.HasPrefix(dump, "PRAGMA foreign_keys=OFF;"))
	assert.Contains(suite.T(), dump, "INSERT INTO sources")
	assert.Contains(suite.T(), dump, "INSERT INTO category_families")
	assert.Contains(suite.T(), dump, "INSERT INTO expenses")
	assert.Contains(suite.T(), dump, "'SUPERMARKET'")
	assert.Contains(suite.T(), dump, "COMMIT;")
}

func (suite *TestSuiteStandard) TestExportEmptyDatabase() {
	dump, err := models.Export(models.DB)
	require.NoError(suite.T(), err)
	assert.NotContains(suite.T(), dump, "INSERT INTO")
}
