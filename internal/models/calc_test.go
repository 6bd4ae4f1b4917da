package models_test

import (
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSourceAverages() {
	checking := suite.createTestSource(models.Source{Name: "Checking"})
	card := suite.createTestSource(models.Source{Name: "Card"})
	suite.createTestSource(models.Source{Name: "Dormant"})
	family := suite.createTestCategoryFamily(models.CategoryFamily{})

	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(300), Date: date(2024, 1, 10),
		SourceID: checking.ID, CategoryFamilyID: family.ID,
	})
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(150), Date: date(2024, 2, 10),
		SourceID: checking.ID, CategoryFamilyID: family.ID,
	})
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(90), Date: date(2024, 1, 15),
		SourceID: card.ID, CategoryFamilyID: family.ID,
	})

	from := date(2024, 1, 1)
	until := date(2024, 3, 31)
	averages, err := models.SourceAverages(models.DB, &from, &until)
	require.NoError(suite.T(), err)

	// The dormant source has no expenses and is not reported
	require.Len(suite.T(), averages, 2)

	byName := make(map[string]decimal.Decimal)
	for _, a := range averages {
		byName[a.Source.Name] = a.Average
	}

	assert.True(suite.T(), byName["Checking"].Equal(decimal.NewFromInt(150)), "average is %s", byName["Checking"])
	assert.True(suite.T(), byName["Card"].Equal(decimal.NewFromInt(30)), "average is %s", byName["Card"])
}

func (suite *TestSuiteStandard) TestSourceAveragesWindowBoundsInclusive() {
	source := suite.createTestSource(models.Source{Name: "Bounds"})
	family := suite.createTestCategoryFamily(models.CategoryFamily{})

	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(10), Date: date(2024, 1, 1),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(20), Date: date(2024, 1, 31),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})
	// Outside the window
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(99), Date: date(2024, 2, 1),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})

	from := date(2024, 1, 1)
	until := date(2024, 1, 31)
	averages, err := models.SourceAverages(models.DB, &from, &until)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), averages, 1)
	assert.True(suite.T(), averages[0].Average.Equal(decimal.NewFromInt(30)), "average is %s", averages[0].Average)
}

func (suite *TestSuiteStandard) TestSourceAveragesEmpty() {
	averages, err := models.SourceAverages(models.DB, nil, nil)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), averages)
}

func (suite *TestSuiteStandard) TestResolveWindowDefaults() {
	source := suite.createTestSource(models.Source{})
	family := suite.createTestCategoryFamily(models.CategoryFamily{})

	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(5), Date: date(2022, 7, 3),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})
	suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(5), Date: date(2023, 1, 1),
		SourceID: source.ID, CategoryFamilyID: family.ID,
	})

	start, end, err := models.ResolveWindow(models.DB, nil, nil)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), date(2022, 7, 3), start)
	assert.True(suite.T(), end.After(start))
}
