package v1

import (
	"fmt"

	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Amount           decimal.Decimal `json:"amount" example:"400"`                                            // Target amount per period
	Frequency        string          `json:"frequency" example:"MONTHLY"`                                     // MONTHLY or YEARLY
	CategoryFamilyID uuid.UUID       `json:"categoryFamilyId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the family the budget tracks
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Amount:           editable.Amount,
		Frequency:        editable.Frequency,
		CategoryFamilyID: editable.CategoryFamilyID,
	}
}

type BudgetLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/budgets/3b1ea324-d438-4419-882a-2fc91d71772f"`             // The budget itself
	Calculate string `json:"calculate" example:"https://example.com/api/v1/budgets/3b1ea324-d438-4419-882a-2fc91d71772f/calculate"` // Average spend for this budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Amount:           model.Amount,
			Frequency:        model.Frequency,
			CategoryFamilyID: model.CategoryFamilyID,
		},
		Links: BudgetLinks{
			Self:      fmt.Sprintf("%s/budgets/%s", httputil.RequestPathV1(c), model.ID),
			Calculate: fmt.Sprintf("%s/budgets/%s/calculate", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the Budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of Budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// BudgetAverage pairs a budget with the average spend per period over
// the requested window.
type BudgetAverage struct {
	Budget  Budget          `json:"budget"`                   // The budget the average is for
	Average decimal.Decimal `json:"average" example:"387.50"` // Average spend per budget period
}

type BudgetAverageResponse struct {
	Data  *BudgetAverage `json:"data"`                                               // Average for a single budget
	Error *string        `json:"error" example:"dates must be in YYYY-MM-DD format"` // The error, if any occurred
}

type BudgetAverageListResponse struct {
	Data  []BudgetAverage `json:"data"`                                               // Averages for all budgets
	Error *string         `json:"error" example:"dates must be in YYYY-MM-DD format"` // The error, if any occurred
}
