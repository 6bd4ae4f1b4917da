package v1

import (
	"fmt"
	"time"

	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/importer"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Description string          `json:"description" example:"TIM HORTONS #1234" default:""` // Statement line description
	Amount      decimal.Decimal `json:"amount" example:"12.53"`                             // Positive amounts are spends, negative amounts are refunds or payments
	Date        time.Time       `json:"date" example:"2024-01-05T00:00:00Z"`                // Date of the transaction. Truncated to the day.
	// Raw category label. Only used when creating an expense without an
	// explicit category family: classification resolves the family from it.
	Category          string     `json:"category" example:"Restaurants" default:""`
	CalculationStatus string     `json:"calculationStatus" example:"SKIP" default:""`                     // INCLUDE, SKIP or empty for the default rule
	LockCategory      bool       `json:"lockCategory" example:"true" default:"false"`                     // When true, reclassification runs leave this expense alone
	CategoryFamilyID  uuid.UUID  `json:"categoryFamilyId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category family
	SourceID          uuid.UUID  `json:"sourceId" example:"d921e554-c0ed-4f4b-9ca9-91357f0606e9"`         // ID of the source the expense was paid from
	UserID            *uuid.UUID `json:"userId" example:"91eceb92-7e1f-4a3f-b8c9-7e9a43d45a4d"`           // Optional ID of the user the expense belongs to
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Description:       editable.Description,
		Amount:            editable.Amount,
		Date:              editable.Date,
		OriginalCategory:  editable.Category,
		CalculationStatus: editable.CalculationStatus,
		LockCategory:      editable.LockCategory,
		CategoryFamilyID:  editable.CategoryFamilyID,
		SourceID:          editable.SourceID,
		UserID:            editable.UserID,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/3b1ea324-d438-4419-882a-2fc91d71772f"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	Description       string          `json:"description" example:"TIM HORTONS #1234"`
	Amount            decimal.Decimal `json:"amount" example:"12.53"`
	Date              time.Time       `json:"date" example:"2024-01-05T00:00:00Z"`
	OriginalCategory  string          `json:"originalCategory" example:"Restaurants"` // The category text as it appeared in the statement
	CalculationStatus string          `json:"calculationStatus" example:""`
	LockCategory      bool            `json:"lockCategory" example:"false"`
	Source            Source          `json:"source"`         // The source the expense was paid from
	User              *User           `json:"user"`           // The user the expense belongs to, if any
	CategoryFamily    CategoryFamily  `json:"categoryFamily"` // The family classification assigned
	Links             ExpenseLinks    `json:"links"`
}

// newExpense converts a model to its API resource. The model must have
// its Source, User and CategoryFamily relations loaded.
func newExpense(c *gin.Context, model models.Expense) Expense {
	expense := Expense{
		DefaultModel:      model.DefaultModel,
		Description:       model.Description,
		Amount:            model.Amount,
		Date:              model.Date,
		OriginalCategory:  model.OriginalCategory,
		CalculationStatus: model.CalculationStatus,
		LockCategory:      model.LockCategory,
		Source:            newSource(c, model.Source),
		CategoryFamily:    newCategoryFamily(c, model.CategoryFamily),
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/expenses/%s", httputil.RequestPathV1(c), model.ID),
		},
	}

	if model.UserID != nil {
		user := newUser(c, model.User)
		expense.User = &user
	}

	return expense
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                               // List of Expenses
	Error *string   `json:"error" example:"dates must be in YYYY-MM-DD format"` // The error, if any occurred
}

// ExpenseQueryFilter are the query parameters of the expense list.
type ExpenseQueryFilter struct {
	WindowQuery
	Description string `form:"description" example:"*COFFEE*"` // Glob filter on the description, case-insensitive
}

type UploadResponse struct {
	Data  *importer.Result `json:"data"`                                            // Outcome of the upload
	Error *string          `json:"error" example:"there is no source matching your query"` // The error, if any occurred
}
