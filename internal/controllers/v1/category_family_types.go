package v1

import (
	"fmt"

	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryFamilyEditable represents all user configurable parameters
type CategoryFamilyEditable struct {
	Name string `json:"name" example:"Groceries" default:""` // Name of the category family
	// Optional regex, matched case-insensitively against expense
	// descriptions during classification
	Pattern string `json:"pattern" example:"IGA|METRO|MAXI" default:""`
}

type CategoryFamilyLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/category-families/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category family itself
}

type CategoryFamily struct {
	models.DefaultModel
	CategoryFamilyEditable
	Links CategoryFamilyLinks `json:"links"`

	// The categories recorded under this family. Only set by the
	// mapping endpoint.
	Categories []Category `json:"categories,omitempty"`
}

func newCategoryFamily(c *gin.Context, model models.CategoryFamily) CategoryFamily {
	return CategoryFamily{
		DefaultModel: model.DefaultModel,
		CategoryFamilyEditable: CategoryFamilyEditable{
			Name:    model.Name,
			Pattern: model.Pattern,
		},
		Links: CategoryFamilyLinks{
			Self: fmt.Sprintf("%s/category-families/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

func newCategoryFamilyWithCategories(c *gin.Context, db *gorm.DB, model models.CategoryFamily) (CategoryFamily, error) {
	family := newCategoryFamily(c, model)

	categories, err := model.Categories(db)
	if err != nil {
		return CategoryFamily{}, err
	}

	family.Categories = make([]Category, 0, len(categories))
	for _, category := range categories {
		family.Categories = append(family.Categories, newCategory(c, category))
	}

	return family, nil
}

type CategoryFamilyResponse struct {
	Data  *CategoryFamily `json:"data"`                                                          // Data for the CategoryFamily
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryFamilyListResponse struct {
	Data  []CategoryFamily `json:"data"`                                                          // List of CategoryFamilies
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// PatternEditable is the body of the regex update endpoint. An empty or
// whitespace-only pattern removes the pattern from the family.
type PatternEditable struct {
	Pattern string `json:"pattern" example:"UBER\\s*EATS" default:""`
}

// CombineEditable names the two families to merge and the name the
// surviving family takes.
type CombineEditable struct {
	SurvivingID uuid.UUID `json:"survivingId" example:"6a7bde8b-51d9-4cfe-a8ba-792a42b9b3d2"` // The family that remains
	DeletingID  uuid.UUID `json:"deletingId" example:"b2f6fe8c-de74-42a6-bb91-113fa9f1dfc2"`  // The family that is merged away
	Name        string    `json:"name" example:"Food"`                                        // New name for the surviving family
}

type ReclassifyResult struct {
	UpdatedExpenses int `json:"updatedExpenses" example:"42"` // Number of expenses that moved to another family
}

type ReclassifyResponse struct {
	Data  *ReclassifyResult `json:"data"`                                                                // Result of the reclassification run
	Error *string           `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
