package v1

import (
	"net/http"

	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Averages for all budgets
	{
		r.OPTIONS("/calculate", OptionsBudgetCalculate)
		r.GET("/calculate", CalculateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.DELETE("/:id", DeleteBudget)
		r.OPTIONS("/:id/calculate", OptionsBudgetDetailCalculate)
		r.GET("/:id/calculate", CalculateBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/calculate [options]
func OptionsBudgetCalculate(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/calculate [options]
func OptionsBudgetDetailCalculate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List budgets
// @Description	Returns all budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var budgets []models.Budget
	err := models.DB.Order("created_at ASC").Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Create budget
// @Description	Creates a new budget. There can be only one budget per category family and frequency.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		409		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	// The family must exist
	err = models.DB.First(&models.CategoryFamily{}, editable.CategoryFamilyID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	budget := editable.model()
	err = models.DB.Create(&budget).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Budget averages
// @Description	Returns the average spend per period for every budget over the window
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetAverageListResponse
// @Failure		400	{object}	BudgetAverageListResponse
// @Failure		500	{object}	BudgetAverageListResponse
// @Param			startDate	query	string	false	"Start date in YYYY-MM-DD format. Defaults to the earliest expense on record."
// @Param			endDate		query	string	false	"End date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/budgets/calculate [get]
func CalculateBudgets(c *gin.Context) {
	from, until, err := bindWindow(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAverageListResponse{
			Error: &s,
		})
		return
	}

	var budgets []models.Budget
	err = models.DB.Order("created_at ASC").Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAverageListResponse{
			Error: &s,
		})
		return
	}

	data := make([]BudgetAverage, 0, len(budgets))
	for _, budget := range budgets {
		average, err := budget.Average(models.DB, from, until)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetAverageListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, BudgetAverage{
			Budget:  newBudget(c, budget),
			Average: average,
		})
	}

	c.JSON(http.StatusOK, BudgetAverageListResponse{Data: data})
}

// @Summary		Budget average
// @Description	Returns the average spend per period for a single budget over the window
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetAverageResponse
// @Failure		400	{object}	BudgetAverageResponse
// @Failure		404	{object}	BudgetAverageResponse
// @Failure		500	{object}	BudgetAverageResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			startDate	query	string	false	"Start date in YYYY-MM-DD format. Defaults to the earliest expense on record."
// @Param			endDate		query	string	false	"End date in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/budgets/{id}/calculate [get]
func CalculateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAverageResponse{
			Error: &s,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAverageResponse{
			Error: &s,
		})
		return
	}

	from, until, err := bindWindow(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAverageResponse{
			Error: &s,
		})
		return
	}

	average, err := budget.Average(models.DB, from, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAverageResponse{
			Error: &s,
		})
		return
	}

	data := BudgetAverage{
		Budget:  newBudget(c, budget),
		Average: average,
	}
	c.JSON(http.StatusOK, BudgetAverageResponse{Data: &data})
}
