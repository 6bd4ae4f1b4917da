package v1

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/expenses-tracker/backend/internal/categorizer"
	"github.com/expenses-tracker/backend/internal/extractor"
	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/importer"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Statement upload
	{
		r.OPTIONS("/upload", OptionsExpenseUpload)
		r.POST("/upload", UploadExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// withRelations preloads everything the API resource needs.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Source").Preload("User").Preload("CategoryFamily")
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/upload [options]
func OptionsExpenseUpload(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List expenses
// @Description	Returns expenses within the window, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Param			startDate	query	string	false	"Start date in YYYY-MM-DD format, inclusive"
// @Param			endDate		query	string	false	"End date in YYYY-MM-DD format, inclusive"
// @Param			description	query	string	false	"Glob filter on the description, e.g. *COFFEE*. Case-insensitive."
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	from, until, err := filter.window()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	q := withRelations(models.DB).Order("date DESC, created_at DESC")
	if from != nil {
		q = q.Where("date(date) >= date(?)", from)
	}
	if until != nil {
		q = q.Where("date(date) <= date(?)", until)
	}

	var expenses []models.Expense
	err = q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	pattern := strings.ToLower(filter.Description)
	for _, expense := range expenses {
		if pattern != "" && !glob.Glob(pattern, strings.ToLower(expense.Description)) {
			continue
		}
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Create expense
// @Description	Creates an expense by hand. Without an explicit category family, the classification engine resolves one from the description and the category label.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		409		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense := editable.model()

	if expense.CategoryFamilyID == uuid.Nil {
		family, err := categorizer.ResolveOrCreate(models.DB, editable.Description, editable.Category)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &s,
			})
			return
		}
		expense.CategoryFamilyID = family.ID
	}

	err = models.DB.Create(&expense).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	err = withRelations(models.DB).First(&expense, expense.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = withRelations(models.DB).First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Update an existing expense. Only values to be updated need to be specified. Moving the expense to another category family locks the category against reclassification runs.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	// A manual move to another family pins the expense there, otherwise
	// the next reclassification run would immediately undo it
	if slices.Contains(updateFields, any("CategoryFamilyID")) && data.CategoryFamilyID != expense.CategoryFamilyID {
		err = models.DB.First(&models.CategoryFamily{}, data.CategoryFamilyID).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &s,
			})
			return
		}

		data.LockCategory = true
		if !slices.Contains(updateFields, any("LockCategory")) {
			updateFields = append(updateFields, "LockCategory")
		}
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	err = withRelations(models.DB).First(&expense, expense.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &r})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Upload statements
// @Description	Ingests one or more statement files. The parser is chosen per file by probing unless an explicit source is given, in which case the source type and the file extension select it. Files that cannot be processed are reported without aborting the others.
// @Tags			Expenses
// @Accept			multipart/form-data
// @Produce		json
// @Success		200			{object}	UploadResponse
// @Failure		400			{object}	UploadResponse
// @Failure		404			{object}	UploadResponse
// @Failure		500			{object}	UploadResponse
// @Param			files		formData	file	true	"Statement files"
// @Param			sourceId	formData	string	false	"Ingest all files for this source instead of probing"
// @Router			/v1/expenses/upload [post]
func UploadExpenses(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, UploadResponse{
			Error: &s,
		})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		s := errNoFilePost.Error()
		c.JSON(http.StatusBadRequest, UploadResponse{
			Error: &s,
		})
		return
	}

	var source *models.Source
	if id := c.PostForm("sourceId"); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, UploadResponse{
				Error: &s,
			})
			return
		}

		var s models.Source
		err = models.DB.First(&s, parsed).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UploadResponse{
				Error: &e,
			})
			return
		}
		source = &s
	}

	files := make([]*extractor.File, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, UploadResponse{
				Error: &s,
			})
			return
		}

		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, UploadResponse{
				Error: &s,
			})
			return
		}

		files = append(files, &extractor.File{Name: header.Filename, Reader: bytes.NewReader(content)})
	}

	result := importer.Import(models.DB, files, source)
	c.JSON(http.StatusOK, UploadResponse{Data: &result})
}
