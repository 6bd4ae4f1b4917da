package v1

import (
	"fmt"

	"github.com/expenses-tracker/backend/internal/httputil"
	"github.com/expenses-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Username string `json:"username" example:"alex" default:""` // Name of the user
}

func (editable UserEditable) model() models.User {
	return models.User{
		Username: editable.Username,
	}
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/d1b4a9d0-3b20-4d65-9744-5b31e1e5f465"` // The user itself
}

type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Username: model.Username,
		},
		Links: UserLinks{
			Self: fmt.Sprintf("%s/users/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                             // Data for the User
	Error *string `json:"error" example:"the username is already in use"` // The error, if any occurred
}

type UserListResponse struct {
	Data  []User  `json:"data"`                                                          // List of Users
	Error *string `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
