package usersserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/go-users-api/internal/shared/errors"
	usermapper "github.com/Apurer/go-users-api/internal/users/adapters/http/mapper"
	userports "github.com/Apurer/go-users-api/internal/users/ports"
)

// UsersAPI implements the users CRUD endpoints.
type UsersAPI struct {
	service userports.Service
}

// NewUsersAPI wires dependencies.
func NewUsersAPI(service userports.Service) UsersAPI {
	return UsersAPI{service: service}
}

// Get /users
// List all users
func (api *UsersAPI) ListUsers(c *gin.Context) {
	users, err := api.service.ListUsers(c.Request.Context())
	if err != nil {
		respondUserError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUsers(users))
}

// Post /users
// Create a user
func (api *UsersAPI) CreateUser(c *gin.Context) {
	var payload usermapper.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	user, err := usermapper.ToDomainUser(payload)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	created, err := api.service.CreateUser(c.Request.Context(), user)
	if err != nil {
		respondUserError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, usermapper.FromDomainUser(created))
}

// Get /users/:id
// Get a user by id
func (api *UsersAPI) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := api.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUser(user))
}

// Put /users/:id
// Replace a user's fields by id
func (api *UsersAPI) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload usermapper.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	user, err := usermapper.ToDomainUser(payload)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	updated, err := api.service.UpdateUser(c.Request.Context(), id, user)
	if err != nil {
		respondUserError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainUser(updated))
}

// Delete /users/:id
// Delete a user by id. Deleting an id with no matching row still reports
// success; the operation is idempotent.
func (api *UsersAPI) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := api.service.DeleteUser(c.Request.Context(), id); err != nil {
		respondUserError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User successfully deleted"})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.DefaultResponder.BadRequest(c, "id must be an integer")
		return 0, false
	}
	return id, true
}
