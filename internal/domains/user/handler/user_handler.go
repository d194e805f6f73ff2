package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"itemstore-backend/internal/domains/user"
	"itemstore-backend/internal/infrastructure/database"
	"itemstore-backend/internal/shared/response"
	"itemstore-backend/pkg/logger"
)

// UserHandler handles HTTP requests for the user domain. Stateless, holds
// only the service dependency.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFoundResource(c, "User", id)
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, u)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	var req user.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	users, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if users == nil {
		users = []*user.User{}
	}

	response.Success(c, http.StatusOK, users)
}

// Update handles PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req user.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFoundResource(c, "User", id)
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFoundResource(c, "User", id)
			return
		}
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// handleError maps domain errors to HTTP responses.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	// 400 Bad Request - pre-check caught the duplicate
	case errors.Is(err, user.ErrUsernameTaken),
		errors.Is(err, user.ErrEmailTaken):
		response.BadRequest(c, err.Error())

	// 409 Conflict - a concurrent writer won the race past the pre-check
	case database.IsDuplicateKey(err):
		response.Conflict(c, "username or email already exists")

	default:
		if vErr := validationMessage(err); vErr != "" {
			response.BadRequest(c, vErr)
			return
		}
		logger.Error("user handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}

// parseID reads the :id path parameter, writing a 400 response on failure.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id parameter")
		return 0, false
	}
	return id, true
}

// bindAndValidate unmarshals the JSON body and runs the DTO's validation
// rules, writing the 400 response itself on failure.
func bindAndValidate(c *gin.Context, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "Validation failed", err.Error())
		return false
	}
	return true
}

// validationMessage returns a client-facing message when err came from the
// DTO validation rules, or "" for any other error.
func validationMessage(err error) string {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return vErrs.Error()
	}
	return ""
}
