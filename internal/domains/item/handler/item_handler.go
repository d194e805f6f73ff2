package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"itemstore-backend/internal/domains/item"
	"itemstore-backend/internal/shared/response"
	"itemstore-backend/pkg/logger"
)

// ItemHandler handles HTTP requests for the item domain.
type ItemHandler struct {
	service item.Service
}

func NewItemHandler(service item.Service) *ItemHandler {
	return &ItemHandler{service: service}
}

// Create handles POST /items?owner_id=N
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Query("owner_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "owner_id query parameter is required")
		return
	}

	var req item.CreateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req, ownerID)
	if err != nil {
		if errors.Is(err, item.ErrOwnerNotFound) {
			response.NotFoundResource(c, "User", ownerID)
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByID handles GET /items/:id
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	it, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, item.ErrItemNotFound) {
			response.NotFoundResource(c, "Item", id)
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, it)
}

// List handles GET /items with optional owner_id filter
func (h *ItemHandler) List(c *gin.Context) {
	var req item.ListItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if items == nil {
		items = []*item.Item{}
	}

	response.Success(c, http.StatusOK, items)
}

// Update handles PATCH /items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req item.UpdateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, item.ErrItemNotFound) {
			response.NotFoundResource(c, "Item", id)
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, item.ErrItemNotFound) {
			response.NotFoundResource(c, "Item", id)
			return
		}
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// handleError maps domain errors to HTTP responses.
func (h *ItemHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.BadRequest(c, vErrs.Error())
		return
	}

	logger.Error("item handler error", err)
	response.InternalServerError(c, "Internal server error")
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
