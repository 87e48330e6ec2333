package apiary

import (
	"errors"
	"net/http"
	"strconv"

	"apiaryadmin/internal/middleware"
	"apiaryadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	apiaries := protected.Group("/apiaries")
	{
		apiaries.GET("", h.List)
		apiaries.POST("", h.Create)
		apiaries.GET("/:apiaryId", h.Get)
		apiaries.PUT("/:apiaryId", h.Update)
		apiaries.DELETE("/:apiaryId", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaries, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list apiaries")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"apiaries": apiaries})
}

func (h *Handler) Get(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := strconv.ParseInt(c.Param("apiaryId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid apiary ID")
		return
	}

	a, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"apiary": a})
}

func (h *Handler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req CreateApiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	a, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create apiary")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"apiary": a})
}

func (h *Handler) Update(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := strconv.ParseInt(c.Param("apiaryId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid apiary ID")
		return
	}

	var req UpdateApiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	a, err := h.service.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"apiary": a})
}

func (h *Handler) Delete(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := strconv.ParseInt(c.Param("apiaryId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid apiary ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Apiary not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this apiary")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
