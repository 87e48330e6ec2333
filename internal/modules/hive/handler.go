package hive

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
	hives := protected.Group("/apiaries/:apiaryId/hives")
	{
		hives.GET("", h.List)
		hives.POST("", h.Create)
		hives.GET("/:hiveId", h.Get)
		hives.PUT("/:hiveId", h.Update)
		hives.DELETE("/:hiveId", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, ok := pathID(c, "apiaryId")
	if !ok {
		return
	}

	hives, err := h.service.List(c.Request.Context(), actor, apiaryID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hives": hives})
}

func (h *Handler) Get(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, ok := pathID(c, "apiaryId")
	if !ok {
		return
	}
	hiveID, ok := pathID(c, "hiveId")
	if !ok {
		return
	}

	hv, err := h.service.Get(c.Request.Context(), actor, apiaryID, hiveID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hive": hv})
}

func (h *Handler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, ok := pathID(c, "apiaryId")
	if !ok {
		return
	}

	var req CreateHiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	hv, err := h.service.Create(c.Request.Context(), actor, apiaryID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hive": hv})
}

func (h *Handler) Update(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, ok := pathID(c, "apiaryId")
	if !ok {
		return
	}
	hiveID, ok := pathID(c, "hiveId")
	if !ok {
		return
	}

	var req UpdateHiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	hv, err := h.service.Update(c.Request.Context(), actor, apiaryID, hiveID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hive": hv})
}

func (h *Handler) Delete(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, ok := pathID(c, "apiaryId")
	if !ok {
		return
	}
	hiveID, ok := pathID(c, "hiveId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, apiaryID, hiveID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrApiaryNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Apiary not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hive not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this apiary")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}
