package inspection

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
	inspections := protected.Group("/apiaries/:apiaryId/hives/:hiveId/inspections")
	{
		inspections.GET("", h.List)
		inspections.POST("", h.Create)
		inspections.GET("/:inspectionId", h.Get)
		inspections.PUT("/:inspectionId", h.Update)
		inspections.DELETE("/:inspectionId", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, hiveID, ok := parentIDs(c)
	if !ok {
		return
	}

	inspections, err := h.service.List(c.Request.Context(), actor, apiaryID, hiveID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"inspections": inspections})
}

func (h *Handler) Get(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, hiveID, ok := parentIDs(c)
	if !ok {
		return
	}
	inspectionID, ok := pathID(c, "inspectionId")
	if !ok {
		return
	}

	i, err := h.service.Get(c.Request.Context(), actor, apiaryID, hiveID, inspectionID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"inspection": i})
}

func (h *Handler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, hiveID, ok := parentIDs(c)
	if !ok {
		return
	}

	var req CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	i, err := h.service.Create(c.Request.Context(), actor, apiaryID, hiveID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"inspection": i})
}

func (h *Handler) Update(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, hiveID, ok := parentIDs(c)
	if !ok {
		return
	}
	inspectionID, ok := pathID(c, "inspectionId")
	if !ok {
		return
	}

	var req UpdateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	i, err := h.service.Update(c.Request.Context(), actor, apiaryID, hiveID, inspectionID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"inspection": i})
}

func (h *Handler) Delete(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	apiaryID, hiveID, ok := parentIDs(c)
	if !ok {
		return
	}
	inspectionID, ok := pathID(c, "inspectionId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, apiaryID, hiveID, inspectionID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrHiveNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hive not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inspection not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this hive")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func parentIDs(c *gin.Context) (apiaryID, hiveID int64, ok bool) {
	apiaryID, ok = pathID(c, "apiaryId")
	if !ok {
		return 0, 0, false
	}
	hiveID, ok = pathID(c, "hiveId")
	if !ok {
		return 0, 0, false
	}
	return apiaryID, hiveID, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}
