package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaizensushi/storefront-backend/internal/app/service"
	apperrors "github.com/kaizensushi/storefront-backend/internal/errors"
	"github.com/kaizensushi/storefront-backend/internal/middleware"
)

type BuilderController struct {
	catalogService service.CatalogService
	selection      service.SelectionManager
}

func NewBuilderController(catalogService service.CatalogService, selection service.SelectionManager) *BuilderController {
	return &BuilderController{
		catalogService: catalogService,
		selection:      selection,
	}
}

type ToggleRequest struct {
	StepID string `json:"step_id" binding:"required"`
	Option string `json:"option" binding:"required"`
}

// GetBuilder returns the declared steps plus the running selection state.
// Before the catalog loads there are no steps and the builder is inert.
// GET /api/v1/builder
func (ctrl *BuilderController) GetBuilder(c *gin.Context) {
	steps := ctrl.catalogService.Steps()
	snapshot := ctrl.selection.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"loaded":      len(steps) > 0,
		"steps":       steps,
		"selection":   snapshot.Steps,
		"total":       service.SelectionTotal(snapshot).StringFixed(2),
		"description": service.SelectionDescription(snapshot),
		"is_complete": ctrl.selection.IsComplete(),
	})
}

// Toggle flips one option on one step. Unknown ids change nothing; the
// response carries the refreshed summary either way.
// POST /api/v1/builder/toggle
func (ctrl *BuilderController) Toggle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid toggle request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Datos de solicitud inválidos")
		return
	}

	changed := ctrl.selection.Toggle(req.StepID, req.Option)
	snapshot := ctrl.selection.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"changed":     changed,
		"selection":   snapshot.Steps,
		"total":       service.SelectionTotal(snapshot).StringFixed(2),
		"description": service.SelectionDescription(snapshot),
		"is_complete": ctrl.selection.IsComplete(),
	})
}

// Reset empties every step.
// POST /api/v1/builder/reset
func (ctrl *BuilderController) Reset(c *gin.Context) {
	ctrl.selection.Reset()
	c.JSON(http.StatusOK, gin.H{
		"message": "Taller reiniciado",
	})
}
