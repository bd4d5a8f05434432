package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaizensushi/storefront-backend/internal/app/repository"
	apperrors "github.com/kaizensushi/storefront-backend/internal/errors"
	"github.com/kaizensushi/storefront-backend/internal/middleware"
)

type PrefsController struct {
	prefs repository.PrefsRepository
}

func NewPrefsController(prefs repository.PrefsRepository) *PrefsController {
	return &PrefsController{
		prefs: prefs,
	}
}

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type SetFlagRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// GetPrefs returns the stored preferences. An empty theme means "follow the
// system preference".
// GET /api/v1/prefs
func (ctrl *PrefsController) GetPrefs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"theme":                  ctrl.prefs.Theme(),
		"install_prompt_enabled": ctrl.prefs.InstallPromptEnabled(),
		"catalog_source":         ctrl.prefs.CatalogSource(),
	})
}

// SetTheme stores the dark/light choice.
// PUT /api/v1/prefs/theme
func (ctrl *PrefsController) SetTheme(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Datos de solicitud inválidos")
		return
	}

	if err := ctrl.prefs.SetTheme(req.Theme); err != nil {
		if errors.Is(err, repository.ErrInvalidTheme) {
			apperrors.BadRequest(c, apperrors.PrefsInvalidTheme, "El tema debe ser dark o light")
			return
		}
		log.Error("Failed to persist theme", err, map[string]interface{}{
			"theme": req.Theme,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.InternalStorage,
			"No se pudo guardar la preferencia")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"theme": req.Theme,
	})
}

// SetInstallPrompt stores the install-prompt feature flag.
// PUT /api/v1/prefs/install-prompt
func (ctrl *PrefsController) SetInstallPrompt(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SetFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Datos de solicitud inválidos")
		return
	}

	if err := ctrl.prefs.SetInstallPromptEnabled(*req.Enabled); err != nil {
		log.Error("Failed to persist install prompt flag", err, nil)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.InternalStorage,
			"No se pudo guardar la preferencia")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"install_prompt_enabled": *req.Enabled,
	})
}
