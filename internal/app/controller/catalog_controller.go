package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaizensushi/storefront-backend/internal/app/service"
	apperrors "github.com/kaizensushi/storefront-backend/internal/errors"
	"github.com/kaizensushi/storefront-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

type ReplaceSourceRequest struct {
	URL string `json:"url" binding:"required"`
}

// GetCatalog returns the loaded catalog, or loaded=false before the first
// successful load.
// GET /api/v1/catalog
func (ctrl *CatalogController) GetCatalog(c *gin.Context) {
	catalog, ok := ctrl.catalogService.Current()
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"loaded": false,
			"source": ctrl.catalogService.SourceURL(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loaded":  true,
		"source":  ctrl.catalogService.SourceURL(),
		"catalog": catalog,
	})
}

// ReplaceSource switches the catalog source address and reloads from it.
// PUT /api/v1/catalog/source
func (ctrl *CatalogController) ReplaceSource(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ReplaceSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid replace source request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Datos de solicitud inválidos")
		return
	}

	if err := ctrl.catalogService.Replace(c.Request.Context(), req.URL); err != nil {
		ctrl.respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catálogo actualizado",
		"source":  ctrl.catalogService.SourceURL(),
	})
}

// Reload re-fetches the catalog from the active source.
// POST /api/v1/catalog/reload
func (ctrl *CatalogController) Reload(c *gin.Context) {
	if err := ctrl.catalogService.Load(c.Request.Context()); err != nil {
		ctrl.respondLoadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catálogo actualizado",
	})
}

func (ctrl *CatalogController) respondLoadError(c *gin.Context, err error) {
	log := middleware.GetLoggerFromContext(c)

	if errors.Is(err, service.ErrInvalidCatalogSource) {
		log.Warn("Invalid catalog source", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.CatalogInvalidSource, "Dirección de catálogo inválida")
		return
	}
	if errors.Is(err, service.ErrCatalogFetchFailed) {
		log.Warn("Catalog fetch failed", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.CatalogFetchFailed,
			"No se pudo cargar el menú. Intenta de nuevo")
		return
	}

	// Anything else means the document itself was unusable.
	log.Warn("Catalog document rejected", map[string]interface{}{
		"error": err.Error(),
	})
	apperrors.UnprocessableEntity(c, apperrors.CatalogInvalidDoc, "El documento del catálogo no es válido")
}
