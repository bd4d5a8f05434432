package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaizensushi/storefront-backend/config"
)

// AssetsController publishes the fixed offline-cache manifest. The service
// worker reads it to build its versioned cache; bumping the version
// replaces the cache wholesale.
type AssetsController struct {
	cfg config.AssetsConfig
}

func NewAssetsController(cfg config.AssetsConfig) *AssetsController {
	return &AssetsController{cfg: cfg}
}

// GetManifest returns the cache name, version and asset list.
// GET /api/v1/assets
func (ctrl *AssetsController) GetManifest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cache_name": fmt.Sprintf("%s-v%d", ctrl.cfg.CacheName, ctrl.cfg.CacheVersion),
		"version":    ctrl.cfg.CacheVersion,
		"assets":     ctrl.cfg.Manifest,
	})
}
