package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/kaizensushi/storefront-backend/internal/app/service"
	"github.com/kaizensushi/storefront-backend/pkg/logger"
)

// CatalogScheduler refreshes the menu from its source on a cron schedule so
// a kiosk left running picks up price changes without a restart.
type CatalogScheduler struct {
	cron           *cron.Cron
	catalogService service.CatalogService
	spec           string
}

func NewCatalogScheduler(catalogService service.CatalogService, spec string) *CatalogScheduler {
	return &CatalogScheduler{
		cron:           cron.New(),
		catalogService: catalogService,
		spec:           spec,
	}
}

func (s *CatalogScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled catalog refresh", map[string]interface{}{
			"source": s.catalogService.SourceURL(),
		})

		if err := s.catalogService.Load(context.Background()); err != nil {
			logger.Error("Failed to refresh catalog from scheduler", err)
			return
		}

		logger.Info("Successfully refreshed catalog from scheduler", nil)
	})

	if err != nil {
		logger.Error("Failed to add cron job for catalog refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Catalog scheduler started successfully", map[string]interface{}{
		"spec": s.spec,
	})

	return nil
}

func (s *CatalogScheduler) Stop() {
	logger.Info("Stopping catalog scheduler...", nil)
	s.cron.Stop()
	logger.Info("Catalog scheduler stopped", nil)
}
