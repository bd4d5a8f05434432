package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/kaizensushi/storefront-backend/config"
	"github.com/kaizensushi/storefront-backend/internal/app/model"
	"github.com/kaizensushi/storefront-backend/internal/app/repository"
	"github.com/kaizensushi/storefront-backend/pkg/logger"
)

var (
	ErrCatalogNotLoaded     = errors.New("catalog not loaded")
	ErrCatalogFetchFailed   = errors.New("catalog fetch failed")
	ErrInvalidCatalogSource = errors.New("invalid catalog source address")
)

// CatalogService owns the loaded catalog and its source address. Until the
// first successful Load, Current reports no catalog and every dependent
// operation degrades gracefully.
type CatalogService interface {
	// Load fetches and parses the catalog from the active source. On
	// failure the previously loaded catalog (if any) stays in place.
	Load(ctx context.Context) error
	// Replace switches the source address, persists the choice, and loads
	// from it.
	Replace(ctx context.Context, rawURL string) error
	Current() (*model.Catalog, bool)
	SourceURL() string
	FindItem(id string) (model.CatalogItem, bool)
	Steps() []model.BuilderStep
	// RestaurantName and RestaurantPhone fall back to the configured
	// values when the catalog is unset or silent.
	RestaurantName() string
	RestaurantPhone() string
}

type catalogService struct {
	httpClient *http.Client
	prefs      repository.PrefsRepository
	selection  SelectionManager
	notifier   Notifier
	fallback   config.RestaurantConfig

	mu      sync.RWMutex
	source  string
	current *model.Catalog
}

func NewCatalogService(
	prefs repository.PrefsRepository,
	selection SelectionManager,
	notifier Notifier,
	cfg *config.Config,
) CatalogService {
	source := prefs.CatalogSource()
	if source == "" {
		source = cfg.Catalog.DefaultURL
	}
	return &catalogService{
		httpClient: &http.Client{Timeout: cfg.Catalog.FetchTimeout},
		prefs:      prefs,
		selection:  selection,
		notifier:   notifier,
		fallback:   cfg.Restaurant,
		source:     source,
	}
}

func (s *catalogService) Load(ctx context.Context) error {
	s.mu.RLock()
	source := s.source
	s.mu.RUnlock()

	logger.Info("Loading catalog", map[string]interface{}{
		"source": source,
	})

	catalog, err := s.fetch(ctx, source)
	if err != nil {
		logger.Error("Failed to load catalog", err, map[string]interface{}{
			"source": source,
		})
		s.notifier.Toast("No se pudo cargar el menú")
		return err
	}

	s.mu.Lock()
	s.current = catalog
	s.mu.Unlock()

	// New catalog, new builder: every in-progress selection is discarded.
	s.selection.Configure(catalog.Steps)
	s.notifier.CatalogChanged()

	logger.Info("Catalog loaded successfully", map[string]interface{}{
		"restaurant": catalog.RestaurantName,
		"menus":      len(catalog.Menus),
		"steps":      len(catalog.Steps),
	})
	return nil
}

func (s *catalogService) fetch(ctx context.Context, source string) (*model.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetchFailed, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrCatalogFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetchFailed, err)
	}

	return model.ParseCatalog(body)
}

func (s *catalogService) Replace(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return ErrInvalidCatalogSource
	}

	logger.Info("Replacing catalog source", map[string]interface{}{
		"url": rawURL,
	})

	s.mu.Lock()
	s.source = rawURL
	s.mu.Unlock()

	if err := s.prefs.SetCatalogSource(rawURL); err != nil {
		logger.Error("Failed to persist catalog source", err, map[string]interface{}{
			"url": rawURL,
		})
	}

	return s.Load(ctx)
}

func (s *catalogService) Current() (*model.Catalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

func (s *catalogService) SourceURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *catalogService) FindItem(id string) (model.CatalogItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.CatalogItem{}, false
	}
	return s.current.FindItem(id)
}

func (s *catalogService) Steps() []model.BuilderStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return s.current.Steps
}

func (s *catalogService) RestaurantName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current != nil && s.current.RestaurantName != "" {
		return s.current.RestaurantName
	}
	return s.fallback.Name
}

func (s *catalogService) RestaurantPhone() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current != nil && s.current.RestaurantPhone != "" {
		return s.current.RestaurantPhone
	}
	return s.fallback.Phone
}
