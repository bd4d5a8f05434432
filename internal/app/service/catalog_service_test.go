package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaizensushi/storefront-backend/config"
	"github.com/kaizensushi/storefront-backend/internal/app/repository"
)

const catalogDocJSON = `{
	"restaurantName": "KAIZEN Sushi",
	"restaurantPhone": "+52 (667) 202-6789",
	"menus": [{"id": "rollos", "label": "Rollos"}],
	"rollos": [{"id": "roll-cal", "name": "Rollo California", "price": 110.00}],
	"builder": {
		"steps": [
			{"id": "base", "label": "Base", "cardinality": "single", "required": true, "options": [
				{"id": "b1", "name": "Arroz de Sushi", "price": 50.00}
			]}
		]
	}
}`

func setupCatalogServiceTest(t *testing.T, handler http.HandlerFunc) (CatalogService, SelectionManager, *recordingNotifier, repository.PrefsRepository) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	prefs := repository.NewPrefsRepository(store)

	cfg := &config.Config{
		Restaurant: config.RestaurantConfig{
			Name:  "Fallback Name",
			Phone: "+52 111 222 3333",
		},
		Catalog: config.CatalogConfig{
			DefaultURL:   server.URL,
			FetchTimeout: 0,
		},
	}

	selection := NewSelectionManager()
	notifier := &recordingNotifier{}
	catalogService := NewCatalogService(prefs, selection, notifier, cfg)
	return catalogService, selection, notifier, prefs
}

func serveCatalog(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(catalogDocJSON))
}

func TestCatalogService_Load_Success(t *testing.T) {
	catalogService, selection, notifier, _ := setupCatalogServiceTest(t, serveCatalog)

	require.NoError(t, catalogService.Load(context.Background()))

	catalog, ok := catalogService.Current()
	require.True(t, ok)
	assert.Equal(t, "KAIZEN Sushi", catalog.RestaurantName)

	item, ok := catalogService.FindItem("roll-cal")
	assert.True(t, ok)
	assert.Equal(t, "Rollo California", item.Name)

	// The builder picked up the declared steps
	assert.True(t, selection.Toggle("base", "Arroz de Sushi"))
	assert.Equal(t, 1, notifier.catalogs)
}

func TestCatalogService_Load_FetchFailure(t *testing.T) {
	catalogService, _, notifier, _ := setupCatalogServiceTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := catalogService.Load(context.Background())
	assert.ErrorIs(t, err, ErrCatalogFetchFailed)
	assert.Equal(t, "No se pudo cargar el menú", notifier.lastToast())

	_, ok := catalogService.Current()
	assert.False(t, ok)
}

func TestCatalogService_Load_FailureKeepsPreviousCatalog(t *testing.T) {
	fail := false
	catalogService, _, _, _ := setupCatalogServiceTest(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		serveCatalog(w, r)
	})

	require.NoError(t, catalogService.Load(context.Background()))

	fail = true
	err := catalogService.Load(context.Background())
	assert.Error(t, err)

	// The working catalog stays in place
	catalog, ok := catalogService.Current()
	require.True(t, ok)
	assert.Equal(t, "KAIZEN Sushi", catalog.RestaurantName)
}

func TestCatalogService_Load_InvalidDocument(t *testing.T) {
	catalogService, _, _, _ := setupCatalogServiceTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"menus": [{"id": "m", "label": "M"}], "m": [{"id": "x", "name": "X", "price": -1}]}`))
	})

	err := catalogService.Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCatalogFetchFailed)
}

func TestCatalogService_Replace(t *testing.T) {
	catalogService, _, _, prefs := setupCatalogServiceTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	replacement := httptest.NewServer(http.HandlerFunc(serveCatalog))
	t.Cleanup(replacement.Close)

	require.NoError(t, catalogService.Replace(context.Background(), replacement.URL))
	assert.Equal(t, replacement.URL, catalogService.SourceURL())
	assert.Equal(t, replacement.URL, prefs.CatalogSource())

	_, ok := catalogService.Current()
	assert.True(t, ok)
}

func TestCatalogService_Replace_InvalidURL(t *testing.T) {
	catalogService, _, _, _ := setupCatalogServiceTest(t, serveCatalog)

	assert.ErrorIs(t, catalogService.Replace(context.Background(), "ftp://menu"), ErrInvalidCatalogSource)
	assert.ErrorIs(t, catalogService.Replace(context.Background(), "not a url"), ErrInvalidCatalogSource)
}

func TestCatalogService_PersistedSourceWins(t *testing.T) {
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	prefs := repository.NewPrefsRepository(store)
	require.NoError(t, prefs.SetCatalogSource("http://example.test/catalog.json"))

	cfg := &config.Config{
		Catalog: config.CatalogConfig{DefaultURL: "http://default.test/catalog.json"},
	}
	catalogService := NewCatalogService(prefs, NewSelectionManager(), &recordingNotifier{}, cfg)

	assert.Equal(t, "http://example.test/catalog.json", catalogService.SourceURL())
}

func TestCatalogService_RestaurantFallbacks(t *testing.T) {
	catalogService, _, _, _ := setupCatalogServiceTest(t, serveCatalog)

	// Before any load, the configured values apply
	assert.Equal(t, "Fallback Name", catalogService.RestaurantName())
	assert.Equal(t, "+52 111 222 3333", catalogService.RestaurantPhone())

	require.NoError(t, catalogService.Load(context.Background()))

	assert.Equal(t, "KAIZEN Sushi", catalogService.RestaurantName())
	assert.Equal(t, "+52 (667) 202-6789", catalogService.RestaurantPhone())
}
