package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaizensushi/storefront-backend/internal/app/repository"
)

func setupPrefsControllerTest(t *testing.T) *gin.Engine {
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	prefsController := NewPrefsController(repository.NewPrefsRepository(store))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/prefs", prefsController.GetPrefs)
	router.PUT("/prefs/theme", prefsController.SetTheme)
	router.PUT("/prefs/install-prompt", prefsController.SetInstallPrompt)

	return router
}

func TestPrefsController_GetPrefs_Defaults(t *testing.T) {
	router := setupPrefsControllerTest(t)

	w := performJSON(router, http.MethodGet, "/prefs", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "", response["theme"])
	assert.Equal(t, false, response["install_prompt_enabled"])
	assert.Equal(t, "", response["catalog_source"])
}

func TestPrefsController_SetTheme(t *testing.T) {
	router := setupPrefsControllerTest(t)

	w := performJSON(router, http.MethodPut, "/prefs/theme", gin.H{"theme": "dark"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/prefs", nil)
	response := decodeBody(t, w)
	assert.Equal(t, "dark", response["theme"])
}

func TestPrefsController_SetTheme_Invalid(t *testing.T) {
	router := setupPrefsControllerTest(t)

	w := performJSON(router, http.MethodPut, "/prefs/theme", gin.H{"theme": "sepia"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "PREFS_INVALID_THEME", response["error"])
}

func TestPrefsController_SetInstallPrompt(t *testing.T) {
	router := setupPrefsControllerTest(t)

	w := performJSON(router, http.MethodPut, "/prefs/install-prompt", gin.H{"enabled": true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/prefs", nil)
	response := decodeBody(t, w)
	assert.Equal(t, true, response["install_prompt_enabled"])

	// The flag accepts explicit false too
	w = performJSON(router, http.MethodPut, "/prefs/install-prompt", gin.H{"enabled": false})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, "/prefs", nil)
	response = decodeBody(t, w)
	assert.Equal(t, false, response["install_prompt_enabled"])
}

func TestPrefsController_SetInstallPrompt_MissingField(t *testing.T) {
	router := setupPrefsControllerTest(t)

	w := performJSON(router, http.MethodPut, "/prefs/install-prompt", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
