package system_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"zeit/config"
	"zeit/internal/handlers/system"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(cfg *config.Config) *chi.Mux {
	handler := system.New(cfg)

	router := chi.NewRouter()
	handler.RootRouter(router)
	router.Route("/v1", func(routerGroup chi.Router) {
		handler.Router(routerGroup)
	})

	return router
}

func TestHealth(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/health", nil)

	newRouter(&config.Config{}).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ok")
}

func TestInfo(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "zeit"
	cfg.App.Version = "1.2.3"

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/info", nil)

	newRouter(cfg).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	payload := struct {
		Data struct {
			Name         string `json:"name"`
			Version      string `json:"version"`
			Instructions string `json:"instructions"`
		} `json:"data"`
	}{}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "zeit", payload.Data.Name)
	assert.Equal(t, "1.2.3", payload.Data.Version)
	assert.Contains(t, payload.Data.Instructions, "timezone conversion")
}

func TestInfoDefaultsName(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/info", nil)

	newRouter(&config.Config{}).ServeHTTP(recorder, request)

	assert.Contains(t, recorder.Body.String(), `"name":"zeit"`)
}
