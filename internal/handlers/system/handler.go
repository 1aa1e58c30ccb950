package system

import (
	"net/http"
	"zeit/config"
	"zeit/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) Handler {
	return Handler{
		cfg: cfg,
	}
}

// RootRouter registers routes served outside the versioned API group.
func (handler *Handler) RootRouter(router chi.Router) {
	router.Get("/health", handler.Health)
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/info", handler.Info)
}

// Health reports service liveness. The queries hold no state, so a living
// process is a healthy one.
func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	response.WithMessage(writer, http.StatusOK, "ok")
}

type infoResponse struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	Instructions string `json:"instructions"`
}

// Info describes the service and its operations.
func (handler *Handler) Info(writer http.ResponseWriter, _ *http.Request) {
	name := handler.cfg.App.Name
	if name == "" {
		name = "zeit"
	}

	response.WithJSON(writer, http.StatusOK, infoResponse{
		Name:         name,
		Version:      handler.cfg.App.Version,
		Instructions: "A time server providing current time lookup and timezone conversion tools.",
	})
}
