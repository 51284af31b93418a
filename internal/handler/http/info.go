package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAPIRunning}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		utils.WriteJSON(w, models.HealthResponse{
			Status:  app.HealthStatusUnhealthy,
			Message: app.MsgDatabaseUnreachable,
		}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:  app.HealthStatusHealthy,
		Message: app.MsgAPIOperational,
	}, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppBuildInfo(r.Context())
	utils.WriteJSON(w, info.Response(), http.StatusOK)
}
