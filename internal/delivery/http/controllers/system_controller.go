package controllers

import (
	"log/slog"
	"net/http"

	"uniboard/internal/delivery/http/helpers"
	"uniboard/internal/services"
)

// QueueInspector exposes a point-in-time snapshot of the email queue.
type QueueInspector interface {
	Status() services.QueueStatus
}

type SystemController struct {
	Logger *slog.Logger
	Queue  QueueInspector
}

func NewSystemController(logger *slog.Logger, queue QueueInspector) *SystemController {
	return &SystemController{
		Logger: logger,
		Queue:  queue,
	}
}

// HealthStatus is the response body for GET /healthz.
type HealthStatus struct {
	Status     string               `json:"status"`
	EmailQueue services.QueueStatus `json:"email_queue"`
}

// Health godoc
// @Summary Service health
// @Description Report service liveness and the current email queue snapshot.
// @Tags system
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=HealthStatus}
// @Router /healthz [get]
func (c *SystemController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{
		Status:     "ok",
		EmailQueue: c.Queue.Status(),
	})
}
