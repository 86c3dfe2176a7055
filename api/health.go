package api

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Storage       string    `json:"storage"`
	PendingOrders int       `json:"pending_orders"`
}

func (app *Application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	storage := "ok"
	if app.ping != nil {
		if err := app.ping(r.Context()); err != nil {
			app.log.Warnw("storage ping failed", "error", err)
			storage = "error"
		}
	}

	resp := HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		Storage:       storage,
		PendingOrders: app.PendingOrders(),
	}
	status := http.StatusOK
	if storage != "ok" {
		resp.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}
	_ = writeJSON(w, status, resp)
}
