package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"restaurant-pos/services"
)

const maxBodyBytes = 1 << 20

var (
	errUnknownOrder = errors.New("unknown order")
	errBadPayment   = errors.New("invalid payment request")
)

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.log.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	_ = writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// errorResponse maps domain errors to HTTP statuses.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, errUnknownOrder):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateItem):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidItem),
		errors.Is(err, errBadPayment),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrUnsupportedPaymentMethod):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrInvalidCardData):
		status = http.StatusPaymentRequired
	}

	if status == http.StatusInternalServerError {
		app.log.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		_ = writeJSON(w, status, map[string]string{"error": "the server encountered a problem"})
		return
	}
	app.log.Warnw("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err.Error())
	_ = writeJSON(w, status, map[string]string{"error": err.Error()})
}
