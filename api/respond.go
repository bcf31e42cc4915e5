package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"socialgraph/core"
)

type errorBody struct {
	Message string `json:"message"`
}

// respondJSON writes data as a JSON response.
func (a *API) respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Errorw("failed to encode response", "error", err)
	}
}

// respondError maps the domain error kinds onto HTTP statuses and
// writes the reason as the response body.
func (a *API) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrBadRequest):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		a.logger.Errorw("request failed", "error", err)
	}
	a.respondJSON(w, errorBody{Message: err.Error()}, status)
}

// decodeBody decodes a JSON request body into dst and runs the
// struct's validation tags.
func (a *API) decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return core.BadRequest("invalid request body")
	}
	if err := a.validate.Struct(dst); err != nil {
		return core.BadRequest(err.Error())
	}
	return nil
}
