package handler

import (
	"encoding/json"
	"net/http"
)

// StatusBody is the minimal JSON body every endpoint returns on failure.
type StatusBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	payload, err := json.Marshal(j.body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(j.status)
	_, err = w.Write(append(payload, '\n'))
	return err
}

// JSON renders v as the response body with the given status.
// Encoding happens before any header is written, so a marshal failure still
// reaches the error handler with a clean writer.
func JSON(status int, v any) Response {
	return jsonResponse{status: status, body: v}
}

// JSONStatus renders a StatusBody; success is derived from the status code.
func JSONStatus(status int, message string) Response {
	return JSON(status, StatusBody{Success: status < http.StatusBadRequest, Message: message})
}

// WriteJSON renders a JSON response outside a wrapped handler.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) error {
	return JSON(status, v).Render(w, r)
}

type emptyResponse int

func (status emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(int(status))
	return nil
}

// Empty writes 204 No Content with no body.
func Empty() Response { return emptyResponse(http.StatusNoContent) }
