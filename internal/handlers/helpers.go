package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var errInvalidID = errors.New("invalid id")

// maxBodyBytes bounds request bodies; the largest legitimate body is a menu item
const maxBodyBytes = 1 << 20

// parseID reads a numeric id from a chi URL parameter
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, errInvalidID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// parseCartID reads a cart session id from the URL
func parseCartID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "cartId"))
}

// decodeJSON decodes a request body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
