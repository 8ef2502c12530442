package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedLevel string
	}{
		{"ok", http.StatusOK, `{"status":"ok"}`, "INFO"},
		{"not found", http.StatusNotFound, `{"error":"Sale not found"}`, "INFO"},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))

			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			handler := chimiddleware.RequestID(Logger(log)(inner))

			req := httptest.NewRequest(http.MethodGet, "/api/sales/7", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v", err)
			}

			if entry["level"] != tt.expectedLevel {
				t.Errorf("level = %v, want %s", entry["level"], tt.expectedLevel)
			}
			if entry["path"] != "/api/sales/7" || entry["method"] != http.MethodGet {
				t.Errorf("unexpected request fields: %v", entry)
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("status field = %v, want %d", entry["status"], tt.status)
			}
			if entry["bytes"] != float64(len(tt.body)) {
				t.Errorf("bytes field = %v, want %d", entry["bytes"], len(tt.body))
			}
			if id, _ := entry["request_id"].(string); id == "" {
				t.Error("request_id missing from log line")
			}
		})
	}
}

func TestLogger_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["status"] != float64(http.StatusOK) {
		t.Errorf("status field = %v, want 200", entry["status"])
	}
}
