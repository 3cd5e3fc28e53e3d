package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MikeSquared-Agency/agendavoz/internal/interpreter"
)

var testClock = func() time.Time {
	return time.Date(2024, time.December, 2, 10, 30, 0, 0, time.UTC)
}

func testServer(apiToken string) *Server {
	return NewServer(8760, apiToken, interpreter.New(testClock), nil)
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer("")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := testServer("")

	req := httptest.NewRequest("GET", "/api/v1/agendavoz/status", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["agent"] != "agendavoz" {
		t.Errorf("expected agent agendavoz, got %q", body["agent"])
	}
}

func TestInterpretEndpoint(t *testing.T) {
	srv := testServer("")

	body := strings.NewReader(`{"transcript":"Reunião com João amanhã às 14h"}`)
	req := httptest.NewRequest("POST", "/api/v1/interpret", body)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res interpreter.Result
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if res.Category != interpreter.CategoryMeeting {
		t.Errorf("expected meeting, got %q", res.Category)
	}
	if res.Title != "Reunião com João" {
		t.Errorf("title = %q", res.Title)
	}
	if res.OccursAt.Day() != 3 || res.OccursAt.Hour() != 14 {
		t.Errorf("occursAt = %v, want Dec 3 14:00", res.OccursAt)
	}
}

func TestInterpretEndpoint_InvalidJSON(t *testing.T) {
	srv := testServer("")

	req := httptest.NewRequest("POST", "/api/v1/interpret", strings.NewReader("{"))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestBearerAuth(t *testing.T) {
	srv := testServer("secret-token")

	body := strings.NewReader(`{"transcript":"reunião amanhã"}`)
	req := httptest.NewRequest("POST", "/api/v1/interpret", body)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	body = strings.NewReader(`{"transcript":"reunião amanhã"}`)
	req = httptest.NewRequest("POST", "/api/v1/interpret", body)
	req.Header.Set("Authorization", "Bearer secret-token")
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with token, got %d", w.Code)
	}

	// Health stays open.
	req = httptest.NewRequest("GET", "/health", nil)
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected open health endpoint, got %d", w.Code)
	}
}
