package ws

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestHandleEventsWS_NoHub(t *testing.T) {
	h := NewHandler(nil, nil)

	app := fiber.New()
	app.Get("/ws", h.HandleEventsWS)

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a hub, got %d", resp.StatusCode)
	}
}

func TestHandleEventsWS_RejectsPlainHTTP(t *testing.T) {
	h := NewHandler(NewHub(nil), nil)

	app := fiber.New()
	app.Get("/ws", h.HandleEventsWS)

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for a non-upgrade request, got %d", resp.StatusCode)
	}
}
