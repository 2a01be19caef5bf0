package handler

import (
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/store"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// StateHandler exposes the dashboard state container. Reads return a full
// snapshot; action endpoints dispatch into the store and return the snapshot
// that resulted, so the client never has to guess what changed.
type StateHandler struct {
	store *store.Store
}

type setViewRequest struct {
	View string `json:"view"`
}

type selectJobRequest struct {
	JobID *uuid.UUID `json:"job_id"`
}

func NewStateHandler(st *store.Store) *StateHandler {
	return &StateHandler{store: st}
}

func (h *StateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/state", h.GetState)
	r.Post("/state/view", h.SetView)
	r.Post("/state/selected-job", h.SetSelectedJob)
	r.Post("/state/refresh", h.Refresh)
}

func (h *StateHandler) GetState(c fiber.Ctx) error {
	return response.OK(c, h.store.Snapshot())
}

func (h *StateHandler) SetView(c fiber.Ctx) error {
	var req setViewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.View == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "view is required", nil, nil)
	}

	h.store.SetView(req.View)
	return response.OK(c, h.store.Snapshot())
}

// SetSelectedJob opens the details panel on a job from the current snapshot;
// a null job_id closes it.
func (h *StateHandler) SetSelectedJob(c fiber.Ctx) error {
	var req selectJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if req.JobID == nil {
		h.store.SetSelectedJob(nil)
		return response.OK(c, h.store.Snapshot())
	}

	snap := h.store.Snapshot()
	for i := range snap.AllJobs {
		if snap.AllJobs[i].ID == *req.JobID {
			h.store.SetSelectedJob(&snap.AllJobs[i])
			return response.OK(c, h.store.Snapshot())
		}
	}
	return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, nil)
}

// Refresh reloads every collection. A partial failure still returns the
// snapshot, with the failed collections named so the client can show a
// degraded-data banner.
func (h *StateHandler) Refresh(c fiber.Ctx) error {
	report := h.store.FetchAllData(c.Context())

	data := map[string]any{
		"state": h.store.Snapshot(),
	}
	if report.Partial() {
		failed := make([]string, 0, 3)
		if report.Jobs != nil {
			failed = append(failed, "jobs")
		}
		if report.Profiles != nil {
			failed = append(failed, "profiles")
		}
		if report.Searches != nil {
			failed = append(failed, "searches")
		}
		data["failed_collections"] = failed
	}
	return response.OK(c, data)
}
