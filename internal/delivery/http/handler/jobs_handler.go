package handler

import (
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/domain/job"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/store"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	store *store.Store
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateDetailsRequest struct {
	IsTracked *bool          `json:"is_tracked"`
	Notes     *string        `json:"notes"`
	Contacts  *[]job.Contact `json:"contacts"`
}

func NewJobsHandler(st *store.Store) *JobsHandler {
	return &JobsHandler{store: st}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs/search/trigger", h.TriggerSearch)
	r.Patch("/jobs/:id/status", h.UpdateStatus)
	r.Patch("/jobs/:id/details", h.UpdateDetails)
}

func (h *JobsHandler) TriggerSearch(c fiber.Ctx) error {
	h.store.TriggerJobSearch(c.Context())
	return response.OK(c, h.store.Snapshot())
}

func (h *JobsHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	h.store.UpdateJobStatus(c.Context(), id, req.Status)
	return response.OK(c, h.store.Snapshot())
}

func (h *JobsHandler) UpdateDetails(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req updateDetailsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	patch := job.DetailsPatch{IsTracked: req.IsTracked, Notes: req.Notes, Contacts: req.Contacts}
	if patch.Empty() {
		return middleware.NewAppError(fiber.StatusBadRequest, "No details to update", nil, nil)
	}

	h.store.UpdateJobDetails(c.Context(), id, patch)
	return response.OK(c, h.store.Snapshot())
}
