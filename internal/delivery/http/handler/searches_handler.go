package handler

import (
	"context"

	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/domain/search"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/store"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SearchesHandler struct {
	store *store.Store
}

type saveSearchRequest struct {
	ID              *uuid.UUID `json:"id"`
	SearchName      string     `json:"search_name"`
	SearchTerm      string     `json:"search_term"`
	Country         string     `json:"country"`
	ProfileID       *uuid.UUID `json:"profile_id"`
	ExperienceLevel string     `json:"experience_level"`
	HoursOld        int        `json:"hours_old"`
}

func NewSearchesHandler(st *store.Store) *SearchesHandler {
	return &SearchesHandler{store: st}
}

func (h *SearchesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/searches", h.Save)
	r.Delete("/searches/:id", h.Delete)
}

func (h *SearchesHandler) Save(c fiber.Ctx) error {
	var req saveSearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.SearchName == "" || req.SearchTerm == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "search_name and search_term are required", nil, nil)
	}

	sr := search.Search{
		SearchName:      req.SearchName,
		SearchTerm:      req.SearchTerm,
		Country:         req.Country,
		ProfileID:       req.ProfileID,
		ExperienceLevel: req.ExperienceLevel,
		HoursOld:        req.HoursOld,
	}
	if req.ID != nil {
		sr.ID = *req.ID
	}

	h.store.SaveSearch(c.Context(), sr)
	return response.OK(c, h.store.Snapshot())
}

func (h *SearchesHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid search id", nil, err)
	}

	h.store.OpenConfirmationModal(
		"Delete search?",
		"Deleting a search also removes the jobs it found.",
		func(ctx context.Context) {
			h.store.DeleteSearch(ctx, id)
		},
	)
	return response.OK(c, h.store.Snapshot())
}
