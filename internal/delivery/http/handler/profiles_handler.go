package handler

import (
	"context"

	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/domain/profile"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/store"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfilesHandler struct {
	store *store.Store
}

type saveProfileRequest struct {
	ID            *uuid.UUID `json:"id"`
	ProfileName   string     `json:"profile_name"`
	ResumeContext string     `json:"resume_context"`
	ContactName   *string    `json:"contact_name"`
	ContactEmail  *string    `json:"contact_email"`
	ContactPhone  *string    `json:"contact_phone"`
	ContactLinks  *string    `json:"contact_links"`
	Summary       *string    `json:"summary"`
}

func NewProfilesHandler(st *store.Store) *ProfilesHandler {
	return &ProfilesHandler{store: st}
}

func (h *ProfilesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/profiles", h.Save)
	r.Delete("/profiles/:id", h.Delete)
}

func (h *ProfilesHandler) Save(c fiber.Ctx) error {
	var req saveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.ProfileName == "" || req.ResumeContext == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "profile_name and resume_context are required", nil, nil)
	}

	p := profile.Profile{
		ProfileName:   req.ProfileName,
		ResumeContext: req.ResumeContext,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		ContactLinks:  req.ContactLinks,
		Summary:       req.Summary,
	}
	if req.ID != nil {
		p.ID = *req.ID
	}

	h.store.SaveProfile(c.Context(), p)
	return response.OK(c, h.store.Snapshot())
}

// Delete does not remove anything directly. It arms the confirmation modal
// with the delete bound to it; the actual removal happens on modal confirm.
func (h *ProfilesHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile id", nil, err)
	}

	h.store.OpenConfirmationModal(
		"Delete profile?",
		"Deleting a profile also removes its saved searches and their jobs.",
		func(ctx context.Context) {
			h.store.DeleteProfile(ctx, id)
		},
	)
	return response.OK(c, h.store.Snapshot())
}
