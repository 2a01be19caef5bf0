package handler

import (
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/store"

	"github.com/gofiber/fiber/v3"
)

type ModalHandler struct {
	store *store.Store
}

func NewModalHandler(st *store.Store) *ModalHandler {
	return &ModalHandler{store: st}
}

func (h *ModalHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/modal/confirm", h.Confirm)
	r.Post("/modal/cancel", h.Cancel)
}

func (h *ModalHandler) Confirm(c fiber.Ctx) error {
	h.store.ConfirmModal(c.Context())
	return response.OK(c, h.store.Snapshot())
}

func (h *ModalHandler) Cancel(c fiber.Ctx) error {
	h.store.CloseConfirmationModal()
	return response.OK(c, h.store.Snapshot())
}
