package handler

import (
	"strconv"

	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/store"

	"github.com/gofiber/fiber/v3"
)

type NotificationsHandler struct {
	store *store.Store
}

func NewNotificationsHandler(st *store.Store) *NotificationsHandler {
	return &NotificationsHandler{store: st}
}

func (h *NotificationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Delete("/notifications/:id", h.Dismiss)
}

func (h *NotificationsHandler) Dismiss(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid notification id", nil, err)
	}

	h.store.RemoveNotification(id)
	return response.OK(c, h.store.Snapshot())
}
