package handler

import (
	"errors"

	"jobpilot/internal/ai"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AIHandler serves drafting assets. These endpoints are stateless request and
// response exchanges; they read nothing from and write nothing to the
// dashboard state container.
type AIHandler struct {
	svc *ai.Service
}

type suggestionsRequest struct {
	ResumeContext  string `json:"resume_context"`
	JobDescription string `json:"job_description"`
}

type coverLetterRequest struct {
	ResumeContext  string `json:"resume_context"`
	JobDescription string `json:"job_description"`
	Company        string `json:"company"`
	Title          string `json:"title"`
}

func NewAIHandler(svc *ai.Service) *AIHandler {
	return &AIHandler{svc: svc}
}

func (h *AIHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/ai/suggestions", h.Suggestions)
	r.Post("/ai/cover-letter", h.CoverLetter)
	r.Post("/ai/interview-prep", h.InterviewPrep)
}

func (h *AIHandler) Suggestions(c fiber.Ctx) error {
	var req suggestionsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	suggestions, err := h.svc.SuggestTailoring(c.Context(), req.ResumeContext, req.JobDescription)
	if err != nil {
		return mapAIError(err)
	}
	return response.OK(c, map[string]any{"suggestions": suggestions})
}

func (h *AIHandler) CoverLetter(c fiber.Ctx) error {
	var req coverLetterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	letter, err := h.svc.GenerateCoverLetter(c.Context(), req.ResumeContext, req.JobDescription, req.Company, req.Title)
	if err != nil {
		return mapAIError(err)
	}
	return response.OK(c, map[string]any{"cover_letter": letter})
}

func (h *AIHandler) InterviewPrep(c fiber.Ctx) error {
	var req suggestionsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	prep, err := h.svc.GenerateInterviewPrep(c.Context(), req.ResumeContext, req.JobDescription)
	if err != nil {
		return mapAIError(err)
	}
	return response.OK(c, map[string]any{"interview_prep": prep})
}

func mapAIError(err error) error {
	switch {
	case errors.Is(err, ai.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, ai.ErrUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "AI drafting is not configured", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusBadGateway, "Failed to get a response from the AI model", nil, err)
	}
}
