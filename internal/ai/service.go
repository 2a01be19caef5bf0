package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("ai generation unavailable")
)

// Cache is the subset of the redis wrapper the service needs. Implementations
// must treat unavailability as a miss, never as a failure.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// InterviewPrepItem is one likely interview question with tailored advice on
// how to answer it.
type InterviewPrepItem struct {
	Question      string   `json:"question"`
	TalkingPoints []string `json:"talkingPoints"`
}

// Service produces drafting assets from a resume context and a job posting.
// It holds no dashboard state; every call is a pure request/response exchange
// with the model, memoized through the cache.
type Service struct {
	gen      Generator
	cache    Cache
	logger   *log.Logger
	cacheTTL time.Duration
}

func NewService(gen Generator, cache Cache, logger *log.Logger) *Service {
	return &Service{
		gen:      gen,
		cache:    cache,
		logger:   logger,
		cacheTTL: 24 * time.Hour,
	}
}

// GenerateCoverLetter writes a three-paragraph cover letter body. The result
// is plain text with no salutation or sign-off.
func (s *Service) GenerateCoverLetter(ctx context.Context, resumeContext, jobDescription, company, title string) (string, error) {
	if strings.TrimSpace(resumeContext) == "" || strings.TrimSpace(jobDescription) == "" ||
		strings.TrimSpace(company) == "" || strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: resume context, job description, company, and title are required", ErrInvalidInput)
	}
	if s.gen == nil {
		return "", ErrUnavailable
	}

	key := cacheKey("cover-letter", resumeContext, jobDescription, company, title)
	var cached string
	if s.cacheGet(ctx, key, &cached) && cached != "" {
		return cached, nil
	}

	text, err := s.gen.GenerateText(ctx, coverLetterPrompt(resumeContext, jobDescription, company, title))
	if err != nil {
		return "", fmt.Errorf("cover letter generation: %w", err)
	}
	text = strings.TrimSpace(text)

	s.cacheSet(ctx, key, text)
	return text, nil
}

// SuggestTailoring returns resume improvement suggestions, one bullet point
// per entry. A response that is not the expected JSON shape is an error, not
// a silent empty result.
func (s *Service) SuggestTailoring(ctx context.Context, resumeContext, jobDescription string) ([]string, error) {
	if strings.TrimSpace(resumeContext) == "" || strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: resume context and job description are required", ErrInvalidInput)
	}
	if s.gen == nil {
		return nil, ErrUnavailable
	}

	key := cacheKey("tailoring", resumeContext, jobDescription)
	var cached []string
	if s.cacheGet(ctx, key, &cached) && len(cached) > 0 {
		return cached, nil
	}

	raw, err := s.gen.GenerateJSON(ctx, tailoringPrompt(resumeContext, jobDescription))
	if err != nil {
		return nil, fmt.Errorf("tailoring suggestions: %w", err)
	}

	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("tailoring suggestions: malformed model response: %w", err)
	}
	if len(out.Suggestions) == 0 {
		return nil, fmt.Errorf("tailoring suggestions: model returned no suggestions")
	}

	s.cacheSet(ctx, key, out.Suggestions)
	return out.Suggestions, nil
}

// GenerateInterviewPrep returns likely interview questions paired with
// talking points drawn from the resume.
func (s *Service) GenerateInterviewPrep(ctx context.Context, resumeContext, jobDescription string) ([]InterviewPrepItem, error) {
	if strings.TrimSpace(resumeContext) == "" || strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: resume context and job description are required", ErrInvalidInput)
	}
	if s.gen == nil {
		return nil, ErrUnavailable
	}

	key := cacheKey("interview-prep", resumeContext, jobDescription)
	var cached []InterviewPrepItem
	if s.cacheGet(ctx, key, &cached) && len(cached) > 0 {
		return cached, nil
	}

	raw, err := s.gen.GenerateJSON(ctx, interviewPrepPrompt(resumeContext, jobDescription))
	if err != nil {
		return nil, fmt.Errorf("interview prep: %w", err)
	}

	var out struct {
		InterviewPrep []InterviewPrepItem `json:"interviewPrep"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("interview prep: malformed model response: %w", err)
	}
	if len(out.InterviewPrep) == 0 {
		return nil, fmt.Errorf("interview prep: model returned no questions")
	}

	s.cacheSet(ctx, key, out.InterviewPrep)
	return out.InterviewPrep, nil
}

func (s *Service) cacheGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, out)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[AI] cache read failed | key=%s error=%v", key, err)
		}
		return false
	}
	return hit
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.Printf("[AI] cache write failed | key=%s error=%v", key, err)
	}
}

// cacheKey hashes the full input set so any change to resume or posting text
// produces a fresh generation.
func cacheKey(kind string, inputs ...string) string {
	h := sha256.New()
	for _, in := range inputs {
		h.Write([]byte(in))
		h.Write([]byte{0})
	}
	return "ai:" + kind + ":" + hex.EncodeToString(h.Sum(nil))
}
