package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeGenerator struct {
	textOut string
	jsonOut string
	err     error

	textCalls int
	jsonCalls int
	lastPrompt string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.textCalls++
	f.lastPrompt = prompt
	return f.textOut, f.err
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.jsonCalls++
	f.lastPrompt = prompt
	return f.jsonOut, f.err
}

func (f *fakeGenerator) Close() error { return nil }

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func TestGenerateCoverLetter(t *testing.T) {
	gen := &fakeGenerator{textOut: "  I am excited to apply.  "}
	svc := NewService(gen, nil, nil)

	got, err := svc.GenerateCoverLetter(context.Background(), "resume", "desc", "Acme", "SWE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "I am excited to apply." {
		t.Fatalf("expected trimmed letter, got %q", got)
	}
	if !strings.Contains(gen.lastPrompt, "Acme") || !strings.Contains(gen.lastPrompt, "SWE") {
		t.Fatalf("expected company and title embedded in prompt")
	}
}

func TestGenerateCoverLetter_MissingInput(t *testing.T) {
	svc := NewService(&fakeGenerator{}, nil, nil)
	_, err := svc.GenerateCoverLetter(context.Background(), "resume", "", "Acme", "SWE")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSuggestTailoring(t *testing.T) {
	gen := &fakeGenerator{jsonOut: `{"suggestions":["Add metrics to the platform bullet.","Mention Kubernetes."]}`}
	svc := NewService(gen, nil, nil)

	got, err := svc.SuggestTailoring(context.Background(), "resume", "desc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1] != "Mention Kubernetes." {
		t.Fatalf("unexpected suggestions: %v", got)
	}
}

func TestSuggestTailoring_MalformedResponse(t *testing.T) {
	gen := &fakeGenerator{jsonOut: `here are some suggestions: ...`}
	svc := NewService(gen, nil, nil)

	_, err := svc.SuggestTailoring(context.Background(), "resume", "desc")
	if err == nil || !strings.Contains(err.Error(), "malformed") {
		t.Fatalf("expected malformed-response error, got %v", err)
	}
}

func TestSuggestTailoring_EmptyList(t *testing.T) {
	gen := &fakeGenerator{jsonOut: `{"suggestions":[]}`}
	svc := NewService(gen, nil, nil)

	if _, err := svc.SuggestTailoring(context.Background(), "resume", "desc"); err == nil {
		t.Fatalf("expected error for empty suggestion list")
	}
}

func TestGenerateInterviewPrep(t *testing.T) {
	gen := &fakeGenerator{jsonOut: `{"interviewPrep":[{"question":"Why us?","talkingPoints":["Tie in the realtime dashboard project."]}]}`}
	svc := NewService(gen, nil, nil)

	got, err := svc.GenerateInterviewPrep(context.Background(), "resume", "desc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Question != "Why us?" || len(got[0].TalkingPoints) != 1 {
		t.Fatalf("unexpected prep items: %+v", got)
	}
}

func TestCacheMemoizesGenerations(t *testing.T) {
	gen := &fakeGenerator{jsonOut: `{"suggestions":["One."]}`}
	svc := NewService(gen, newMemCache(), nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.SuggestTailoring(context.Background(), "resume", "desc"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if gen.jsonCalls != 1 {
		t.Fatalf("expected one model call, got %d", gen.jsonCalls)
	}

	// Different inputs must produce a different key.
	if _, err := svc.SuggestTailoring(context.Background(), "resume", "other desc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.jsonCalls != 2 {
		t.Fatalf("expected second model call for new inputs, got %d", gen.jsonCalls)
	}
}

func TestNilGenerator(t *testing.T) {
	svc := NewService(nil, nil, nil)
	if _, err := svc.SuggestTailoring(context.Background(), "resume", "desc"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
