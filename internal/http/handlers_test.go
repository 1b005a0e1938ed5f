package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"intake-chatbot/internal/core"
	"intake-chatbot/pkg"
)

type stubLLM struct{ reply string }

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return s.reply, nil
}

type nopTranscript struct{}

func (nopTranscript) AppendDialogue(ctx context.Context, speaker pkg.Speaker, message string, at time.Time) error {
	return nil
}

type nopRecords struct{}

func (nopRecords) SavePatient(ctx context.Context, record *pkg.PatientRecord) error {
	return nil
}

func newTestServer() *Server {
	intake := core.NewIntakeService(&stubLLM{reply: "Qual é o seu telefone?"}, nopTranscript{}, nopRecords{})
	return NewServer(nil, intake)
}

func TestChatReturnsReply(t *testing.T) {
	srv := newTestServer()
	body := `{"user_id": "u1", "message": "meu nome é João"}`
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp pkg.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Reply == "" {
		t.Error("expected a non-empty reply")
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"user_id": "u1", "message": ""}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "mensagem vazia") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestChatRejectsInvalidBody(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
