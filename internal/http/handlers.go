package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"intake-chatbot/internal/core"
	"intake-chatbot/internal/db"
	"intake-chatbot/pkg"
)

// Server bundles together the dependencies required by HTTP handlers.  It
// implements http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	Repo   *db.Repository
	Intake *core.IntakeService
}

// NewServer constructs a Server.
func NewServer(repo *db.Repository, intake *core.IntakeService) *Server {
	return &Server{Repo: repo, Intake: intake}
}

// ServeHTTP dispatches incoming requests based on the URL path.  Minimal
// routing logic is implemented here to keep dependencies light.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/chat" && r.Method == http.MethodPost:
		s.handleChat(w, r)
	case r.URL.Path == "/history" && r.Method == http.MethodGet:
		s.handleHistory(w, r)
	case r.URL.Path == "/patients" && r.Method == http.MethodGet:
		s.handlePatients(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleChat processes one patient message and returns the assistant reply.
// An empty message is the only client error; it causes no side effects.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req pkg.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo inválido")
		return
	}
	reply, err := s.Intake.HandleTurn(ctx, req.UserID, req.Message)
	if err != nil {
		if errors.Is(err, core.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, "mensagem vazia")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, pkg.ChatResponse{Reply: reply})
}

// handleHistory returns the full dialogue transcript as JSON.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.Repo.ListDialogues(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, entries)
}

// handlePatients returns all finalized patient registrations as JSON.
func (s *Server) handlePatients(w http.ResponseWriter, r *http.Request) {
	records, err := s.Repo.ListPatients(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, records)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
