package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"intake-chatbot/internal/extract"
	"intake-chatbot/internal/llm"
	"intake-chatbot/internal/session"
	"intake-chatbot/pkg"
)

// ErrEmptyMessage is returned for an empty inbound message.  It is the only
// error a turn ever propagates; nothing is logged or mutated in that case.
var ErrEmptyMessage = errors.New("empty message")

// DefaultUserID keys the intake session when the caller supplies no user id.
const DefaultUserID = "anonymous"

// TranscriptSink receives every user and assistant message for audit and
// history.  Writes are best-effort: a failure is logged and never aborts the
// turn.
type TranscriptSink interface {
	AppendDialogue(ctx context.Context, speaker pkg.Speaker, message string, at time.Time) error
}

// RecordSink receives the finalized patient record exactly once per completed
// intake.  A failure is logged; the patient still gets the completion reply.
type RecordSink interface {
	SavePatient(ctx context.Context, record *pkg.PatientRecord) error
}

// IntakeService drives one conversational turn: extract fields from the
// message, merge them into the session, then either finalize the registration
// or ask for what is still missing.  The service itself is stateless; all
// durable turn state lives in the session registry.
type IntakeService struct {
	Sessions   *session.Registry
	LLM        llm.Client
	Transcript TranscriptSink
	Records    RecordSink
}

// NewIntakeService constructs an IntakeService with a fresh session registry.
func NewIntakeService(llmClient llm.Client, transcript TranscriptSink, records RecordSink) *IntakeService {
	return &IntakeService{
		Sessions:   session.NewRegistry(),
		LLM:        llmClient,
		Transcript: transcript,
		Records:    records,
	}
}

// HandleTurn processes one inbound patient message and returns exactly one
// assistant reply.  An empty message yields ErrEmptyMessage with no side
// effects; every other outcome, including collaborator failures, still
// produces a reply.
func (s *IntakeService) HandleTurn(ctx context.Context, userID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if userID == "" {
		userID = DefaultUserID
	}

	s.logDialogue(ctx, pkg.SpeakerUser, message)

	partial := extract.Extract(message)
	fields, missing, done := s.Sessions.Apply(userID, partial)

	var reply string
	if done {
		record := recordFromFields(fields)
		if err := s.Records.SavePatient(ctx, &record); err != nil {
			log.Printf("failed to save patient record for %s: %v", userID, err)
		}
		reply = fmt.Sprintf(completionTemplate, Summary(fields), MeetingLink)
	} else {
		prompt := clarificationPrompt(fields, missing, message)
		generated, err := s.LLM.Generate(ctx, prompt)
		if err != nil || generated == "" {
			if err != nil {
				log.Printf("llm generation failed: %v", err)
			}
			generated = fallbackReply(missing)
		}
		reply = generated
	}

	s.logDialogue(ctx, pkg.SpeakerAssistant, reply)
	return reply, nil
}

func (s *IntakeService) logDialogue(ctx context.Context, speaker pkg.Speaker, message string) {
	if err := s.Transcript.AppendDialogue(ctx, speaker, message, time.Now()); err != nil {
		log.Printf("failed to append %s dialogue: %v", speaker, err)
	}
}

func recordFromFields(fields pkg.Fields) pkg.PatientRecord {
	return pkg.PatientRecord{
		ID:           uuid.NewString(),
		Name:         fields[pkg.FieldName],
		Age:          fields[pkg.FieldAge],
		Address:      fields[pkg.FieldAddress],
		Phone:        fields[pkg.FieldPhone],
		Symptoms:     fields[pkg.FieldSymptoms],
		RegisteredAt: time.Now(),
	}
}
