package pkg

import "time"

// Field identifies one of the five registration attributes collected from a
// patient during intake.
type Field string

const (
	FieldName     Field = "name"
	FieldAge      Field = "age"
	FieldAddress  Field = "address"
	FieldPhone    Field = "phone"
	FieldSymptoms Field = "symptoms"
)

// AllFields is the canonical field order used for completion checks,
// summaries and clarification prompts.
var AllFields = []Field{FieldName, FieldAge, FieldAddress, FieldPhone, FieldSymptoms}

// fieldLabels maps fields to the Portuguese labels shown to patients.
var fieldLabels = map[Field]string{
	FieldName:     "Nome",
	FieldAge:      "Idade",
	FieldAddress:  "Endereço",
	FieldPhone:    "Telefone",
	FieldSymptoms: "Sintomas",
}

// Label returns the patient-facing Portuguese label for the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Fields maps registration fields to their extracted textual values.  It is
// used both for the partial result of a single message and for the
// accumulated state of a session.  A field absent from the map means "not
// known yet"; an empty value is never stored.
type Fields map[Field]string

// Merge copies every non-empty value from partial into f.  Fields absent or
// empty in partial are left untouched, so a value already known can never be
// regressed to empty by a later turn.
func (f Fields) Merge(partial Fields) {
	for field, value := range partial {
		if value != "" {
			f[field] = value
		}
	}
}

// Missing returns the required fields not yet known, in canonical order.
func (f Fields) Missing() []Field {
	var missing []Field
	for _, field := range AllFields {
		if f[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Complete reports whether all five required fields are known.
func (f Fields) Complete() bool {
	return len(f.Missing()) == 0
}

// Clone returns an independent copy of f.
func (f Fields) Clone() Fields {
	c := make(Fields, len(f))
	for field, value := range f {
		c[field] = value
	}
	return c
}

// Speaker describes who authored a dialogue message.  There are only two
// roles: the patient (user) and the assistant.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// DialogueEntry is one line of the intake transcript.
type DialogueEntry struct {
	ID        int64     `json:"id"`
	Speaker   Speaker   `json:"speaker"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// PatientRecord is the finalized registration handed to persistence exactly
// once per completed intake session.
type PatientRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Age          string    `json:"age"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Symptoms     string    `json:"symptoms"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ChatRequest is the body of a patient message posted to the intake API.
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// ChatResponse carries the assistant's reply back to the caller.
type ChatResponse struct {
	Reply string `json:"reply"`
}
