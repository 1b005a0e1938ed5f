package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"intake-chatbot/pkg"
)

// Repository wraps database operations for dialogue transcripts and finalized
// patient records.  A single postgres database is used.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a new Repository from an existing sql.DB.
// The caller is responsible for managing the DB connection lifecycle.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// AppendDialogue stores one transcript line.
func (r *Repository) AppendDialogue(ctx context.Context, speaker pkg.Speaker, message string, at time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO dialogues (speaker, message, created_at) VALUES ($1, $2, $3)`,
		speaker, message, at,
	)
	return err
}

// ListDialogues returns the full transcript ordered by insertion.
func (r *Repository) ListDialogues(ctx context.Context) ([]pkg.DialogueEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, speaker, message, created_at FROM dialogues ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []pkg.DialogueEntry
	for rows.Next() {
		var e pkg.DialogueEntry
		if err := rows.Scan(&e.ID, &e.Speaker, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SavePatient stores a finalized patient record.  An id is assigned here if
// the caller left it empty.
func (r *Repository) SavePatient(ctx context.Context, record *pkg.PatientRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO patients (id, name, age, address, phone, symptoms, registered_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.Name, record.Age, record.Address, record.Phone, record.Symptoms, record.RegisteredAt,
	)
	return err
}

// ListPatients returns all finalized registrations, most recent first.
func (r *Repository) ListPatients(ctx context.Context) ([]pkg.PatientRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, age, address, phone, symptoms, registered_at
         FROM patients ORDER BY registered_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []pkg.PatientRecord
	for rows.Next() {
		var p pkg.PatientRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Address, &p.Phone, &p.Symptoms, &p.RegisteredAt); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
