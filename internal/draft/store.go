// Package draft persists submission drafts in SQLite, keyed by id,
// with denormalized summary columns for listing without decoding the
// form JSON.
package draft

// #region imports
import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"titleguide/internal/form"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS drafts (
	id                 TEXT PRIMARY KEY,
	status             TEXT NOT NULL DEFAULT 'draft',
	current_step       INTEGER NOT NULL DEFAULT 0,
	form_json          TEXT NOT NULL,
	title              TEXT,
	title_type         TEXT,
	release_year       INTEGER,
	confidence_score   INTEGER NOT NULL DEFAULT 0,
	completion_percent INTEGER NOT NULL DEFAULT 0,
	created_at         TEXT NOT NULL,
	updated_at         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_drafts_status_updated
	ON drafts (status, updated_at DESC);
`

// #endregion schema

// #region types

// Status is a draft's lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

// ErrNotFound is returned when no draft matches.
var ErrNotFound = errors.New("draft not found")

// Record is one persisted draft row.
type Record struct {
	ID                string
	Status            Status
	CurrentStep       int
	Form              form.Snapshot
	Title             string
	TitleType         string
	ReleaseYear       *int
	ConfidenceScore   int
	CompletionPercent int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// #endregion types

// #region store

// Store manages drafts in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens a SQLite database and runs migrations. now may be
// nil to use the wall clock.
func NewStore(dbPath string, now func() time.Time) (*Store, error) {
	if now == nil {
		now = time.Now
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if _, err := db.Exec(auditSchema); err != nil {
		return nil, fmt.Errorf("migrate audit log: %w", err)
	}
	return &Store{db: db, now: now}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region mutations

// Create inserts a new draft and returns its record.
func (s *Store) Create(snap form.Snapshot, step int) (Record, error) {
	rec := buildRecord(uuid.New().String(), snap, step)
	rec.Status = StatusDraft
	rec.CreatedAt = s.now().UTC()
	rec.UpdatedAt = rec.CreatedAt

	formJSON, err := json.Marshal(snap)
	if err != nil {
		return Record{}, fmt.Errorf("marshal form: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO drafts (id, status, current_step, form_json, title, title_type, release_year,
		                     confidence_score, completion_percent, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Status, rec.CurrentStep, string(formJSON),
		nullString(rec.Title), nullString(rec.TitleType), nullYear(rec.ReleaseYear),
		rec.ConfidenceScore, rec.CompletionPercent,
		rec.CreatedAt.Format(time.RFC3339Nano), rec.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert draft: %w", err)
	}
	return rec, nil
}

// Save overwrites an existing draft's form and summary columns.
func (s *Store) Save(id string, snap form.Snapshot, step int) error {
	rec := buildRecord(id, snap, step)

	formJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal form: %w", err)
	}

	res, err := s.db.Exec(
		`UPDATE drafts
		 SET current_step = ?, form_json = ?, title = ?, title_type = ?, release_year = ?,
		     confidence_score = ?, completion_percent = ?, updated_at = ?
		 WHERE id = ? AND status = ?`,
		rec.CurrentStep, string(formJSON),
		nullString(rec.Title), nullString(rec.TitleType), nullYear(rec.ReleaseYear),
		rec.ConfidenceScore, rec.CompletionPercent,
		s.now().UTC().Format(time.RFC3339Nano),
		id, StatusDraft,
	)
	if err != nil {
		return fmt.Errorf("update draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Submit finalizes a draft. Submitted drafts stop accepting saves.
func (s *Store) Submit(id string) error {
	res, err := s.db.Exec(
		`UPDATE drafts SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		StatusSubmitted, s.now().UTC().Format(time.RFC3339Nano), id, StatusDraft,
	)
	if err != nil {
		return fmt.Errorf("submit draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a draft.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// #endregion mutations

// #region queries

// Get loads one draft by id.
func (s *Store) Get(id string) (Record, error) {
	row := s.db.QueryRow(selectCols+` WHERE id = ?`, id)
	return scanRecord(row)
}

// LoadLatest returns the most recently updated open draft, or
// ErrNotFound when none exists.
func (s *Store) LoadLatest() (Record, error) {
	row := s.db.QueryRow(selectCols+` WHERE status = ? ORDER BY updated_at DESC LIMIT 1`, StatusDraft)
	return scanRecord(row)
}

// List returns drafts ordered newest first, optionally filtered by
// status ("" for all).
func (s *Store) List(status Status, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = s.db.Query(selectCols+` ORDER BY updated_at DESC LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(selectCols+` WHERE status = ? ORDER BY updated_at DESC LIMIT ?`, status, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion queries

// #region row-mapping

const selectCols = `SELECT id, status, current_step, form_json, title, title_type, release_year,
	confidence_score, completion_percent, created_at, updated_at FROM drafts`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec       Record
		formJSON  string
		title     sql.NullString
		titleType sql.NullString
		year      sql.NullInt64
		created   string
		updated   string
	)
	err := row.Scan(&rec.ID, &rec.Status, &rec.CurrentStep, &formJSON,
		&title, &titleType, &year,
		&rec.ConfidenceScore, &rec.CompletionPercent, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("scan draft: %w", err)
	}

	if err := json.Unmarshal([]byte(formJSON), &rec.Form); err != nil {
		return Record{}, fmt.Errorf("decode form: %w", err)
	}
	rec.Title = title.String
	rec.TitleType = titleType.String
	if year.Valid {
		y := int(year.Int64)
		rec.ReleaseYear = &y
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Record{}, fmt.Errorf("parse created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return Record{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return rec, nil
}

// buildRecord denormalizes the summary columns from the form.
func buildRecord(id string, snap form.Snapshot, step int) Record {
	rec := Record{
		ID:                id,
		CurrentStep:       step,
		Form:              snap,
		Title:             snap.Core.Title,
		TitleType:         string(snap.Core.Type),
		ConfidenceScore:   snap.Meta.ConfidenceScore,
		CompletionPercent: form.Validate(snap).CompletionPercent,
	}
	if snap.Core.Year != nil {
		y := *snap.Core.Year
		rec.ReleaseYear = &y
	}
	return rec
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullYear(y *int) any {
	if y == nil {
		return nil
	}
	return *y
}

// #endregion row-mapping
