package draft

// #region imports
import (
	"database/sql"
	"fmt"
	"time"
)

// #endregion

// #region schema

const auditSchema = `
CREATE TABLE IF NOT EXISTS guidance_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	draft_id    TEXT,
	intent      TEXT NOT NULL,
	message_id  TEXT,
	tone        TEXT NOT NULL,
	confidence  INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_guidance_log_draft ON guidance_log(draft_id, created_at);
`

// #endregion schema

// #region types

// GuidanceEntry is one row in the guidance audit log: which intent was
// shown, with what tone, at what confidence. DraftID is empty when the
// form has not been persisted yet.
type GuidanceEntry struct {
	DraftID    string
	Intent     string
	MessageID  string
	Tone       string
	Confidence int
	CreatedAt  time.Time
}

// #endregion types

// #region log-guidance

// LogGuidance appends an entry to the guidance audit log.
func (s *Store) LogGuidance(entry GuidanceEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO guidance_log (draft_id, intent, message_id, tone, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		nullString(entry.DraftID),
		entry.Intent,
		nullString(entry.MessageID),
		entry.Tone,
		entry.Confidence,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log guidance: %w", err)
	}
	return nil
}

// GuidanceHistory returns the most recent audit entries, newest first.
// A non-empty draftID filters to one draft.
func (s *Store) GuidanceHistory(draftID string, limit int) ([]GuidanceEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT draft_id, intent, message_id, tone, confidence, created_at
	          FROM guidance_log`
	args := []any{}
	if draftID != "" {
		query += ` WHERE draft_id = ?`
		args = append(args, draftID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query guidance log: %w", err)
	}
	defer rows.Close()

	var entries []GuidanceEntry
	for rows.Next() {
		var (
			entry     GuidanceEntry
			draftID   sql.NullString
			messageID sql.NullString
			createdAt string
		)
		if err := rows.Scan(&draftID, &entry.Intent, &messageID, &entry.Tone, &entry.Confidence, &createdAt); err != nil {
			return nil, fmt.Errorf("scan guidance log: %w", err)
		}
		entry.DraftID = draftID.String
		entry.MessageID = messageID.String
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp: %w", err)
		}
		entry.CreatedAt = ts
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// #endregion log-guidance
