package audit

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

type Auditor struct {
	db *sql.DB
}

// Entry records one answered query.
type Entry struct {
	ID         int64     `json:"id"`
	DocumentID string    `json:"document_id"`
	Query      string    `json:"query"`
	Confidence float64   `json:"confidence"`
	Citations  int       `json:"citations"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// New opens the audit database at path. A failed open degrades to a
// no-op auditor so queries are never blocked on audit.
func New(path string) *Auditor {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to open audit DB")
		return &Auditor{}
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS query_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		document_id TEXT NOT NULL,
		query TEXT,
		confidence REAL,
		citations INTEGER,
		error TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		log.Warn().Err(err).Msg("failed to create audit table")
	}
	return &Auditor{db: db}
}

func (a *Auditor) Log(documentID, query string, confidence float64, citations int, err error) {
	if a.db == nil {
		return
	}
	var errStr string
	if err != nil {
		errStr = err.Error()
	}
	_, err = a.db.Exec(
		"INSERT INTO query_log (document_id, query, confidence, citations, error) VALUES (?, ?, ?, ?, ?)",
		documentID, query, confidence, citations, errStr,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to write audit log")
	}
}

func (a *Auditor) GetLogs(limit int) ([]Entry, error) {
	if a.db == nil {
		return nil, nil
	}
	rows, err := a.db.Query("SELECT id, document_id, query, confidence, citations, error, timestamp FROM query_log ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.DocumentID, &e.Query, &e.Confidence, &e.Citations, &e.Error, &e.Timestamp); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (a *Auditor) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
