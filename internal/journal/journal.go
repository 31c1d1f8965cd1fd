// Package journal keeps an append-only history of review events.
//
// The journal is supplementary to the card store: it records what happened
// at each review but the store alone decides scheduling. Callers may treat
// a failed write as non-fatal.
package journal

import (
	"database/sql"
	"fmt"

	"github.com/supercore/words/internal/domain"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS reviews (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    score INTEGER NOT NULL,
    interval_before INTEGER NOT NULL,
    interval_after INTEGER NOT NULL,
    ease_after REAL NOT NULL,
    reviewed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reviews_question ON reviews(question);
`

// DB wraps the journal database connection.
type DB struct {
	conn *sql.DB
}

// Open creates a new journal connection and ensures the schema is in place.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply journal schema: %w", err)
	}

	return &DB{conn: db}, nil
}

// Close closes the journal connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Record appends one review event.
func (db *DB) Record(log domain.ReviewLog) error {
	_, err := db.conn.Exec(`
		INSERT INTO reviews (question, score, interval_before, interval_after, ease_after, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		log.Question,
		log.Score,
		log.IntervalBefore,
		log.IntervalAfter,
		log.EaseAfter,
		log.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record review for %q: %w", log.Question, err)
	}
	return nil
}

// History returns every recorded review for a question, oldest first.
func (db *DB) History(question string) ([]domain.ReviewLog, error) {
	rows, err := db.conn.Query(`
		SELECT question, score, interval_before, interval_after, ease_after, reviewed_at
		FROM reviews WHERE question = ? ORDER BY id
	`, question)
	if err != nil {
		return nil, fmt.Errorf("failed to get history for %q: %w", question, err)
	}
	defer rows.Close()

	var logs []domain.ReviewLog
	for rows.Next() {
		var l domain.ReviewLog
		if err := rows.Scan(
			&l.Question,
			&l.Score,
			&l.IntervalBefore,
			&l.IntervalAfter,
			&l.EaseAfter,
			&l.ReviewedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review row for %q: %w", question, err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history for %q: %w", question, err)
	}
	return logs, nil
}
