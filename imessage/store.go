// Package imessage is a thin, schema-aware reader over the iMessage
// chat.db SQLite database. It has no knowledge of the typedstream wire
// format beyond handing an attributedBody blob to typedstream.Decode
// and reading the result back through the accessors.
package imessage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MessageRow is one row of the message table relevant to attributed-body
// decoding.
type MessageRow struct {
	RowID          int64
	GUID           string
	HandleID       sql.NullInt64
	Date           int64
	AttributedBody []byte
}

// Store is a read-only handle on a chat.db file.
type Store struct {
	db *sql.DB
}

// Open opens a chat.db SQLite file read-only.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("imessage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("imessage: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Messages returns the most recent limit messages, newest first.
func (s *Store) Messages(ctx context.Context, limit int) ([]MessageRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ROWID, guid, handle_id, date, attributedBody
		 FROM message
		 ORDER BY date DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("imessage: query messages: %w", err)
	}
	defer rows.Close()

	var out []MessageRow
	for rows.Next() {
		var m MessageRow
		if err := rows.Scan(&m.RowID, &m.GUID, &m.HandleID, &m.Date, &m.AttributedBody); err != nil {
			return nil, fmt.Errorf("imessage: scan message: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("imessage: iterate messages: %w", err)
	}
	return out, nil
}

// AttributedBody reads the attributedBody blob for one message by ROWID.
func (s *Store) AttributedBody(ctx context.Context, rowID int64) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT attributedBody FROM message WHERE ROWID = ?`, rowID).Scan(&blob)
	if err != nil {
		return nil, fmt.Errorf("imessage: attributed body for row %d: %w", rowID, err)
	}
	return blob, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
