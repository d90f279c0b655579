package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pongadmin/internal/logger"

	"github.com/jmoiron/sqlx"
)

var schema = `CREATE TABLE IF NOT EXISTS storage (
  session_id varchar(64) NOT NULL,
  name varchar(64) NOT NULL,
  value text NOT NULL,
  updated_at timestamp NOT NULL,
  PRIMARY KEY (session_id, name),
  CONSTRAINT non_empty_session CHECK (TRIM(session_id) <> '')
);

CREATE INDEX IF NOT EXISTS storage_updated_at ON storage(updated_at);`

type SqliteStore struct {
	Conn   *sqlx.DB
	Logger logger.Logger
}

func (s *SqliteStore) SetupConnection(dbname string) error {
	sqlite_dbfile := dbname
	if !strings.HasSuffix(dbname, ".db") {
		sqlite_dbfile = dbname + ".db"
	}
	db, err := sqlx.Connect("sqlite3", sqlite_dbfile)
	if err != nil {
		s.Logger.Error("Database setup failed", err)
		return err
	}
	// sqlite serialises writers; a single connection avoids "database is locked".
	db.SetMaxOpenConns(1)
	s.Conn = db
	if _, err := s.Conn.Exec(schema); err != nil {
		s.Logger.Error("Failed to apply database schema", err)
		s.Conn.Close()
		return err
	}
	s.Logger.Info(fmt.Sprintf("Database %s setup successfully", sqlite_dbfile))
	return nil
}

func (s *SqliteStore) CloseConnection() {
	s.Logger.Info("Closing database connection")
	if err := s.Conn.Close(); err != nil {
		s.Logger.Error("Failed to tear down database connection", err)
		return
	}
	s.Logger.Info("Database connection closed successfully")
}

func (s *SqliteStore) GetItem(sessionId, key string) (string, bool) {
	sql_query := `SELECT value FROM storage WHERE session_id = ? AND name = ?;`
	var value string
	err := s.Conn.Get(&value, sql_query, sessionId, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to read %s", key), err)
		return "", false
	}
	return value, true
}

func (s *SqliteStore) SetItem(sessionId, key, value string) error {
	txn, err := s.Conn.Beginx()
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to store %s", key), err)
		return err
	}
	upsertSQL := `INSERT INTO storage(session_id, name, value, updated_at) VALUES(?, ?, ?, ?)
  ON CONFLICT(session_id, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`
	_, err = txn.Exec(upsertSQL, sessionId, key, value, time.Now().UTC())
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to store %s", key), err)
		errRoll := txn.Rollback()
		if errRoll != nil {
			s.Logger.Error("Failed to rollback SetItem txn", errRoll)
			return errRoll
		}
		return err
	}
	errCommit := txn.Commit()
	if errCommit != nil {
		s.Logger.Error("Failed to Commit SetItem txn", errCommit)
		return errCommit
	}
	s.Logger.Debug(fmt.Sprintf("Stored %s for session %s", key, sessionId))
	return nil
}

func (s *SqliteStore) RemoveItem(sessionId, key string) error {
	deleteSQL := `DELETE FROM storage WHERE session_id = ? AND name = ?;`
	_, err := s.Conn.Exec(deleteSQL, sessionId, key)
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to remove %s", key), err)
		return err
	}
	s.Logger.Debug(fmt.Sprintf("Removed %s for session %s", key, sessionId))
	return nil
}

func (s *SqliteStore) RemoveSession(sessionId string) error {
	deleteSQL := `DELETE FROM storage WHERE session_id = ?;`
	_, err := s.Conn.Exec(deleteSQL, sessionId)
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to remove storage of session %s", sessionId), err)
		return err
	}
	return nil
}
