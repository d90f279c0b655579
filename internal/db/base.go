//go:generate mockery --name=Repository --output=./mocks
package db

import (
	"pongadmin/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

// ADMIN_TOKEN_KEY is the storage key holding the administrator's bearer token.
const ADMIN_TOKEN_KEY = "adminToken"

// Repository is durable per-browser key/value storage.
type Repository interface {
	SetupConnection(database string) error
	CloseConnection()
	GetItem(sessionId, key string) (string, bool)
	SetItem(sessionId, key, value string) error
	RemoveItem(sessionId, key string) error
	RemoveSession(sessionId string) error
}

func SetupDB(dbName string, log logger.Logger) (Repository, error) {
	var repository Repository = &SqliteStore{
		Logger: log,
	}
	err := repository.SetupConnection(dbName)
	return repository, err
}
