package sqlite

import (
	"database/sql"

	"reminder-ai/internal/chat/repository"
	pkgLog "reminder-ai/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a SQLite-backed conversation repository over the shared handle.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}
