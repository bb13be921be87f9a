// Package postgresql implements the catalog store over PostgreSQL with
// hand-written SQL. Uniqueness rules ride on the *_norm shadow columns and
// their unique indexes; constraint violations are mapped to dberror
// sentinels by inspecting pgconn.PgError.
package postgresql

import (
	"context"
	"database/sql"

	"github.com/articod/articod/internal/catalogsrv/db/dbmanager"
	"github.com/articod/articod/internal/common/uuid"
)

type catalogStore struct {
	c dbmanager.Conn
}

// NewCatalogDb wraps a pooled connection in a catalog store.
func NewCatalogDb(c dbmanager.Conn) *catalogStore {
	return &catalogStore{c: c}
}

func (cs *catalogStore) conn() *sql.Conn {
	return cs.c.Conn()
}

// Close returns the connection back to the pool.
func (cs *catalogStore) Close(ctx context.Context) {
	cs.c.Close(ctx)
}

// nullableID maps uuid.Nil to SQL NULL.
func nullableID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func fromNullable(id uuid.NullUUID) uuid.UUID {
	if !id.Valid {
		return uuid.Nil
	}
	return id.UUID
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
)
