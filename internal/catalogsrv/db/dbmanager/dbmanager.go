// Package dbmanager provides the PostgreSQL connection pool used by the
// catalog store.
package dbmanager

import (
	"context"
	"database/sql"
)

type Pool interface {
	// Conn returns a new connection to the database.
	Conn(ctx context.Context) (Conn, error)
	// Stats returns the number of connection requests and returns.
	Stats() (requests, returns uint64)
}

type Conn interface {
	// Conn returns the underlying connection.
	Conn() *sql.Conn
	// Close returns the connection back to the pool.
	Close(ctx context.Context)
}
