package config

import (
	"fmt"

	"github.com/articod/articod/internal/catalogsrv/config"
)

// CatalogDsn assembles the Postgres DSN from the server configuration.
func CatalogDsn() string {
	db := config.Config().DB
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode)
}
