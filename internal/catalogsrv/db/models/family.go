package models

import (
	"time"

	"github.com/jackc/pgtype"

	"github.com/articod/articod/internal/common/uuid"
)

/*
   Column     |          Type           | Collation | Nullable |      Default
--------------+-------------------------+-----------+----------+--------------------
 family_id    | uuid                    |           | not null | uuid_generate_v4()
 name         | character varying(128)  |           | not null |
 name_norm    | character varying(128)  |           | not null |
 info         | jsonb                   |           |          |
 created_at   | timestamptz             |           | not null | now()
 updated_at   | timestamptz             |           | not null | now()

 Unique index on name_norm (case/accent-insensitive name uniqueness).
*/

// Family model definition
type Family struct {
	FamilyID  uuid.UUID    `db:"family_id"`
	Name      string       `db:"name"`
	NameNorm  string       `db:"name_norm"`
	Info      pgtype.JSONB `db:"info"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}
