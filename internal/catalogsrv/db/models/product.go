package models

import (
	"time"

	"github.com/jackc/pgtype"

	"github.com/articod/articod/internal/common/uuid"
)

/*
   Column          |          Type           | Collation | Nullable |      Default
-------------------+-------------------------+-----------+----------+--------------------
 product_id        | uuid                    |           | not null | uuid_generate_v4()
 name              | character varying(128)  |           | not null |
 name_norm         | character varying(128)  |           | not null |
 code              | character varying(16)   |           | not null |
 code_norm         | character varying(16)   |           | not null |
 family_id         | uuid                    |           | not null |
 product_type_id   | uuid                    |           | not null |
 info              | jsonb                   |           |          |
 created_at        | timestamptz             |           | not null | now()
 updated_at        | timestamptz             |           | not null | now()

 Unique indexes on name_norm and code_norm (global, case/accent-insensitive).
*/

// Product model definition
type Product struct {
	ProductID     uuid.UUID    `db:"product_id"`
	Name          string       `db:"name"`
	NameNorm      string       `db:"name_norm"`
	Code          string       `db:"code"`
	CodeNorm      string       `db:"code_norm"`
	FamilyID      uuid.UUID    `db:"family_id"`
	ProductTypeID uuid.UUID    `db:"product_type_id"`
	Info          pgtype.JSONB `db:"info"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
}
