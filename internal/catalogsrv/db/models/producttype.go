package models

import (
	"time"

	"github.com/articod/articod/internal/common/uuid"
)

/*
   Column          |          Type           | Collation | Nullable |      Default
-------------------+-------------------------+-----------+----------+--------------------
 product_type_id   | uuid                    |           | not null | uuid_generate_v4()
 name              | character varying(128)  |           | not null |
 name_norm         | character varying(128)  |           | not null |
 code              | character varying(8)    |           | not null |
 code_norm         | character varying(8)    |           | not null |
 created_at        | timestamptz             |           | not null | now()
 updated_at        | timestamptz             |           | not null | now()

 Unique indexes on name_norm and code_norm.
*/

// ProductType model definition
type ProductType struct {
	ProductTypeID uuid.UUID `db:"product_type_id"`
	Name          string    `db:"name"`
	NameNorm      string    `db:"name_norm"`
	Code          string    `db:"code"`
	CodeNorm      string    `db:"code_norm"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
