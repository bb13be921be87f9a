package models

import (
	"time"

	"github.com/articod/articod/internal/common/uuid"
)

// VariantLevel is the position a variant occupies in a generated code.
type VariantLevel int16

const (
	VariantLevelFirst  VariantLevel = 1
	VariantLevelSecond VariantLevel = 2
)

// Valid reports whether l is a known level.
func (l VariantLevel) Valid() bool {
	return l == VariantLevelFirst || l == VariantLevelSecond
}

/*
   Column     |          Type           | Collation | Nullable |      Default
--------------+-------------------------+-----------+----------+--------------------
 variant_id   | uuid                    |           | not null | uuid_generate_v4()
 family_id    | uuid                    |           | not null |
 name         | character varying(128)  |           | not null |
 code         | character varying(16)   |           | not null |
 code_norm    | character varying(16)   |           | not null |
 level        | smallint                |           | not null |
 created_at   | timestamptz             |           | not null | now()
 updated_at   | timestamptz             |           | not null | now()

 Unique index on (family_id, level, code_norm): a variant code is unique per
 family per level, case/accent-insensitive.

 variant_exclusions(variant_id, excluded_variant_id) holds bidirectional
 exclusion pairs between variants of the same family; both directions are
 persisted. The generation engine does not consume exclusions.
*/

// Variant model definition
type Variant struct {
	VariantID uuid.UUID    `db:"variant_id"`
	FamilyID  uuid.UUID    `db:"family_id"`
	Name      string       `db:"name"`
	Code      string       `db:"code"`
	CodeNorm  string       `db:"code_norm"`
	Level     VariantLevel `db:"level"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}
