package models

import (
	"time"

	"github.com/articod/articod/internal/common/uuid"
)

// ValueType is the declared type of a technical characteristic's values.
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeNumber  ValueType = "number"
	ValueTypeBoolean ValueType = "boolean"
	ValueTypeEnum    ValueType = "enum"
)

// Valid reports whether t is a known value type.
func (t ValueType) Valid() bool {
	switch t {
	case ValueTypeString, ValueTypeNumber, ValueTypeBoolean, ValueTypeEnum:
		return true
	}
	return false
}

/*
   Column          |          Type           | Collation | Nullable |      Default
-------------------+-------------------------+-----------+----------+--------------------
 characteristic_id | uuid                    |           | not null | uuid_generate_v4()
 name              | character varying(128)  |           | not null |
 name_norm         | character varying(128)  |           | not null |
 value_type        | character varying(8)    |           | not null |
 enum_multiple     | boolean                 |           | not null | false
 unique_in_itself  | boolean                 |           | not null | false
 created_at        | timestamptz             |           | not null | now()
 updated_at        | timestamptz             |           | not null | now()

 Unique index on name_norm (names are globally unique, case/accent-insensitive).

 Satellite tables:
   characteristic_enum_options(characteristic_id, position, value) — ordered,
     values stored upper-cased; required non-empty when value_type = 'enum'.
   characteristic_families(characteristic_id, family_id)
   characteristic_variants(characteristic_id, variant_id)
*/

// CharacteristicVariant is a hydrated variant association. FamilyID is the
// owning family of the associated variant; it is Nil when the association
// points at a variant that no longer resolves to a family.
type CharacteristicVariant struct {
	VariantID uuid.UUID `db:"variant_id"`
	FamilyID  uuid.UUID `db:"family_id"`
}

// TechnicalCharacteristic model definition. FamilyIDs, VariantAssociations
// and EnumOptions are hydrated from the satellite tables.
type TechnicalCharacteristic struct {
	CharacteristicID    uuid.UUID `db:"characteristic_id"`
	Name                string    `db:"name"`
	NameNorm            string    `db:"name_norm"`
	ValueType           ValueType `db:"value_type"`
	EnumMultiple        bool      `db:"enum_multiple"`
	UniqueInItself      bool      `db:"unique_in_itself"`
	EnumOptions         []string
	FamilyIDs           []uuid.UUID
	VariantAssociations []CharacteristicVariant
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

// HasEnumOption reports whether value is one of the characteristic's stored
// options. Options are stored in canonical upper-cased form, so value must
// already be canonicalized by the caller.
func (tc *TechnicalCharacteristic) HasEnumOption(value string) bool {
	for _, opt := range tc.EnumOptions {
		if opt == value {
			return true
		}
	}
	return false
}
