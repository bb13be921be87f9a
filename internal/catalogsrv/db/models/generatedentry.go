package models

import (
	"time"

	"github.com/articod/articod/internal/common/uuid"
)

/*
 generated_entries
   Column          |          Type           | Collation | Nullable |      Default
-------------------+-------------------------+-----------+----------+--------------------
 entry_id          | uuid                    |           | not null | uuid_generate_v4()
 product_id        | uuid                    |           | not null |
 variant1_id       | uuid                    |           |          |
 variant2_id       | uuid                    |           |          |
 generated_code    | character varying(64)   |           | not null |
 created_by        | character varying(256)  |           | not null |
 updated_by        | character varying(256)  |           | not null |
 created_at        | timestamptz             |           | not null | now()
 updated_at        | timestamptz             |           | not null | now()

 Unique index on generated_code. variant1_id/variant2_id are null when no
 variant is selected at that level.

 attribute_values
   Column          |          Type           | Collation | Nullable |      Default
-------------------+-------------------------+-----------+----------+--------------------
 entry_id          | uuid                    |           | not null |
 characteristic_id | uuid                    |           | not null |
 value             | character varying(30)   |           | not null |
 value_norm        | character varying(30)   |           | not null |

 Primary key (entry_id, characteristic_id); entry_id cascades on delete.
 Only characteristics that received a non-empty value have a row.
*/

// AttributeValue is one stored characteristic value of a generated entry.
// Value holds the canonical storage form; ValueNorm the comparison form.
type AttributeValue struct {
	EntryID          uuid.UUID `db:"entry_id"`
	CharacteristicID uuid.UUID `db:"characteristic_id"`
	Value            string    `db:"value"`
	ValueNorm        string    `db:"value_norm"`
}

// AttributeValueRef is an attribute value joined with the generated code of
// its owning entry, used to report uniqueness conflicts.
type AttributeValueRef struct {
	EntryID          uuid.UUID `db:"entry_id"`
	CharacteristicID uuid.UUID `db:"characteristic_id"`
	ValueNorm        string    `db:"value_norm"`
	GeneratedCode    string    `db:"generated_code"`
}

// GeneratedEntryFilter narrows ListGeneratedEntries. A Nil ProductID matches
// every product. MatchVariants selects rows with exactly the given
// (variant1, variant2) pair, where Nil means "level not selected" and
// matches only NULL. ExcludeEntryID removes the entry being updated from the
// result set.
type GeneratedEntryFilter struct {
	ProductID      uuid.UUID
	MatchVariants  bool
	Variant1ID     uuid.UUID
	Variant2ID     uuid.UUID
	ExcludeEntryID uuid.UUID
}

// GeneratedEntry model definition. Variant1ID/Variant2ID are uuid.Nil when
// no variant is selected at that level. Values is hydrated from
// attribute_values.
type GeneratedEntry struct {
	EntryID       uuid.UUID `db:"entry_id"`
	ProductID     uuid.UUID `db:"product_id"`
	Variant1ID    uuid.UUID `db:"variant1_id"`
	Variant2ID    uuid.UUID `db:"variant2_id"`
	GeneratedCode string    `db:"generated_code"`
	CreatedBy     string    `db:"created_by"`
	UpdatedBy     string    `db:"updated_by"`
	Values        []AttributeValue
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ValueFor returns the stored comparison-form value for the characteristic,
// or "" and false when the entry holds no value for it.
func (e *GeneratedEntry) ValueFor(characteristicID uuid.UUID) (string, bool) {
	for _, v := range e.Values {
		if v.CharacteristicID == characteristicID {
			return v.ValueNorm, true
		}
	}
	return "", false
}
