package postgresql

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/articod/articod/internal/catalogsrv/db/dberror"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// CreateGeneratedEntry persists the entry and its attribute values in one
// transaction. The unique index on generated_code is the final arbiter
// against concurrent allocation of the same code.
func (cs *catalogStore) CreateGeneratedEntry(ctx context.Context, entry *models.GeneratedEntry) (err apperrors.Error) {
	tx, errdb := cs.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	entryID := entry.EntryID
	if entryID == uuid.Nil {
		entryID = uuid.New()
	}

	query := `
		INSERT INTO generated_entries (entry_id, product_id, variant1_id, variant2_id, generated_code, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING entry_id, created_at, updated_at;
	`
	row := tx.QueryRowContext(ctx, query, entryID, entry.ProductID,
		nullableID(entry.Variant1ID), nullableID(entry.Variant2ID),
		entry.GeneratedCode, entry.CreatedBy, entry.UpdatedBy)
	errdb = row.Scan(&entry.EntryID, &entry.CreatedAt, &entry.UpdatedAt)
	if errdb != nil {
		if pgErr, ok := errdb.(*pgconn.PgError); ok {
			if pgErr.Code == pgErrUniqueViolation {
				log.Ctx(ctx).Info().Str("generated_code", entry.GeneratedCode).Msg("generated code already exists")
				return dberror.ErrCodeAlreadyExists
			}
			if pgErr.Code == pgErrForeignKeyViolation {
				return dberror.ErrInvalidReference.Msg("product or variant does not exist")
			}
		}
		log.Ctx(ctx).Error().Err(errdb).Str("generated_code", entry.GeneratedCode).Msg("failed to insert generated entry")
		return dberror.ErrDatabase.Err(errdb)
	}

	valQuery := `
		INSERT INTO attribute_values (entry_id, characteristic_id, value, value_norm)
		VALUES ($1, $2, $3, $4);
	`
	for i := range entry.Values {
		entry.Values[i].EntryID = entry.EntryID
		v := entry.Values[i]
		if _, errdb = tx.ExecContext(ctx, valQuery, v.EntryID, v.CharacteristicID, v.Value, v.ValueNorm); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to insert attribute value")
			return dberror.ErrDatabase.Err(errdb)
		}
	}

	if errdb = tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	return nil
}

// GetGeneratedEntry retrieves an entry by ID with its attribute values.
func (cs *catalogStore) GetGeneratedEntry(ctx context.Context, entryID uuid.UUID) (*models.GeneratedEntry, apperrors.Error) {
	query := `
		SELECT entry_id, product_id, variant1_id, variant2_id, generated_code, created_by, updated_by, created_at, updated_at
		FROM generated_entries
		WHERE entry_id = $1;
	`
	return cs.scanGeneratedEntry(ctx, cs.conn().QueryRowContext(ctx, query, entryID))
}

// GetGeneratedEntryByCode retrieves an entry by its generated code.
func (cs *catalogStore) GetGeneratedEntryByCode(ctx context.Context, code string) (*models.GeneratedEntry, apperrors.Error) {
	query := `
		SELECT entry_id, product_id, variant1_id, variant2_id, generated_code, created_by, updated_by, created_at, updated_at
		FROM generated_entries
		WHERE generated_code = $1;
	`
	return cs.scanGeneratedEntry(ctx, cs.conn().QueryRowContext(ctx, query, code))
}

func (cs *catalogStore) scanGeneratedEntry(ctx context.Context, row *sql.Row) (*models.GeneratedEntry, apperrors.Error) {
	entry := &models.GeneratedEntry{}
	var v1, v2 uuid.NullUUID
	err := row.Scan(&entry.EntryID, &entry.ProductID, &v1, &v2, &entry.GeneratedCode,
		&entry.CreatedBy, &entry.UpdatedBy, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Msg("generated entry not found")
			return nil, dberror.ErrNotFound.Msg("generated entry not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve generated entry")
		return nil, dberror.ErrDatabase.Err(err)
	}
	entry.Variant1ID = fromNullable(v1)
	entry.Variant2ID = fromNullable(v2)
	if err := cs.hydrateAttributeValues(ctx, []*models.GeneratedEntry{entry}); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListGeneratedEntries returns entries matching the filter with their
// attribute values hydrated. With MatchVariants set, a Nil variant id
// matches only rows where that level is NULL.
func (cs *catalogStore) ListGeneratedEntries(ctx context.Context, filter models.GeneratedEntryFilter) ([]*models.GeneratedEntry, apperrors.Error) {
	query := `
		SELECT entry_id, product_id, variant1_id, variant2_id, generated_code, created_by, updated_by, created_at, updated_at
		FROM generated_entries
		WHERE ($1::uuid IS NULL OR product_id = $1)
		  AND (NOT $2::boolean OR variant1_id IS NOT DISTINCT FROM $3)
		  AND (NOT $2::boolean OR variant2_id IS NOT DISTINCT FROM $4)
		  AND ($5::uuid IS NULL OR entry_id <> $5)
		ORDER BY generated_code;
	`
	rows, err := cs.conn().QueryContext(ctx, query,
		nullableID(filter.ProductID), filter.MatchVariants,
		nullableID(filter.Variant1ID), nullableID(filter.Variant2ID),
		nullableID(filter.ExcludeEntryID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list generated entries")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var entries []*models.GeneratedEntry
	for rows.Next() {
		entry := &models.GeneratedEntry{}
		var v1, v2 uuid.NullUUID
		if err := rows.Scan(&entry.EntryID, &entry.ProductID, &v1, &v2, &entry.GeneratedCode,
			&entry.CreatedBy, &entry.UpdatedBy, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		entry.Variant1ID = fromNullable(v1)
		entry.Variant2ID = fromNullable(v2)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	if err := cs.hydrateAttributeValues(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (cs *catalogStore) hydrateAttributeValues(ctx context.Context, entries []*models.GeneratedEntry) apperrors.Error {
	query := `
		SELECT entry_id, characteristic_id, value, value_norm
		FROM attribute_values
		WHERE entry_id = $1;
	`
	for _, entry := range entries {
		rows, err := cs.conn().QueryContext(ctx, query, entry.EntryID)
		if err != nil {
			return dberror.ErrDatabase.Err(err)
		}
		entry.Values = nil
		for rows.Next() {
			var v models.AttributeValue
			if err := rows.Scan(&v.EntryID, &v.CharacteristicID, &v.Value, &v.ValueNorm); err != nil {
				rows.Close()
				return dberror.ErrDatabase.Err(err)
			}
			entry.Values = append(entry.Values, v)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return dberror.ErrDatabase.Err(err)
		}
	}
	return nil
}

// ListGeneratedCodesByPrefix returns every generated code starting with prefix.
func (cs *catalogStore) ListGeneratedCodesByPrefix(ctx context.Context, prefix string) ([]string, apperrors.Error) {
	query := `
		SELECT generated_code
		FROM generated_entries
		WHERE generated_code LIKE $1 || '%';
	`
	rows, err := cs.conn().QueryContext(ctx, query, prefix)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list generated codes")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return codes, nil
}

// ReplaceAttributeValues swaps the entry's attribute values wholesale and
// stamps updated_by/updated_at, in one transaction.
func (cs *catalogStore) ReplaceAttributeValues(ctx context.Context, entryID uuid.UUID, values []models.AttributeValue, updatedBy string) (err apperrors.Error) {
	tx, errdb := cs.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var returnedID uuid.UUID
	errdb = tx.QueryRowContext(ctx, `
		UPDATE generated_entries SET updated_by = $1, updated_at = now()
		WHERE entry_id = $2 RETURNING entry_id;`, updatedBy, entryID).Scan(&returnedID)
	if errdb != nil {
		if errdb == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("generated entry not found")
		}
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to touch generated entry")
		return dberror.ErrDatabase.Err(errdb)
	}

	if _, errdb = tx.ExecContext(ctx, `DELETE FROM attribute_values WHERE entry_id = $1;`, entryID); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to delete attribute values")
		return dberror.ErrDatabase.Err(errdb)
	}

	valQuery := `
		INSERT INTO attribute_values (entry_id, characteristic_id, value, value_norm)
		VALUES ($1, $2, $3, $4);
	`
	for _, v := range values {
		if _, errdb = tx.ExecContext(ctx, valQuery, entryID, v.CharacteristicID, v.Value, v.ValueNorm); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to insert attribute value")
			return dberror.ErrDatabase.Err(errdb)
		}
	}

	if errdb = tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	return nil
}

// TouchGeneratedEntry stamps updated_by/updated_at without changing values.
func (cs *catalogStore) TouchGeneratedEntry(ctx context.Context, entryID uuid.UUID, updatedBy string) apperrors.Error {
	var returnedID uuid.UUID
	err := cs.conn().QueryRowContext(ctx, `
		UPDATE generated_entries SET updated_by = $1, updated_at = now()
		WHERE entry_id = $2 RETURNING entry_id;`, updatedBy, entryID).Scan(&returnedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("generated entry not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to touch generated entry")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// DeleteGeneratedEntry deletes an entry; attribute values cascade.
func (cs *catalogStore) DeleteGeneratedEntry(ctx context.Context, entryID uuid.UUID) apperrors.Error {
	result, err := cs.conn().ExecContext(ctx, `DELETE FROM generated_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete generated entry")
		return dberror.ErrDatabase.Err(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("generated entry not found")
	}
	return nil
}

// ListAttributeValuesForCharacteristic returns every stored value for the
// characteristic across the catalog, joined with each owning entry's
// generated code. The entry being updated, if any, is excluded.
func (cs *catalogStore) ListAttributeValuesForCharacteristic(ctx context.Context, characteristicID uuid.UUID, excludeEntryID uuid.UUID) ([]models.AttributeValueRef, apperrors.Error) {
	query := `
		SELECT av.entry_id, av.characteristic_id, av.value_norm, ge.generated_code
		FROM attribute_values av
		JOIN generated_entries ge ON ge.entry_id = av.entry_id
		WHERE av.characteristic_id = $1
		  AND ($2::uuid IS NULL OR av.entry_id <> $2);
	`
	rows, err := cs.conn().QueryContext(ctx, query, characteristicID, nullableID(excludeEntryID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list attribute values")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var refs []models.AttributeValueRef
	for rows.Next() {
		var ref models.AttributeValueRef
		if err := rows.Scan(&ref.EntryID, &ref.CharacteristicID, &ref.ValueNorm, &ref.GeneratedCode); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return refs, nil
}
