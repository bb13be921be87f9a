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

// CreateCharacteristic creates a technical characteristic together with its
// enum options and family/variant associations in one transaction.
func (cs *catalogStore) CreateCharacteristic(ctx context.Context, tc *models.TechnicalCharacteristic) (err apperrors.Error) {
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

	characteristicID := tc.CharacteristicID
	if characteristicID == uuid.Nil {
		characteristicID = uuid.New()
	}

	query := `
		INSERT INTO technical_characteristics (characteristic_id, name, name_norm, value_type, enum_multiple, unique_in_itself)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name_norm) DO NOTHING
		RETURNING characteristic_id, created_at, updated_at;
	`
	row := tx.QueryRowContext(ctx, query, characteristicID, tc.Name, tc.NameNorm, tc.ValueType, tc.EnumMultiple, tc.UniqueInItself)
	errdb = row.Scan(&tc.CharacteristicID, &tc.CreatedAt, &tc.UpdatedAt)
	if errdb != nil {
		if errdb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("name", tc.Name).Msg("characteristic already exists")
			return dberror.ErrAlreadyExists.Msg("characteristic name already exists")
		}
		log.Ctx(ctx).Error().Err(errdb).Str("name", tc.Name).Msg("failed to insert characteristic")
		return dberror.ErrDatabase.Err(errdb)
	}

	if err = cs.insertCharacteristicSatellites(ctx, tx, tc); err != nil {
		return err
	}

	if errdb = tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	return nil
}

func (cs *catalogStore) insertCharacteristicSatellites(ctx context.Context, tx *sql.Tx, tc *models.TechnicalCharacteristic) apperrors.Error {
	optQuery := `
		INSERT INTO characteristic_enum_options (characteristic_id, position, value)
		VALUES ($1, $2, $3);
	`
	for i, opt := range tc.EnumOptions {
		if _, err := tx.ExecContext(ctx, optQuery, tc.CharacteristicID, i, opt); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to insert enum option")
			return dberror.ErrDatabase.Err(err)
		}
	}

	famQuery := `
		INSERT INTO characteristic_families (characteristic_id, family_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`
	for _, familyID := range tc.FamilyIDs {
		if _, err := tx.ExecContext(ctx, famQuery, tc.CharacteristicID, familyID); err != nil {
			if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgErrForeignKeyViolation {
				return dberror.ErrInvalidFamily
			}
			log.Ctx(ctx).Error().Err(err).Msg("failed to insert family association")
			return dberror.ErrDatabase.Err(err)
		}
	}

	varQuery := `
		INSERT INTO characteristic_variants (characteristic_id, variant_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`
	for _, assoc := range tc.VariantAssociations {
		if _, err := tx.ExecContext(ctx, varQuery, tc.CharacteristicID, assoc.VariantID); err != nil {
			if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgErrForeignKeyViolation {
				return dberror.ErrInvalidVariant.Msg("associated variant does not exist")
			}
			log.Ctx(ctx).Error().Err(err).Msg("failed to insert variant association")
			return dberror.ErrDatabase.Err(err)
		}
	}
	return nil
}

// GetCharacteristic retrieves a characteristic by ID with its enum options
// and associations hydrated.
func (cs *catalogStore) GetCharacteristic(ctx context.Context, characteristicID uuid.UUID) (*models.TechnicalCharacteristic, apperrors.Error) {
	query := `
		SELECT characteristic_id, name, name_norm, value_type, enum_multiple, unique_in_itself, created_at, updated_at
		FROM technical_characteristics
		WHERE characteristic_id = $1;
	`
	tc := &models.TechnicalCharacteristic{}
	err := cs.conn().QueryRowContext(ctx, query, characteristicID).
		Scan(&tc.CharacteristicID, &tc.Name, &tc.NameNorm, &tc.ValueType, &tc.EnumMultiple, &tc.UniqueInItself, &tc.CreatedAt, &tc.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Msg("characteristic not found")
			return nil, dberror.ErrNotFound.Msg("characteristic not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve characteristic")
		return nil, dberror.ErrDatabase.Err(err)
	}
	if err := cs.hydrateCharacteristics(ctx, []*models.TechnicalCharacteristic{tc}); err != nil {
		return nil, err
	}
	return tc, nil
}

// ListCharacteristics returns every characteristic, hydrated.
func (cs *catalogStore) ListCharacteristics(ctx context.Context) ([]*models.TechnicalCharacteristic, apperrors.Error) {
	query := `
		SELECT characteristic_id, name, name_norm, value_type, enum_multiple, unique_in_itself, created_at, updated_at
		FROM technical_characteristics
		ORDER BY name_norm;
	`
	return cs.queryCharacteristics(ctx, query)
}

// ListCharacteristicsForFamily returns the characteristics associated with
// the family through characteristic_families, hydrated with their enum
// options and variant associations.
func (cs *catalogStore) ListCharacteristicsForFamily(ctx context.Context, familyID uuid.UUID) ([]*models.TechnicalCharacteristic, apperrors.Error) {
	query := `
		SELECT tc.characteristic_id, tc.name, tc.name_norm, tc.value_type, tc.enum_multiple, tc.unique_in_itself, tc.created_at, tc.updated_at
		FROM technical_characteristics tc
		JOIN characteristic_families cf ON cf.characteristic_id = tc.characteristic_id
		WHERE cf.family_id = $1
		ORDER BY tc.name_norm;
	`
	return cs.queryCharacteristics(ctx, query, familyID)
}

func (cs *catalogStore) queryCharacteristics(ctx context.Context, query string, args ...any) ([]*models.TechnicalCharacteristic, apperrors.Error) {
	rows, err := cs.conn().QueryContext(ctx, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list characteristics")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var tcs []*models.TechnicalCharacteristic
	for rows.Next() {
		tc := &models.TechnicalCharacteristic{}
		if err := rows.Scan(&tc.CharacteristicID, &tc.Name, &tc.NameNorm, &tc.ValueType, &tc.EnumMultiple, &tc.UniqueInItself, &tc.CreatedAt, &tc.UpdatedAt); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		tcs = append(tcs, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	if err := cs.hydrateCharacteristics(ctx, tcs); err != nil {
		return nil, err
	}
	return tcs, nil
}

// hydrateCharacteristics loads enum options, family ids and variant
// associations for each characteristic. Variant associations carry the
// owning family of the variant through an outer join, so the applicability
// resolver can discard associations whose variant no longer resolves.
func (cs *catalogStore) hydrateCharacteristics(ctx context.Context, tcs []*models.TechnicalCharacteristic) apperrors.Error {
	for _, tc := range tcs {
		optRows, err := cs.conn().QueryContext(ctx, `
			SELECT value FROM characteristic_enum_options
			WHERE characteristic_id = $1 ORDER BY position;`, tc.CharacteristicID)
		if err != nil {
			return dberror.ErrDatabase.Err(err)
		}
		tc.EnumOptions = nil
		for optRows.Next() {
			var v string
			if err := optRows.Scan(&v); err != nil {
				optRows.Close()
				return dberror.ErrDatabase.Err(err)
			}
			tc.EnumOptions = append(tc.EnumOptions, v)
		}
		optRows.Close()
		if err := optRows.Err(); err != nil {
			return dberror.ErrDatabase.Err(err)
		}

		famRows, err := cs.conn().QueryContext(ctx, `
			SELECT family_id FROM characteristic_families
			WHERE characteristic_id = $1;`, tc.CharacteristicID)
		if err != nil {
			return dberror.ErrDatabase.Err(err)
		}
		tc.FamilyIDs = nil
		for famRows.Next() {
			var id uuid.UUID
			if err := famRows.Scan(&id); err != nil {
				famRows.Close()
				return dberror.ErrDatabase.Err(err)
			}
			tc.FamilyIDs = append(tc.FamilyIDs, id)
		}
		famRows.Close()
		if err := famRows.Err(); err != nil {
			return dberror.ErrDatabase.Err(err)
		}

		varRows, err := cs.conn().QueryContext(ctx, `
			SELECT cv.variant_id, v.family_id
			FROM characteristic_variants cv
			LEFT JOIN variants v ON v.variant_id = cv.variant_id
			WHERE cv.characteristic_id = $1;`, tc.CharacteristicID)
		if err != nil {
			return dberror.ErrDatabase.Err(err)
		}
		tc.VariantAssociations = nil
		for varRows.Next() {
			var assoc models.CharacteristicVariant
			var familyID uuid.NullUUID
			if err := varRows.Scan(&assoc.VariantID, &familyID); err != nil {
				varRows.Close()
				return dberror.ErrDatabase.Err(err)
			}
			assoc.FamilyID = fromNullable(familyID)
			tc.VariantAssociations = append(tc.VariantAssociations, assoc)
		}
		varRows.Close()
		if err := varRows.Err(); err != nil {
			return dberror.ErrDatabase.Err(err)
		}
	}
	return nil
}

// UpdateCharacteristic updates a characteristic and replaces its enum
// options and associations in one transaction.
func (cs *catalogStore) UpdateCharacteristic(ctx context.Context, tc *models.TechnicalCharacteristic) (err apperrors.Error) {
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

	query := `
		UPDATE technical_characteristics
		SET name = $1, name_norm = $2, value_type = $3, enum_multiple = $4, unique_in_itself = $5, updated_at = now()
		WHERE characteristic_id = $6
		RETURNING characteristic_id;
	`
	var returnedID uuid.UUID
	errdb = tx.QueryRowContext(ctx, query, tc.Name, tc.NameNorm, tc.ValueType, tc.EnumMultiple, tc.UniqueInItself, tc.CharacteristicID).Scan(&returnedID)
	if errdb != nil {
		if errdb == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("characteristic not found")
		}
		if pgErr, ok := errdb.(*pgconn.PgError); ok && pgErr.Code == pgErrUniqueViolation {
			return dberror.ErrAlreadyExists.Msg("characteristic name already exists")
		}
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to update characteristic")
		return dberror.ErrDatabase.Err(errdb)
	}

	for _, table := range []string{"characteristic_enum_options", "characteristic_families", "characteristic_variants"} {
		if _, errdb = tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE characteristic_id = $1;`, tc.CharacteristicID); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Str("table", table).Msg("failed to clear characteristic satellites")
			return dberror.ErrDatabase.Err(errdb)
		}
	}
	if err = cs.insertCharacteristicSatellites(ctx, tx, tc); err != nil {
		return err
	}

	if errdb = tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	return nil
}

// DeleteCharacteristic deletes a characteristic and its satellites.
func (cs *catalogStore) DeleteCharacteristic(ctx context.Context, characteristicID uuid.UUID) apperrors.Error {
	query := `
		DELETE FROM technical_characteristics
		WHERE characteristic_id = $1;
	`
	result, err := cs.conn().ExecContext(ctx, query, characteristicID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete characteristic")
		return dberror.ErrDatabase.Err(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("characteristic not found")
	}
	return nil
}
