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

// CreateVariant creates a new variant. The variant code must be unique per
// family per level, case/accent-insensitive; the (family_id, level,
// code_norm) unique index enforces this.
func (cs *catalogStore) CreateVariant(ctx context.Context, variant *models.Variant) apperrors.Error {
	variantID := variant.VariantID
	if variantID == uuid.Nil {
		variantID = uuid.New()
	}

	query := `
		INSERT INTO variants (variant_id, family_id, name, code, code_norm, level)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (family_id, level, code_norm) DO NOTHING
		RETURNING variant_id, created_at, updated_at;
	`
	row := cs.conn().QueryRowContext(ctx, query, variantID, variant.FamilyID, variant.Name, variant.Code, variant.CodeNorm, variant.Level)
	err := row.Scan(&variant.VariantID, &variant.CreatedAt, &variant.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("code", variant.Code).Msg("variant code already exists for family and level")
			return dberror.ErrAlreadyExists.Msg("variant code already exists for this family and level")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgErrForeignKeyViolation {
			log.Ctx(ctx).Info().Str("family_id", variant.FamilyID.String()).Msg("family not found")
			return dberror.ErrInvalidFamily
		}
		log.Ctx(ctx).Error().Err(err).Str("code", variant.Code).Msg("failed to insert variant")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// GetVariant retrieves a variant by ID.
func (cs *catalogStore) GetVariant(ctx context.Context, variantID uuid.UUID) (*models.Variant, apperrors.Error) {
	query := `
		SELECT variant_id, family_id, name, code, code_norm, level, created_at, updated_at
		FROM variants
		WHERE variant_id = $1;
	`
	variant := &models.Variant{}
	err := cs.conn().QueryRowContext(ctx, query, variantID).
		Scan(&variant.VariantID, &variant.FamilyID, &variant.Name, &variant.Code, &variant.CodeNorm, &variant.Level, &variant.CreatedAt, &variant.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Msg("variant not found")
			return nil, dberror.ErrNotFound.Msg("variant not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve variant")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return variant, nil
}

// ListVariantsByFamily returns the variants of a family ordered by level and code.
func (cs *catalogStore) ListVariantsByFamily(ctx context.Context, familyID uuid.UUID) ([]*models.Variant, apperrors.Error) {
	query := `
		SELECT variant_id, family_id, name, code, code_norm, level, created_at, updated_at
		FROM variants
		WHERE family_id = $1
		ORDER BY level, code_norm;
	`
	rows, err := cs.conn().QueryContext(ctx, query, familyID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list variants")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var variants []*models.Variant
	for rows.Next() {
		variant := &models.Variant{}
		if err := rows.Scan(&variant.VariantID, &variant.FamilyID, &variant.Name, &variant.Code, &variant.CodeNorm, &variant.Level, &variant.CreatedAt, &variant.UpdatedAt); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan variant")
			return nil, dberror.ErrDatabase.Err(err)
		}
		variants = append(variants, variant)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return variants, nil
}

// UpdateVariant updates a variant's name and code. Family and level cannot
// be changed.
func (cs *catalogStore) UpdateVariant(ctx context.Context, variant *models.Variant) apperrors.Error {
	query := `
		UPDATE variants
		SET name = $1, code = $2, code_norm = $3, updated_at = now()
		WHERE variant_id = $4
		RETURNING variant_id;
	`
	var returnedID uuid.UUID
	err := cs.conn().QueryRowContext(ctx, query, variant.Name, variant.Code, variant.CodeNorm, variant.VariantID).Scan(&returnedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("variant not found")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgErrUniqueViolation {
			log.Ctx(ctx).Error().Str("code", variant.Code).Msg("variant code already exists for family and level")
			return dberror.ErrAlreadyExists.Msg("variant code already exists for this family and level")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update variant")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// DeleteVariant deletes a variant and its exclusion pairs.
func (cs *catalogStore) DeleteVariant(ctx context.Context, variantID uuid.UUID) apperrors.Error {
	query := `
		DELETE FROM variants
		WHERE variant_id = $1;
	`
	result, err := cs.conn().ExecContext(ctx, query, variantID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete variant")
		return dberror.ErrDatabase.Err(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve result information")
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("variant not found")
	}
	return nil
}

// SetVariantExclusions replaces the exclusion pairs of a variant. Pairs are
// bidirectional; both directions are stored.
func (cs *catalogStore) SetVariantExclusions(ctx context.Context, variantID uuid.UUID, excludedIDs []uuid.UUID) (err apperrors.Error) {
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

	_, errdb = tx.ExecContext(ctx, `DELETE FROM variant_exclusions WHERE variant_id = $1 OR excluded_variant_id = $1;`, variantID)
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to clear variant exclusions")
		return dberror.ErrDatabase.Err(errdb)
	}

	insert := `
		INSERT INTO variant_exclusions (variant_id, excluded_variant_id)
		VALUES ($1, $2), ($2, $1)
		ON CONFLICT DO NOTHING;
	`
	for _, excludedID := range excludedIDs {
		if excludedID == variantID {
			return dberror.ErrInvalidInput.Msg("variant cannot exclude itself")
		}
		if _, errdb = tx.ExecContext(ctx, insert, variantID, excludedID); errdb != nil {
			if pgErr, ok := errdb.(*pgconn.PgError); ok && pgErr.Code == pgErrForeignKeyViolation {
				return dberror.ErrInvalidVariant.Msg("excluded variant does not exist")
			}
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to insert variant exclusion")
			return dberror.ErrDatabase.Err(errdb)
		}
	}

	if errdb = tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	return nil
}

// ListVariantExclusions returns the ids of variants excluded by the given variant.
func (cs *catalogStore) ListVariantExclusions(ctx context.Context, variantID uuid.UUID) ([]uuid.UUID, apperrors.Error) {
	query := `
		SELECT excluded_variant_id
		FROM variant_exclusions
		WHERE variant_id = $1;
	`
	rows, err := cs.conn().QueryContext(ctx, query, variantID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list variant exclusions")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return ids, nil
}
