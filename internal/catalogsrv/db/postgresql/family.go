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

// CreateFamily creates a new family. The caller supplies the display name
// and its normalized comparison form; uniqueness is enforced on the latter.
func (cs *catalogStore) CreateFamily(ctx context.Context, family *models.Family) apperrors.Error {
	familyID := family.FamilyID
	if familyID == uuid.Nil {
		familyID = uuid.New()
	}

	query := `
		INSERT INTO families (family_id, name, name_norm, info)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name_norm) DO NOTHING
		RETURNING family_id, created_at, updated_at;
	`
	row := cs.conn().QueryRowContext(ctx, query, familyID, family.Name, family.NameNorm, family.Info)
	err := row.Scan(&family.FamilyID, &family.CreatedAt, &family.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("name", family.Name).Msg("family already exists")
			return dberror.ErrAlreadyExists.Msg("family already exists")
		}
		log.Ctx(ctx).Error().Err(err).Str("name", family.Name).Msg("failed to insert family")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// GetFamily retrieves a family by ID.
func (cs *catalogStore) GetFamily(ctx context.Context, familyID uuid.UUID) (*models.Family, apperrors.Error) {
	query := `
		SELECT family_id, name, name_norm, info, created_at, updated_at
		FROM families
		WHERE family_id = $1;
	`
	family := &models.Family{}
	err := cs.conn().QueryRowContext(ctx, query, familyID).
		Scan(&family.FamilyID, &family.Name, &family.NameNorm, &family.Info, &family.CreatedAt, &family.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Msg("family not found")
			return nil, dberror.ErrNotFound.Msg("family not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve family")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return family, nil
}

// ListFamilies returns every family ordered by name.
func (cs *catalogStore) ListFamilies(ctx context.Context) ([]*models.Family, apperrors.Error) {
	query := `
		SELECT family_id, name, name_norm, info, created_at, updated_at
		FROM families
		ORDER BY name_norm;
	`
	rows, err := cs.conn().QueryContext(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list families")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var families []*models.Family
	for rows.Next() {
		family := &models.Family{}
		if err := rows.Scan(&family.FamilyID, &family.Name, &family.NameNorm, &family.Info, &family.CreatedAt, &family.UpdatedAt); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan family")
			return nil, dberror.ErrDatabase.Err(err)
		}
		families = append(families, family)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return families, nil
}

// UpdateFamily updates a family's name and info.
func (cs *catalogStore) UpdateFamily(ctx context.Context, family *models.Family) apperrors.Error {
	query := `
		UPDATE families
		SET name = $1, name_norm = $2, info = $3, updated_at = now()
		WHERE family_id = $4
		RETURNING family_id;
	`
	var returnedID uuid.UUID
	err := cs.conn().QueryRowContext(ctx, query, family.Name, family.NameNorm, family.Info, family.FamilyID).Scan(&returnedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("family not found")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgErrUniqueViolation {
			log.Ctx(ctx).Error().Str("name", family.Name).Msg("family name already exists")
			return dberror.ErrAlreadyExists.Msg("family name already exists")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update family")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// DeleteFamily deletes a family. Variants and characteristic associations
// cascade in the schema.
func (cs *catalogStore) DeleteFamily(ctx context.Context, familyID uuid.UUID) apperrors.Error {
	query := `
		DELETE FROM families
		WHERE family_id = $1;
	`
	result, err := cs.conn().ExecContext(ctx, query, familyID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete family")
		return dberror.ErrDatabase.Err(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve result information")
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("family not found")
	}
	return nil
}
