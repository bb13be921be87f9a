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

// CreateProductType creates a new product type. Name and code are unique.
func (cs *catalogStore) CreateProductType(ctx context.Context, pt *models.ProductType) apperrors.Error {
	productTypeID := pt.ProductTypeID
	if productTypeID == uuid.Nil {
		productTypeID = uuid.New()
	}

	query := `
		INSERT INTO product_types (product_type_id, name, name_norm, code, code_norm)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING product_type_id, created_at, updated_at;
	`
	row := cs.conn().QueryRowContext(ctx, query, productTypeID, pt.Name, pt.NameNorm, pt.Code, pt.CodeNorm)
	err := row.Scan(&pt.ProductTypeID, &pt.CreatedAt, &pt.UpdatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgErrUniqueViolation {
			log.Ctx(ctx).Info().Str("name", pt.Name).Str("code", pt.Code).Msg("product type already exists")
			return dberror.ErrAlreadyExists.Msg("product type name or code already exists")
		}
		log.Ctx(ctx).Error().Err(err).Str("name", pt.Name).Msg("failed to insert product type")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// GetProductType retrieves a product type by ID.
func (cs *catalogStore) GetProductType(ctx context.Context, productTypeID uuid.UUID) (*models.ProductType, apperrors.Error) {
	query := `
		SELECT product_type_id, name, name_norm, code, code_norm, created_at, updated_at
		FROM product_types
		WHERE product_type_id = $1;
	`
	pt := &models.ProductType{}
	err := cs.conn().QueryRowContext(ctx, query, productTypeID).
		Scan(&pt.ProductTypeID, &pt.Name, &pt.NameNorm, &pt.Code, &pt.CodeNorm, &pt.CreatedAt, &pt.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Msg("product type not found")
			return nil, dberror.ErrNotFound.Msg("product type not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve product type")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return pt, nil
}

// ListProductTypes returns every product type ordered by name.
func (cs *catalogStore) ListProductTypes(ctx context.Context) ([]*models.ProductType, apperrors.Error) {
	query := `
		SELECT product_type_id, name, name_norm, code, code_norm, created_at, updated_at
		FROM product_types
		ORDER BY name_norm;
	`
	rows, err := cs.conn().QueryContext(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list product types")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var pts []*models.ProductType
	for rows.Next() {
		pt := &models.ProductType{}
		if err := rows.Scan(&pt.ProductTypeID, &pt.Name, &pt.NameNorm, &pt.Code, &pt.CodeNorm, &pt.CreatedAt, &pt.UpdatedAt); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		pts = append(pts, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return pts, nil
}

// UpdateProductType updates a product type's name and code.
func (cs *catalogStore) UpdateProductType(ctx context.Context, pt *models.ProductType) apperrors.Error {
	query := `
		UPDATE product_types
		SET name = $1, name_norm = $2, code = $3, code_norm = $4, updated_at = now()
		WHERE product_type_id = $5
		RETURNING product_type_id;
	`
	var returnedID uuid.UUID
	err := cs.conn().QueryRowContext(ctx, query, pt.Name, pt.NameNorm, pt.Code, pt.CodeNorm, pt.ProductTypeID).Scan(&returnedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("product type not found")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgErrUniqueViolation {
			return dberror.ErrAlreadyExists.Msg("product type name or code already exists")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update product type")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// DeleteProductType deletes a product type.
func (cs *catalogStore) DeleteProductType(ctx context.Context, productTypeID uuid.UUID) apperrors.Error {
	query := `
		DELETE FROM product_types
		WHERE product_type_id = $1;
	`
	result, err := cs.conn().ExecContext(ctx, query, productTypeID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgErrForeignKeyViolation {
			return dberror.ErrInvalidInput.Msg("product type is referenced by products")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete product type")
		return dberror.ErrDatabase.Err(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("product type not found")
	}
	return nil
}
