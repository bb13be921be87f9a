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

// CreateProduct creates a new product. Name and code are globally unique,
// case/accent-insensitive.
func (cs *catalogStore) CreateProduct(ctx context.Context, product *models.Product) apperrors.Error {
	productID := product.ProductID
	if productID == uuid.Nil {
		productID = uuid.New()
	}

	query := `
		INSERT INTO products (product_id, name, name_norm, code, code_norm, family_id, product_type_id, info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING product_id, created_at, updated_at;
	`
	row := cs.conn().QueryRowContext(ctx, query, productID, product.Name, product.NameNorm, product.Code, product.CodeNorm, product.FamilyID, product.ProductTypeID, product.Info)
	err := row.Scan(&product.ProductID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == pgErrUniqueViolation {
				log.Ctx(ctx).Info().Str("name", product.Name).Str("code", product.Code).Msg("product already exists")
				return dberror.ErrAlreadyExists.Msg("product name or code already exists")
			}
			if pgErr.Code == pgErrForeignKeyViolation {
				if pgErr.ConstraintName == "products_family_id_fkey" {
					return dberror.ErrInvalidFamily
				}
				return dberror.ErrInvalidReference.Msg("product type does not exist")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// GetProduct retrieves a product by ID.
func (cs *catalogStore) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, apperrors.Error) {
	query := `
		SELECT product_id, name, name_norm, code, code_norm, family_id, product_type_id, info, created_at, updated_at
		FROM products
		WHERE product_id = $1;
	`
	product := &models.Product{}
	err := cs.conn().QueryRowContext(ctx, query, productID).
		Scan(&product.ProductID, &product.Name, &product.NameNorm, &product.Code, &product.CodeNorm, &product.FamilyID, &product.ProductTypeID, &product.Info, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Msg("product not found")
			return nil, dberror.ErrNotFound.Msg("product not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve product")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return product, nil
}

// ListProducts returns products, optionally restricted to a family.
func (cs *catalogStore) ListProducts(ctx context.Context, familyID uuid.UUID) ([]*models.Product, apperrors.Error) {
	query := `
		SELECT product_id, name, name_norm, code, code_norm, family_id, product_type_id, info, created_at, updated_at
		FROM products
	`
	var rows *sql.Rows
	var err error
	if familyID != uuid.Nil {
		query += ` WHERE family_id = $1 ORDER BY name_norm;`
		rows, err = cs.conn().QueryContext(ctx, query, familyID)
	} else {
		query += ` ORDER BY name_norm;`
		rows, err = cs.conn().QueryContext(ctx, query)
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list products")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ProductID, &product.Name, &product.NameNorm, &product.Code, &product.CodeNorm, &product.FamilyID, &product.ProductTypeID, &product.Info, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return products, nil
}

// UpdateProduct updates a product's name, code and info. Family and product
// type cannot be changed.
func (cs *catalogStore) UpdateProduct(ctx context.Context, product *models.Product) apperrors.Error {
	query := `
		UPDATE products
		SET name = $1, name_norm = $2, code = $3, code_norm = $4, info = $5, updated_at = now()
		WHERE product_id = $6
		RETURNING product_id;
	`
	var returnedID uuid.UUID
	err := cs.conn().QueryRowContext(ctx, query, product.Name, product.NameNorm, product.Code, product.CodeNorm, product.Info, product.ProductID).Scan(&returnedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("product not found")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgErrUniqueViolation {
			return dberror.ErrAlreadyExists.Msg("product name or code already exists")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update product")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// DeleteProduct deletes a product. Generated entries cascade in the schema.
func (cs *catalogStore) DeleteProduct(ctx context.Context, productID uuid.UUID) apperrors.Error {
	query := `
		DELETE FROM products
		WHERE product_id = $1;
	`
	result, err := cs.conn().ExecContext(ctx, query, productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete product")
		return dberror.ErrDatabase.Err(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("product not found")
	}
	return nil
}
