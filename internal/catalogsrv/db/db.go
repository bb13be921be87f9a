// Package db exposes the catalog store behind a context-bound facade.
// Production requests bind a PostgreSQL-backed store with ConnCtx; tests
// bind an in-memory store with WithStore.
package db

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/articod/articod/internal/catalogsrv/db/dbmanager"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/catalogsrv/db/postgresql"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// CatalogStore is the persistence contract consumed by the managers and the
// generation engine.
type CatalogStore interface {
	// Family
	CreateFamily(ctx context.Context, family *models.Family) apperrors.Error
	GetFamily(ctx context.Context, familyID uuid.UUID) (*models.Family, apperrors.Error)
	ListFamilies(ctx context.Context) ([]*models.Family, apperrors.Error)
	UpdateFamily(ctx context.Context, family *models.Family) apperrors.Error
	DeleteFamily(ctx context.Context, familyID uuid.UUID) apperrors.Error

	// Variant
	CreateVariant(ctx context.Context, variant *models.Variant) apperrors.Error
	GetVariant(ctx context.Context, variantID uuid.UUID) (*models.Variant, apperrors.Error)
	ListVariantsByFamily(ctx context.Context, familyID uuid.UUID) ([]*models.Variant, apperrors.Error)
	UpdateVariant(ctx context.Context, variant *models.Variant) apperrors.Error
	DeleteVariant(ctx context.Context, variantID uuid.UUID) apperrors.Error
	SetVariantExclusions(ctx context.Context, variantID uuid.UUID, excludedIDs []uuid.UUID) apperrors.Error
	ListVariantExclusions(ctx context.Context, variantID uuid.UUID) ([]uuid.UUID, apperrors.Error)

	// ProductType
	CreateProductType(ctx context.Context, pt *models.ProductType) apperrors.Error
	GetProductType(ctx context.Context, productTypeID uuid.UUID) (*models.ProductType, apperrors.Error)
	ListProductTypes(ctx context.Context) ([]*models.ProductType, apperrors.Error)
	UpdateProductType(ctx context.Context, pt *models.ProductType) apperrors.Error
	DeleteProductType(ctx context.Context, productTypeID uuid.UUID) apperrors.Error

	// Product
	CreateProduct(ctx context.Context, product *models.Product) apperrors.Error
	GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, apperrors.Error)
	ListProducts(ctx context.Context, familyID uuid.UUID) ([]*models.Product, apperrors.Error)
	UpdateProduct(ctx context.Context, product *models.Product) apperrors.Error
	DeleteProduct(ctx context.Context, productID uuid.UUID) apperrors.Error

	// TechnicalCharacteristic
	CreateCharacteristic(ctx context.Context, tc *models.TechnicalCharacteristic) apperrors.Error
	GetCharacteristic(ctx context.Context, characteristicID uuid.UUID) (*models.TechnicalCharacteristic, apperrors.Error)
	ListCharacteristics(ctx context.Context) ([]*models.TechnicalCharacteristic, apperrors.Error)
	ListCharacteristicsForFamily(ctx context.Context, familyID uuid.UUID) ([]*models.TechnicalCharacteristic, apperrors.Error)
	UpdateCharacteristic(ctx context.Context, tc *models.TechnicalCharacteristic) apperrors.Error
	DeleteCharacteristic(ctx context.Context, characteristicID uuid.UUID) apperrors.Error

	// GeneratedEntry
	CreateGeneratedEntry(ctx context.Context, entry *models.GeneratedEntry) apperrors.Error
	GetGeneratedEntry(ctx context.Context, entryID uuid.UUID) (*models.GeneratedEntry, apperrors.Error)
	GetGeneratedEntryByCode(ctx context.Context, code string) (*models.GeneratedEntry, apperrors.Error)
	ListGeneratedEntries(ctx context.Context, filter models.GeneratedEntryFilter) ([]*models.GeneratedEntry, apperrors.Error)
	ListGeneratedCodesByPrefix(ctx context.Context, prefix string) ([]string, apperrors.Error)
	ReplaceAttributeValues(ctx context.Context, entryID uuid.UUID, values []models.AttributeValue, updatedBy string) apperrors.Error
	TouchGeneratedEntry(ctx context.Context, entryID uuid.UUID, updatedBy string) apperrors.Error
	DeleteGeneratedEntry(ctx context.Context, entryID uuid.UUID) apperrors.Error
	ListAttributeValuesForCharacteristic(ctx context.Context, characteristicID uuid.UUID, excludeEntryID uuid.UUID) ([]models.AttributeValueRef, apperrors.Error)

	// Close releases the store's connection, if any.
	Close(ctx context.Context)
}

var pool dbmanager.Pool

// Init creates the PostgreSQL connection pool. Called once at server startup;
// tests skip it and bind stores with WithStore.
func Init() error {
	pg, err := dbmanager.NewPostgresqlDb()
	if err != nil {
		return err
	}
	pool = pg
	return nil
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "ArticodCatalogDb"

// ConnCtx binds a pooled PostgreSQL store to the context for the duration of
// a request.
func ConnCtx(ctx context.Context) context.Context {
	if pool == nil {
		log.Ctx(ctx).Error().Msg("db pool not initialized")
		return ctx
	}
	conn, err := pool.Conn(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
		return ctx
	}
	return context.WithValue(ctx, ctxDbKey, CatalogStore(postgresql.NewCatalogDb(conn)))
}

// WithStore binds an explicit store implementation to the context.
func WithStore(ctx context.Context, store CatalogStore) context.Context {
	return context.WithValue(ctx, ctxDbKey, store)
}

// DB returns the store bound to the context, or nil.
func DB(ctx context.Context) CatalogStore {
	if store, ok := ctx.Value(ctxDbKey).(CatalogStore); ok {
		return store
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
