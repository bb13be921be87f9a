package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/dberror"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/uuid"
)

var _ db.CatalogStore = (*Store)(nil)

func seedProduct(t *testing.T, s *Store) *models.Product {
	t.Helper()
	ctx := context.Background()
	family := &models.Family{Name: "Valves", NameNorm: "valves"}
	require.Nil(t, s.CreateFamily(ctx, family))
	pt := &models.ProductType{Name: "Control", NameNorm: "control", Code: "C", CodeNorm: "c"}
	require.Nil(t, s.CreateProductType(ctx, pt))
	product := &models.Product{
		FamilyID:      family.FamilyID,
		ProductTypeID: pt.ProductTypeID,
		Name:          "Ball valve",
		NameNorm:      "ball valve",
		Code:          "BV",
		CodeNorm:      "bv",
	}
	require.Nil(t, s.CreateProduct(ctx, product))
	return product
}

func TestGeneratedCodeUniqueness(t *testing.T) {
	ctx := context.Background()
	s := New()
	product := seedProduct(t, s)

	first := &models.GeneratedEntry{ProductID: product.ProductID, GeneratedCode: "FCBV00000001", CreatedBy: "tester", UpdatedBy: "tester"}
	require.Nil(t, s.CreateGeneratedEntry(ctx, first))

	dup := &models.GeneratedEntry{ProductID: product.ProductID, GeneratedCode: "FCBV00000001", CreatedBy: "tester", UpdatedBy: "tester"}
	err := s.CreateGeneratedEntry(ctx, dup)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrCodeAlreadyExists)
}

func TestListGeneratedEntriesVariantMatching(t *testing.T) {
	ctx := context.Background()
	s := New()
	product := seedProduct(t, s)

	v1 := &models.Variant{FamilyID: product.FamilyID, Level: models.VariantLevelFirst, Name: "Open", Code: "O", CodeNorm: "o"}
	require.Nil(t, s.CreateVariant(ctx, v1))

	plain := &models.GeneratedEntry{ProductID: product.ProductID, GeneratedCode: "FCBV00000001", CreatedBy: "t", UpdatedBy: "t"}
	require.Nil(t, s.CreateGeneratedEntry(ctx, plain))
	withVariant := &models.GeneratedEntry{ProductID: product.ProductID, Variant1ID: v1.VariantID, GeneratedCode: "FCBVO0000001", CreatedBy: "t", UpdatedBy: "t"}
	require.Nil(t, s.CreateGeneratedEntry(ctx, withVariant))

	// Nil variant ids match only entries without a variant at that level.
	got, err := s.ListGeneratedEntries(ctx, models.GeneratedEntryFilter{
		ProductID:     product.ProductID,
		MatchVariants: true,
	})
	require.Nil(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, plain.EntryID, got[0].EntryID)

	got, err = s.ListGeneratedEntries(ctx, models.GeneratedEntryFilter{
		ProductID:     product.ProductID,
		MatchVariants: true,
		Variant1ID:    v1.VariantID,
	})
	require.Nil(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, withVariant.EntryID, got[0].EntryID)

	got, err = s.ListGeneratedEntries(ctx, models.GeneratedEntryFilter{
		ProductID:      product.ProductID,
		MatchVariants:  true,
		Variant1ID:     v1.VariantID,
		ExcludeEntryID: withVariant.EntryID,
	})
	require.Nil(t, err)
	assert.Empty(t, got)
}

func TestDeleteProductRemovesEntries(t *testing.T) {
	ctx := context.Background()
	s := New()
	product := seedProduct(t, s)

	entry := &models.GeneratedEntry{ProductID: product.ProductID, GeneratedCode: "FCBV00000001", CreatedBy: "t", UpdatedBy: "t"}
	require.Nil(t, s.CreateGeneratedEntry(ctx, entry))
	require.Nil(t, s.DeleteProduct(ctx, product.ProductID))

	_, err := s.GetGeneratedEntry(ctx, entry.EntryID)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestVariantExclusionsAreSymmetric(t *testing.T) {
	ctx := context.Background()
	s := New()
	product := seedProduct(t, s)

	a := &models.Variant{FamilyID: product.FamilyID, Level: models.VariantLevelFirst, Name: "A", Code: "A", CodeNorm: "a"}
	b := &models.Variant{FamilyID: product.FamilyID, Level: models.VariantLevelSecond, Name: "B", Code: "B", CodeNorm: "b"}
	require.Nil(t, s.CreateVariant(ctx, a))
	require.Nil(t, s.CreateVariant(ctx, b))

	require.Nil(t, s.SetVariantExclusions(ctx, a.VariantID, []uuid.UUID{b.VariantID}))

	got, err := s.ListVariantExclusions(ctx, b.VariantID)
	require.Nil(t, err)
	assert.Equal(t, []uuid.UUID{a.VariantID}, got)

	// Resetting to empty clears both directions.
	require.Nil(t, s.SetVariantExclusions(ctx, a.VariantID, nil))
	got, err = s.ListVariantExclusions(ctx, b.VariantID)
	require.Nil(t, err)
	assert.Empty(t, got)
}
