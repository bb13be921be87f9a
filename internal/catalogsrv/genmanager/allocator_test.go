package genmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/memstore"
	"github.com/articod/articod/internal/catalogsrv/db/models"
)

func TestCodePrefix(t *testing.T) {
	pt := &models.ProductType{Code: "C"}
	product := &models.Product{Code: "VO"}
	v1 := &models.Variant{Code: "M"}
	v2 := &models.Variant{Code: "E"}

	assert.Equal(t, "FCVOME", codePrefix(pt, product, v1, v2))
	assert.Equal(t, "FCVOM0", codePrefix(pt, product, v1, nil))
	assert.Equal(t, "FCVO0E", codePrefix(pt, product, nil, v2))
	assert.Equal(t, "FCVO00", codePrefix(pt, product, nil, nil))

	// codes fold into the canonical storage form
	assert.Equal(t, "FCVOME", codePrefix(pt, product, &models.Variant{Code: "m"}, &models.Variant{Code: "é"}))
}

func TestIncrementOf(t *testing.T) {
	assert.Equal(t, 1, incrementOf("FCVOME000001", "FCVOME"))
	assert.Equal(t, 123456, incrementOf("FCVOME123456", "FCVOME"))
	// malformed suffixes are ignored
	assert.Equal(t, 0, incrementOf("FCVOME1", "FCVOME"))
	assert.Equal(t, 0, incrementOf("FCVOMEabcdef", "FCVOME"))
	assert.Equal(t, 0, incrementOf("FCVOME0000001", "FCVOME"))
	assert.Equal(t, 0, incrementOf("FCVOME000000", "FCVOME"))
}

func TestAllocateCodeFillsLowestGap(t *testing.T) {
	store := memstore.New()
	ctx := db.WithStore(context.Background(), store)

	family := &models.Family{Name: "VANNE", NameNorm: "vanne"}
	require.Nil(t, store.CreateFamily(ctx, family))
	pt := &models.ProductType{Name: "CONTROLE", NameNorm: "controle", Code: "C", CodeNorm: "c"}
	require.Nil(t, store.CreateProductType(ctx, pt))
	product := &models.Product{FamilyID: family.FamilyID, ProductTypeID: pt.ProductTypeID, Name: "VO", NameNorm: "vo", Code: "VO", CodeNorm: "vo"}
	require.Nil(t, store.CreateProduct(ctx, product))

	for _, code := range []string{"FCVO00000001", "FCVO00000003", "FCVO00garbage"} {
		require.Nil(t, store.CreateGeneratedEntry(ctx, &models.GeneratedEntry{
			ProductID:     product.ProductID,
			GeneratedCode: code,
			CreatedBy:     "t",
			UpdatedBy:     "t",
		}))
	}

	code, err := allocateCode(ctx, "FCVO00")
	require.Nil(t, err)
	assert.Equal(t, "FCVO00000002", code)
}

func TestAllocateCodeEmptyPrefixStartsAtOne(t *testing.T) {
	ctx := db.WithStore(context.Background(), memstore.New())
	code, err := allocateCode(ctx, "FCVO00")
	require.Nil(t, err)
	assert.Equal(t, "FCVO00000001", code)
}
