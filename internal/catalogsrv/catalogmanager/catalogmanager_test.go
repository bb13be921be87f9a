package catalogmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/memstore"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/uuid"
)

func testContext() context.Context {
	return db.WithStore(context.Background(), memstore.New())
}

func TestCreateFamilyNormalizesName(t *testing.T) {
	ctx := testContext()

	family, err := CreateFamily(ctx, &FamilyRequest{Name: "Vanne Motorisée"})
	require.Nil(t, err)
	assert.Equal(t, "VANNE MOTORISEE", family.Name)
	assert.Equal(t, "vanne motorisee", family.NameNorm)

	// a case/accent-variant of the same name is a conflict
	_, err = CreateFamily(ctx, &FamilyRequest{Name: "vanne motorisee"})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateFamilyValidation(t *testing.T) {
	ctx := testContext()
	_, err := CreateFamily(ctx, &FamilyRequest{Name: ""})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestVariantCodeUniquePerFamilyPerLevel(t *testing.T) {
	ctx := testContext()
	family, err := CreateFamily(ctx, &FamilyRequest{Name: "Vanne"})
	require.Nil(t, err)

	_, err = CreateVariant(ctx, &VariantRequest{FamilyID: family.FamilyID, Name: "Manuelle", Code: "H", Level: models.VariantLevelFirst})
	require.Nil(t, err)

	// same code at the same level collides case-insensitively
	_, err = CreateVariant(ctx, &VariantRequest{FamilyID: family.FamilyID, Name: "Hydraulique", Code: "h", Level: models.VariantLevelFirst})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// the other level is a separate namespace
	_, err = CreateVariant(ctx, &VariantRequest{FamilyID: family.FamilyID, Name: "Haute pression", Code: "H", Level: models.VariantLevelSecond})
	require.Nil(t, err)
}

func TestCreateVariantUnknownFamily(t *testing.T) {
	ctx := testContext()
	_, err := CreateVariant(ctx, &VariantRequest{FamilyID: uuid.New(), Name: "Manuelle", Code: "H", Level: models.VariantLevelFirst})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestVariantExclusionsStayWithinFamily(t *testing.T) {
	ctx := testContext()
	family, err := CreateFamily(ctx, &FamilyRequest{Name: "Vanne"})
	require.Nil(t, err)
	other, err := CreateFamily(ctx, &FamilyRequest{Name: "Pompe"})
	require.Nil(t, err)

	a, err := CreateVariant(ctx, &VariantRequest{FamilyID: family.FamilyID, Name: "A", Code: "A", Level: models.VariantLevelFirst})
	require.Nil(t, err)
	b, err := CreateVariant(ctx, &VariantRequest{FamilyID: family.FamilyID, Name: "B", Code: "B", Level: models.VariantLevelSecond})
	require.Nil(t, err)
	foreign, err := CreateVariant(ctx, &VariantRequest{FamilyID: other.FamilyID, Name: "C", Code: "C", Level: models.VariantLevelFirst})
	require.Nil(t, err)

	require.Nil(t, SetVariantExclusions(ctx, a.VariantID, []uuid.UUID{b.VariantID}))
	got, err := ListVariantExclusions(ctx, b.VariantID)
	require.Nil(t, err)
	assert.Equal(t, []uuid.UUID{a.VariantID}, got)

	err = SetVariantExclusions(ctx, a.VariantID, []uuid.UUID{foreign.VariantID})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	err = SetVariantExclusions(ctx, a.VariantID, []uuid.UUID{a.VariantID})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCreateCharacteristicEnumValidation(t *testing.T) {
	ctx := testContext()

	// enum without options
	_, err := CreateCharacteristic(ctx, &CharacteristicRequest{Name: "Finition", ValueType: models.ValueTypeEnum})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	// options are canonicalized and deduplicated case-insensitively
	_, err = CreateCharacteristic(ctx, &CharacteristicRequest{
		Name:        "Finition",
		ValueType:   models.ValueTypeEnum,
		EnumOptions: []string{"peint", "PEINT"},
	})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	tc, err := CreateCharacteristic(ctx, &CharacteristicRequest{
		Name:        "Finition",
		ValueType:   models.ValueTypeEnum,
		EnumOptions: []string{"brut", "Émaillé"},
	})
	require.Nil(t, err)
	assert.Equal(t, []string{"BRUT", "EMAILLE"}, tc.EnumOptions)

	// options on a non-enum type are rejected
	_, err = CreateCharacteristic(ctx, &CharacteristicRequest{
		Name:        "Couleur",
		ValueType:   models.ValueTypeString,
		EnumOptions: []string{"x"},
	})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCharacteristicNameGloballyUnique(t *testing.T) {
	ctx := testContext()
	_, err := CreateCharacteristic(ctx, &CharacteristicRequest{Name: "Numéro de série", ValueType: models.ValueTypeString})
	require.Nil(t, err)

	_, err = CreateCharacteristic(ctx, &CharacteristicRequest{Name: "numero de serie", ValueType: models.ValueTypeNumber})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestProductCRUD(t *testing.T) {
	ctx := testContext()
	family, err := CreateFamily(ctx, &FamilyRequest{Name: "Vanne"})
	require.Nil(t, err)
	pt, err := CreateProductType(ctx, &ProductTypeRequest{Name: "Contrôle", Code: "c"})
	require.Nil(t, err)
	assert.Equal(t, "C", pt.Code)

	product, err := CreateProduct(ctx, &ProductRequest{
		FamilyID:      family.FamilyID,
		ProductTypeID: pt.ProductTypeID,
		Name:          "Vanne à opercule",
		Code:          "vo",
	})
	require.Nil(t, err)
	assert.Equal(t, "VO", product.Code)

	// product type deletion is blocked while referenced
	err = DeleteProductType(ctx, pt.ProductTypeID)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	require.Nil(t, DeleteProduct(ctx, product.ProductID))
	require.Nil(t, DeleteProductType(ctx, pt.ProductTypeID))
}
