package genmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/uuid"
)

func TestApplicabilityFamilyWide(t *testing.T) {
	f := newFixture(t)
	wide := f.addCharacteristic(t, "Matière", models.ValueTypeString, nil)

	got, err := applicableCharacteristics(f.ctx, f.family.FamilyID, nil)
	require.Nil(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, wide.CharacteristicID, got[0].CharacteristicID)

	// any selection removes family-wide characteristics
	got, err = applicableCharacteristics(f.ctx, f.family.FamilyID, []uuid.UUID{f.variantM.VariantID})
	require.Nil(t, err)
	assert.Empty(t, got)
}

func TestApplicabilityVariantIntersection(t *testing.T) {
	f := newFixture(t)
	scoped := f.addCharacteristic(t, "Pression", models.ValueTypeString, func(tc *models.TechnicalCharacteristic) {
		tc.VariantAssociations = []models.CharacteristicVariant{{VariantID: f.variantM.VariantID}}
	})

	// empty selection: variant-scoped characteristics never apply
	got, err := applicableCharacteristics(f.ctx, f.family.FamilyID, nil)
	require.Nil(t, err)
	assert.Empty(t, got)

	// selection intersects the association set
	got, err = applicableCharacteristics(f.ctx, f.family.FamilyID, []uuid.UUID{f.variantM.VariantID})
	require.Nil(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, scoped.CharacteristicID, got[0].CharacteristicID)

	// membership is tested against the union of selected ids: matching
	// through variant1 is enough even when variant2 differs
	got, err = applicableCharacteristics(f.ctx, f.family.FamilyID, []uuid.UUID{f.variantM.VariantID, f.variantE.VariantID})
	require.Nil(t, err)
	require.Len(t, got, 1)

	// a disjoint selection does not apply
	got, err = applicableCharacteristics(f.ctx, f.family.FamilyID, []uuid.UUID{f.variantH.VariantID})
	require.Nil(t, err)
	assert.Empty(t, got)
}

func TestApplicabilityIgnoresForeignAssociations(t *testing.T) {
	f := newFixture(t)

	otherFamily := &models.Family{Name: "POMPE", NameNorm: "pompe"}
	require.Nil(t, f.store.CreateFamily(f.ctx, otherFamily))
	foreign := &models.Variant{
		FamilyID: otherFamily.FamilyID,
		Name:     "Autre",
		Code:     "A",
		CodeNorm: "a",
		Level:    models.VariantLevelFirst,
	}
	require.Nil(t, f.store.CreateVariant(f.ctx, foreign))

	// associated only with a variant of another family: inside this family
	// the characteristic behaves as family-wide
	tc := f.addCharacteristic(t, "Pression", models.ValueTypeString, func(c *models.TechnicalCharacteristic) {
		c.VariantAssociations = []models.CharacteristicVariant{{VariantID: foreign.VariantID}}
	})

	got, err := applicableCharacteristics(f.ctx, f.family.FamilyID, nil)
	require.Nil(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tc.CharacteristicID, got[0].CharacteristicID)

	got, err = applicableCharacteristics(f.ctx, f.family.FamilyID, []uuid.UUID{f.variantM.VariantID})
	require.Nil(t, err)
	assert.Empty(t, got)
}

func TestApplicabilityDeduplicates(t *testing.T) {
	f := newFixture(t)
	f.addCharacteristic(t, "Pression", models.ValueTypeString, func(tc *models.TechnicalCharacteristic) {
		tc.VariantAssociations = []models.CharacteristicVariant{
			{VariantID: f.variantM.VariantID},
			{VariantID: f.variantH.VariantID},
		}
	})

	got, err := applicableCharacteristics(f.ctx, f.family.FamilyID, []uuid.UUID{f.variantM.VariantID, f.variantH.VariantID})
	require.Nil(t, err)
	assert.Len(t, got, 1)
}
