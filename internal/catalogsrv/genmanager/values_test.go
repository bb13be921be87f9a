package genmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/uuid"
)

func TestParseValueBag(t *testing.T) {
	id := uuid.New()
	bag, err := ParseValueBag([]byte(`{"` + id.String() + `":"rouge"}`))
	require.Nil(t, err)
	assert.Equal(t, 1, bag.Len())
	assert.True(t, bag.Has(id))
	assert.False(t, bag.Has(uuid.New()))

	bag, err = ParseValueBag(nil)
	require.Nil(t, err)
	assert.Equal(t, 0, bag.Len())

	bag, err = ParseValueBag([]byte(`null`))
	require.Nil(t, err)
	assert.Equal(t, 0, bag.Len())

	_, err = ParseValueBag([]byte(`["rouge"]`))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseValueBag([]byte(`{"not-a-uuid":"rouge"}`))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRenderStringValue(t *testing.T) {
	tc := &models.TechnicalCharacteristic{Name: "Couleur", ValueType: models.ValueTypeString}

	got, err := renderValue(tc, gjson.Parse(`"  Émaillé  "`))
	require.Nil(t, err)
	assert.Equal(t, "EMAILLE", got)

	_, err = renderValue(tc, gjson.Parse(`42`))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = renderValue(tc, gjson.Parse(`null`))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestRenderNumberValue(t *testing.T) {
	tc := &models.TechnicalCharacteristic{Name: "Diamètre", ValueType: models.ValueTypeNumber}

	got, err := renderValue(tc, gjson.Parse(`42`))
	require.Nil(t, err)
	assert.Equal(t, "42", got)

	got, err = renderValue(tc, gjson.Parse(`3.14`))
	require.Nil(t, err)
	assert.Equal(t, "3.14", got)

	got, err = renderValue(tc, gjson.Parse(`0`))
	require.Nil(t, err)
	assert.Equal(t, "0", got)

	_, err = renderValue(tc, gjson.Parse(`"42"`))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRenderBooleanValue(t *testing.T) {
	tc := &models.TechnicalCharacteristic{Name: "Motorisé", ValueType: models.ValueTypeBoolean}

	got, err := renderValue(tc, gjson.Parse(`true`))
	require.Nil(t, err)
	assert.Equal(t, "TRUE", got)

	got, err = renderValue(tc, gjson.Parse(`false`))
	require.Nil(t, err)
	assert.Equal(t, "FALSE", got)

	_, err = renderValue(tc, gjson.Parse(`"true"`))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRenderEnumValue(t *testing.T) {
	tc := &models.TechnicalCharacteristic{
		Name:        "Finition",
		ValueType:   models.ValueTypeEnum,
		EnumOptions: []string{"BRUT", "PEINT", "EMAILLE"},
	}

	got, err := renderValue(tc, gjson.Parse(`"peint"`))
	require.Nil(t, err)
	assert.Equal(t, "PEINT", got)

	// accents fold onto stored options
	got, err = renderValue(tc, gjson.Parse(`"émaillé"`))
	require.Nil(t, err)
	assert.Equal(t, "EMAILLE", got)

	_, err = renderValue(tc, gjson.Parse(`"chrome"`))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRenderMultiEnumValue(t *testing.T) {
	tc := &models.TechnicalCharacteristic{
		Name:         "Options",
		ValueType:    models.ValueTypeEnum,
		EnumMultiple: true,
		EnumOptions:  []string{"A", "B", "C"},
	}

	// selections render in declared option order regardless of input order
	got, err := renderValue(tc, gjson.Parse(`["c","a"]`))
	require.Nil(t, err)
	assert.Equal(t, "A,C", got)

	got, err = renderValue(tc, gjson.Parse(`["a","c"]`))
	require.Nil(t, err)
	assert.Equal(t, "A,C", got)

	// duplicates collapse
	got, err = renderValue(tc, gjson.Parse(`["b","B"]`))
	require.Nil(t, err)
	assert.Equal(t, "B", got)

	// a bare string counts as a single selection
	got, err = renderValue(tc, gjson.Parse(`"b"`))
	require.Nil(t, err)
	assert.Equal(t, "B", got)

	_, err = renderValue(tc, gjson.Parse(`[]`))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = renderValue(tc, gjson.Parse(`["a","z"]`))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestResolveValuesIgnoresNonApplicableKeys(t *testing.T) {
	applicable := []*models.TechnicalCharacteristic{
		{CharacteristicID: uuid.New(), Name: "Couleur", ValueType: models.ValueTypeString},
	}
	strayID := uuid.New()
	bag, err := ParseValueBag([]byte(`{"` + strayID.String() + `":"rouge"}`))
	require.Nil(t, err)

	out, err := resolveValues(applicable, bag)
	require.Nil(t, err)
	assert.Empty(t, out)
}
