// Package genmanager is the code-generation engine: it decides which
// characteristics apply to a product/variant combination, rejects duplicate
// and non-unique value sets, mints a collision-free generated code and
// persists the resulting entry.
package genmanager

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/articod/articod/internal/catalogsrv/catcommon"
	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/catalogsrv/normalize"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// CreateEntryRequest is the input of CreateEntry. Variant ids are Nil when
// no variant is selected at that level. Values is the raw JSON object keyed
// by characteristic id, or nil.
type CreateEntryRequest struct {
	ProductID  uuid.UUID
	Variant1ID uuid.UUID
	Variant2ID uuid.UUID
	Values     []byte
}

// EntryProduct is the product summary embedded in a hydrated entry.
type EntryProduct struct {
	ProductID       uuid.UUID `json:"productId"`
	Name            string    `json:"name"`
	Code            string    `json:"code"`
	FamilyID        uuid.UUID `json:"familyId"`
	FamilyName      string    `json:"familyName"`
	ProductTypeID   uuid.UUID `json:"productTypeId"`
	ProductTypeCode string    `json:"productTypeCode"`
}

// EntryVariant is a variant summary embedded in a hydrated entry.
type EntryVariant struct {
	VariantID uuid.UUID           `json:"variantId"`
	Name      string              `json:"name"`
	Code      string              `json:"code"`
	Level     models.VariantLevel `json:"level"`
}

// EntryValue is a stored attribute value with its characteristic metadata.
type EntryValue struct {
	CharacteristicID uuid.UUID        `json:"characteristicId"`
	Name             string           `json:"name"`
	ValueType        models.ValueType `json:"valueType"`
	Value            string           `json:"value"`
}

// EntryDetail is the fully hydrated generated entry returned by every
// engine operation.
type EntryDetail struct {
	EntryID       uuid.UUID     `json:"entryId"`
	GeneratedCode string        `json:"generatedCode"`
	Product       EntryProduct  `json:"product"`
	Variant1      *EntryVariant `json:"variant1,omitempty"`
	Variant2      *EntryVariant `json:"variant2,omitempty"`
	Values        []EntryValue  `json:"values"`
	CreatedBy     string        `json:"createdBy"`
	UpdatedBy     string        `json:"updatedBy"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CreateEntry mints a new generated entry for the product and variant
// selection. It resolves the applicable characteristics, validates and
// canonicalizes the supplied values, rejects duplicates and non-unique
// values, allocates the generated code and persists the entry with its
// values in one store transaction.
func CreateEntry(ctx context.Context, req *CreateEntryRequest) (*EntryDetail, apperrors.Error) {
	product, err := db.DB(ctx).GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, ErrNotFound.Msg("product " + req.ProductID.String() + " not found")
	}

	variant1, err := loadSelectedVariant(ctx, req.Variant1ID, product, models.VariantLevelFirst)
	if err != nil {
		return nil, err
	}
	variant2, err := loadSelectedVariant(ctx, req.Variant2ID, product, models.VariantLevelSecond)
	if err != nil {
		return nil, err
	}

	applicable, err := applicableCharacteristics(ctx, product.FamilyID, []uuid.UUID{req.Variant1ID, req.Variant2ID})
	if err != nil {
		return nil, err
	}

	bag, err := ParseValueBag(req.Values)
	if err != nil {
		return nil, err
	}
	candidates, err := resolveValues(applicable, bag)
	if err != nil {
		return nil, err
	}

	if err := checkDuplicate(ctx, req.ProductID, req.Variant1ID, req.Variant2ID, applicable, candidates, uuid.Nil); err != nil {
		return nil, err
	}
	if err := checkUniqueValues(ctx, applicable, candidates, uuid.Nil); err != nil {
		return nil, err
	}

	pt, err := db.DB(ctx).GetProductType(ctx, product.ProductTypeID)
	if err != nil {
		return nil, ErrGeneration.Err(err)
	}
	code, err := allocateCode(ctx, codePrefix(pt, product, variant1, variant2))
	if err != nil {
		return nil, err
	}

	actor := catcommon.GetActorIdentity(ctx)
	entry := &models.GeneratedEntry{
		ProductID:     req.ProductID,
		Variant1ID:    req.Variant1ID,
		Variant2ID:    req.Variant2ID,
		GeneratedCode: code,
		CreatedBy:     actor,
		UpdatedBy:     actor,
		Values:        attributeRows(applicable, candidates),
	}
	if err := db.DB(ctx).CreateGeneratedEntry(ctx, entry); err != nil {
		// surfaces the store's conflict status when a concurrent create won
		// the code despite the re-verification
		return nil, err
	}
	log.Ctx(ctx).Info().Str("generated_code", code).Str("product_id", req.ProductID.String()).Msg("created generated entry")

	return hydrate(ctx, entry)
}

// UpdateEntry replaces the entry's attribute values. The variant selection
// is immutable; values are re-validated against the entry's existing
// combination with the entry itself excluded from duplicate and uniqueness
// checks. A nil values payload only stamps updatedBy/updatedAt.
func UpdateEntry(ctx context.Context, entryID uuid.UUID, values []byte) (*EntryDetail, apperrors.Error) {
	entry, err := db.DB(ctx).GetGeneratedEntry(ctx, entryID)
	if err != nil {
		return nil, ErrNotFound.Msg("generated entry " + entryID.String() + " not found")
	}
	actor := catcommon.GetActorIdentity(ctx)

	if values == nil {
		if err := db.DB(ctx).TouchGeneratedEntry(ctx, entryID, actor); err != nil {
			return nil, ErrGeneration.Err(err)
		}
		return GetEntry(ctx, entryID)
	}

	product, err := db.DB(ctx).GetProduct(ctx, entry.ProductID)
	if err != nil {
		return nil, ErrGeneration.Err(err)
	}
	applicable, err := applicableCharacteristics(ctx, product.FamilyID, []uuid.UUID{entry.Variant1ID, entry.Variant2ID})
	if err != nil {
		return nil, err
	}

	bag, err := ParseValueBag(values)
	if err != nil {
		return nil, err
	}
	candidates, err := resolveValues(applicable, bag)
	if err != nil {
		return nil, err
	}

	if err := checkDuplicate(ctx, entry.ProductID, entry.Variant1ID, entry.Variant2ID, applicable, candidates, entryID); err != nil {
		return nil, err
	}
	if err := checkUniqueValues(ctx, applicable, candidates, entryID); err != nil {
		return nil, err
	}

	if err := db.DB(ctx).ReplaceAttributeValues(ctx, entryID, attributeRows(applicable, candidates), actor); err != nil {
		return nil, ErrGeneration.Err(err)
	}
	log.Ctx(ctx).Info().Str("generated_code", entry.GeneratedCode).Msg("updated generated entry")

	return GetEntry(ctx, entryID)
}

// GetEntry returns the hydrated entry.
func GetEntry(ctx context.Context, entryID uuid.UUID) (*EntryDetail, apperrors.Error) {
	entry, err := db.DB(ctx).GetGeneratedEntry(ctx, entryID)
	if err != nil {
		return nil, ErrNotFound.Msg("generated entry " + entryID.String() + " not found")
	}
	return hydrate(ctx, entry)
}

// ListEntries returns hydrated entries, optionally restricted to a product.
func ListEntries(ctx context.Context, productID uuid.UUID) ([]*EntryDetail, apperrors.Error) {
	entries, err := db.DB(ctx).ListGeneratedEntries(ctx, models.GeneratedEntryFilter{ProductID: productID})
	if err != nil {
		return nil, ErrGeneration.Err(err)
	}
	out := make([]*EntryDetail, 0, len(entries))
	for _, entry := range entries {
		detail, err := hydrate(ctx, entry)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

// DeleteEntry removes the entry; its attribute values cascade.
func DeleteEntry(ctx context.Context, entryID uuid.UUID) apperrors.Error {
	if _, err := db.DB(ctx).GetGeneratedEntry(ctx, entryID); err != nil {
		return ErrNotFound.Msg("generated entry " + entryID.String() + " not found")
	}
	if err := db.DB(ctx).DeleteGeneratedEntry(ctx, entryID); err != nil {
		return ErrGeneration.Err(err)
	}
	log.Ctx(ctx).Info().Str("entry_id", entryID.String()).Msg("deleted generated entry")
	return nil
}

// loadSelectedVariant loads and validates a selected variant: it must
// exist, belong to the product's family, sit at the expected level and
// carry a non-blank code. A Nil id means the level is unselected.
func loadSelectedVariant(ctx context.Context, variantID uuid.UUID, product *models.Product, level models.VariantLevel) (*models.Variant, apperrors.Error) {
	if variantID == uuid.Nil {
		return nil, nil
	}
	variant, err := db.DB(ctx).GetVariant(ctx, variantID)
	if err != nil {
		return nil, ErrNotFound.Msg("variant " + variantID.String() + " not found")
	}
	if variant.FamilyID != product.FamilyID {
		return nil, ErrInvalidCombination.Msg("variant " + variant.Name + " does not belong to the product's family")
	}
	if variant.Level != level {
		return nil, ErrInvalidCombination.Msg("variant " + variant.Name + " is not a level " + levelName(level) + " variant")
	}
	if normalize.IsBlank(variant.Code) {
		return nil, ErrInvalidCombination.Msg("variant " + variant.Name + " has no code")
	}
	return variant, nil
}

func levelName(level models.VariantLevel) string {
	if level == models.VariantLevelFirst {
		return "1"
	}
	return "2"
}

// attributeRows renders the candidate values as attribute rows in the
// order of the applicable characteristics.
func attributeRows(applicable []*models.TechnicalCharacteristic, candidates map[uuid.UUID]*candidateValue) []models.AttributeValue {
	var rows []models.AttributeValue
	for _, tc := range applicable {
		candidate, ok := candidates[tc.CharacteristicID]
		if !ok {
			continue
		}
		rows = append(rows, models.AttributeValue{
			CharacteristicID: tc.CharacteristicID,
			Value:            candidate.Storage,
			ValueNorm:        candidate.Comparison,
		})
	}
	return rows
}

// hydrate assembles the response detail: product with its family and
// product type, both variants and each value's characteristic metadata.
func hydrate(ctx context.Context, entry *models.GeneratedEntry) (*EntryDetail, apperrors.Error) {
	product, err := db.DB(ctx).GetProduct(ctx, entry.ProductID)
	if err != nil {
		return nil, ErrGeneration.Err(err)
	}
	family, err := db.DB(ctx).GetFamily(ctx, product.FamilyID)
	if err != nil {
		return nil, ErrGeneration.Err(err)
	}
	pt, err := db.DB(ctx).GetProductType(ctx, product.ProductTypeID)
	if err != nil {
		return nil, ErrGeneration.Err(err)
	}

	detail := &EntryDetail{
		EntryID:       entry.EntryID,
		GeneratedCode: entry.GeneratedCode,
		Product: EntryProduct{
			ProductID:       product.ProductID,
			Name:            product.Name,
			Code:            product.Code,
			FamilyID:        family.FamilyID,
			FamilyName:      family.Name,
			ProductTypeID:   pt.ProductTypeID,
			ProductTypeCode: pt.Code,
		},
		Values:    []EntryValue{},
		CreatedBy: entry.CreatedBy,
		UpdatedBy: entry.UpdatedBy,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}

	for _, variantID := range []uuid.UUID{entry.Variant1ID, entry.Variant2ID} {
		if variantID == uuid.Nil {
			continue
		}
		variant, err := db.DB(ctx).GetVariant(ctx, variantID)
		if err != nil {
			return nil, ErrGeneration.Err(err)
		}
		ev := &EntryVariant{
			VariantID: variant.VariantID,
			Name:      variant.Name,
			Code:      variant.Code,
			Level:     variant.Level,
		}
		if variant.Level == models.VariantLevelFirst {
			detail.Variant1 = ev
		} else {
			detail.Variant2 = ev
		}
	}

	for _, value := range entry.Values {
		ev := EntryValue{
			CharacteristicID: value.CharacteristicID,
			Value:            value.Value,
		}
		if tc, err := db.DB(ctx).GetCharacteristic(ctx, value.CharacteristicID); err == nil {
			ev.Name = tc.Name
			ev.ValueType = tc.ValueType
		}
		detail.Values = append(detail.Values, ev)
	}
	return detail, nil
}
