package catalogmanager

import (
	"context"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/catalogsrv/normalize"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// VariantRequest carries the mutable fields of a variant. The code is what
// ends up inside generated codes, so it is short and stored upper-cased.
type VariantRequest struct {
	FamilyID uuid.UUID           `json:"familyId" validate:"required"`
	Name     string              `json:"name" validate:"required,max=128"`
	Code     string              `json:"code" validate:"required,max=16"`
	Level    models.VariantLevel `json:"level" validate:"required"`
}

func CreateVariant(ctx context.Context, req *VariantRequest) (*models.Variant, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if !req.Level.Valid() {
		return nil, ErrInvalidRequest.Msg("variant level must be 1 or 2")
	}
	variant := &models.Variant{
		FamilyID: req.FamilyID,
		Name:     req.Name,
		Code:     normalize.ForStorage(req.Code),
		CodeNorm: normalize.ForComparison(req.Code),
		Level:    req.Level,
	}
	if err := db.DB(ctx).CreateVariant(ctx, variant); err != nil {
		return nil, translateDbError(err, "variant "+req.Name)
	}
	return variant, nil
}

func GetVariant(ctx context.Context, variantID uuid.UUID) (*models.Variant, apperrors.Error) {
	variant, err := db.DB(ctx).GetVariant(ctx, variantID)
	if err != nil {
		return nil, translateDbError(err, "variant "+variantID.String())
	}
	return variant, nil
}

func ListVariantsByFamily(ctx context.Context, familyID uuid.UUID) ([]*models.Variant, apperrors.Error) {
	variants, err := db.DB(ctx).ListVariantsByFamily(ctx, familyID)
	if err != nil {
		return nil, translateDbError(err, "variants")
	}
	return variants, nil
}

// UpdateVariant renames a variant or changes its code. The family and level
// are fixed at creation.
func UpdateVariant(ctx context.Context, variantID uuid.UUID, name, code string) (*models.Variant, apperrors.Error) {
	if normalize.IsBlank(name) || normalize.IsBlank(code) {
		return nil, ErrInvalidRequest.Msg("name and code are required")
	}
	variant, err := db.DB(ctx).GetVariant(ctx, variantID)
	if err != nil {
		return nil, translateDbError(err, "variant "+variantID.String())
	}
	variant.Name = name
	variant.Code = normalize.ForStorage(code)
	variant.CodeNorm = normalize.ForComparison(code)
	if err := db.DB(ctx).UpdateVariant(ctx, variant); err != nil {
		return nil, translateDbError(err, "variant "+name)
	}
	return variant, nil
}

func DeleteVariant(ctx context.Context, variantID uuid.UUID) apperrors.Error {
	if err := db.DB(ctx).DeleteVariant(ctx, variantID); err != nil {
		return translateDbError(err, "variant "+variantID.String())
	}
	return nil
}

// SetVariantExclusions replaces the exclusion set of a variant. Exclusions
// are bidirectional and restricted to variants of the same family.
func SetVariantExclusions(ctx context.Context, variantID uuid.UUID, excludedIDs []uuid.UUID) apperrors.Error {
	variant, err := db.DB(ctx).GetVariant(ctx, variantID)
	if err != nil {
		return translateDbError(err, "variant "+variantID.String())
	}
	for _, excludedID := range excludedIDs {
		if excludedID == variantID {
			return ErrInvalidRequest.Msg("a variant cannot exclude itself")
		}
		excluded, err := db.DB(ctx).GetVariant(ctx, excludedID)
		if err != nil {
			return translateDbError(err, "variant "+excludedID.String())
		}
		if excluded.FamilyID != variant.FamilyID {
			return ErrInvalidRequest.Msg("exclusions must stay within one family")
		}
	}
	if err := db.DB(ctx).SetVariantExclusions(ctx, variantID, excludedIDs); err != nil {
		return translateDbError(err, "variant "+variantID.String())
	}
	return nil
}

func ListVariantExclusions(ctx context.Context, variantID uuid.UUID) ([]uuid.UUID, apperrors.Error) {
	if _, err := db.DB(ctx).GetVariant(ctx, variantID); err != nil {
		return nil, translateDbError(err, "variant "+variantID.String())
	}
	ids, err := db.DB(ctx).ListVariantExclusions(ctx, variantID)
	if err != nil {
		return nil, translateDbError(err, "variant "+variantID.String())
	}
	return ids, nil
}
