package catalogmanager

import (
	"context"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/catalogsrv/normalize"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// CharacteristicRequest carries the mutable fields of a technical
// characteristic. Enum options are required and non-empty when the value
// type is enum; they are stored upper-cased in declared order.
type CharacteristicRequest struct {
	Name           string           `json:"name" validate:"required,max=128"`
	ValueType      models.ValueType `json:"valueType" validate:"required"`
	EnumOptions    []string         `json:"enumOptions,omitempty"`
	EnumMultiple   bool             `json:"enumMultiple,omitempty"`
	UniqueInItself bool             `json:"uniqueInItself,omitempty"`
	FamilyIDs      []uuid.UUID      `json:"familyIds,omitempty"`
	VariantIDs     []uuid.UUID      `json:"variantIds,omitempty"`
}

func (req *CharacteristicRequest) toModel() (*models.TechnicalCharacteristic, apperrors.Error) {
	if !req.ValueType.Valid() {
		return nil, ErrInvalidRequest.Msg("valueType must be string, number, boolean or enum")
	}
	tc := &models.TechnicalCharacteristic{
		Name:           req.Name,
		NameNorm:       normalize.ForComparison(req.Name),
		ValueType:      req.ValueType,
		EnumMultiple:   req.EnumMultiple,
		UniqueInItself: req.UniqueInItself,
		FamilyIDs:      req.FamilyIDs,
	}
	if req.ValueType == models.ValueTypeEnum {
		if len(req.EnumOptions) == 0 {
			return nil, ErrInvalidRequest.Msg("enum characteristics require at least one option")
		}
		seen := make(map[string]bool, len(req.EnumOptions))
		for _, opt := range req.EnumOptions {
			if normalize.IsBlank(opt) {
				return nil, ErrInvalidRequest.Msg("enum options must not be empty")
			}
			canonical := normalize.ForStorage(normalize.Trim(opt))
			if seen[canonical] {
				return nil, ErrInvalidRequest.Msg("duplicate enum option " + opt)
			}
			seen[canonical] = true
			tc.EnumOptions = append(tc.EnumOptions, canonical)
		}
	} else {
		if len(req.EnumOptions) > 0 {
			return nil, ErrInvalidRequest.Msg("enum options are only valid for enum characteristics")
		}
		if req.EnumMultiple {
			return nil, ErrInvalidRequest.Msg("enumMultiple is only valid for enum characteristics")
		}
	}
	for _, variantID := range req.VariantIDs {
		tc.VariantAssociations = append(tc.VariantAssociations, models.CharacteristicVariant{VariantID: variantID})
	}
	return tc, nil
}

func CreateCharacteristic(ctx context.Context, req *CharacteristicRequest) (*models.TechnicalCharacteristic, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	tc, err := req.toModel()
	if err != nil {
		return nil, err
	}
	if err := db.DB(ctx).CreateCharacteristic(ctx, tc); err != nil {
		return nil, translateDbError(err, "characteristic "+req.Name)
	}
	return GetCharacteristic(ctx, tc.CharacteristicID)
}

func GetCharacteristic(ctx context.Context, characteristicID uuid.UUID) (*models.TechnicalCharacteristic, apperrors.Error) {
	tc, err := db.DB(ctx).GetCharacteristic(ctx, characteristicID)
	if err != nil {
		return nil, translateDbError(err, "characteristic "+characteristicID.String())
	}
	return tc, nil
}

func ListCharacteristics(ctx context.Context) ([]*models.TechnicalCharacteristic, apperrors.Error) {
	tcs, err := db.DB(ctx).ListCharacteristics(ctx)
	if err != nil {
		return nil, translateDbError(err, "characteristics")
	}
	return tcs, nil
}

func UpdateCharacteristic(ctx context.Context, characteristicID uuid.UUID, req *CharacteristicRequest) (*models.TechnicalCharacteristic, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	tc, err := req.toModel()
	if err != nil {
		return nil, err
	}
	tc.CharacteristicID = characteristicID
	if err := db.DB(ctx).UpdateCharacteristic(ctx, tc); err != nil {
		return nil, translateDbError(err, "characteristic "+req.Name)
	}
	return GetCharacteristic(ctx, characteristicID)
}

func DeleteCharacteristic(ctx context.Context, characteristicID uuid.UUID) apperrors.Error {
	if err := db.DB(ctx).DeleteCharacteristic(ctx, characteristicID); err != nil {
		return translateDbError(err, "characteristic "+characteristicID.String())
	}
	return nil
}
