package genmanager

import (
	"context"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// applicableCharacteristics computes the subset of the family's technical
// characteristics that apply to the given variant selection.
//
// A characteristic with no variant associations inside this family is
// family-wide: it applies only when no variant is selected. A characteristic
// with one or more associations in this family applies only when the
// selection is non-empty and intersects those associations. Associations
// pointing at variants of other families, or at variants that no longer
// resolve, are ignored.
func applicableCharacteristics(ctx context.Context, familyID uuid.UUID, selectedVariantIDs []uuid.UUID) ([]*models.TechnicalCharacteristic, apperrors.Error) {
	candidates, err := db.DB(ctx).ListCharacteristicsForFamily(ctx, familyID)
	if err != nil {
		return nil, ErrGeneration.Err(err)
	}

	selected := make(map[uuid.UUID]bool, len(selectedVariantIDs))
	for _, id := range selectedVariantIDs {
		if id != uuid.Nil {
			selected[id] = true
		}
	}

	var applicable []*models.TechnicalCharacteristic
	seen := make(map[uuid.UUID]bool, len(candidates))
	for _, tc := range candidates {
		if seen[tc.CharacteristicID] {
			continue
		}
		var familyVariants []uuid.UUID
		for _, assoc := range tc.VariantAssociations {
			if assoc.FamilyID == familyID {
				familyVariants = append(familyVariants, assoc.VariantID)
			}
		}
		applies := false
		if len(familyVariants) == 0 {
			applies = len(selected) == 0
		} else if len(selected) > 0 {
			for _, id := range familyVariants {
				if selected[id] {
					applies = true
					break
				}
			}
		}
		if applies {
			seen[tc.CharacteristicID] = true
			applicable = append(applicable, tc)
		}
	}
	return applicable, nil
}
