package genmanager

import (
	"context"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// checkUniqueValues enforces the catalog-global uniqueness of values for
// characteristics flagged unique-in-itself. The scan spans every product and
// variant combination; excludeEntryID exempts the entry being updated from
// colliding with its own prior value.
func checkUniqueValues(ctx context.Context, applicable []*models.TechnicalCharacteristic, candidates map[uuid.UUID]*candidateValue, excludeEntryID uuid.UUID) apperrors.Error {
	for _, tc := range applicable {
		if !tc.UniqueInItself {
			continue
		}
		candidate, ok := candidates[tc.CharacteristicID]
		if !ok {
			continue
		}
		stored, err := db.DB(ctx).ListAttributeValuesForCharacteristic(ctx, tc.CharacteristicID, excludeEntryID)
		if err != nil {
			return ErrGeneration.Err(err)
		}
		for _, ref := range stored {
			if ref.ValueNorm == candidate.Comparison {
				return ErrNonUniqueValue.Msg("value for " + tc.Name + " is already used by entry " + ref.GeneratedCode)
			}
		}
	}
	return nil
}
