package genmanager

import (
	"context"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// checkDuplicate rejects the candidate when an equivalent entry already
// exists: same product, same (variant1, variant2) pair with unselected
// levels matching only unselected levels, and equal normalized values over
// the applicable characteristics, where absent equals absent. With no
// applicable characteristics two entries are equivalent when both carry no
// values at all. excludeEntryID removes the entry being updated from the
// comparison.
func checkDuplicate(ctx context.Context, productID, variant1ID, variant2ID uuid.UUID, applicable []*models.TechnicalCharacteristic, candidates map[uuid.UUID]*candidateValue, excludeEntryID uuid.UUID) apperrors.Error {
	existing, err := db.DB(ctx).ListGeneratedEntries(ctx, models.GeneratedEntryFilter{
		ProductID:      productID,
		MatchVariants:  true,
		Variant1ID:     variant1ID,
		Variant2ID:     variant2ID,
		ExcludeEntryID: excludeEntryID,
	})
	if err != nil {
		return ErrGeneration.Err(err)
	}

	for _, entry := range existing {
		if isEquivalent(entry, applicable, candidates) {
			return ErrDuplicateCombination.Msg("an equivalent entry already exists with code " + entry.GeneratedCode)
		}
	}
	return nil
}

func isEquivalent(entry *models.GeneratedEntry, applicable []*models.TechnicalCharacteristic, candidates map[uuid.UUID]*candidateValue) bool {
	if len(applicable) == 0 {
		return len(entry.Values) == 0 && len(candidates) == 0
	}
	for _, tc := range applicable {
		stored, storedPresent := entry.ValueFor(tc.CharacteristicID)
		candidate, candidatePresent := candidates[tc.CharacteristicID]
		if storedPresent != candidatePresent {
			return false
		}
		if candidatePresent && stored != candidate.Comparison {
			return false
		}
	}
	return true
}
