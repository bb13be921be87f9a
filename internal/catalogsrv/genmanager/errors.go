package genmanager

import (
	"net/http"

	"github.com/articod/articod/internal/common/apperrors"
)

var (
	ErrGeneration apperrors.Error = apperrors.New("generation error").SetStatusCode(http.StatusInternalServerError)

	// ErrNotFound covers missing products, variants and generated entries.
	ErrNotFound apperrors.Error = ErrGeneration.New("not found").SetStatusCode(http.StatusNotFound)

	// ErrInvalidCombination covers variant/family mismatches, wrong variant
	// levels and variants without a code.
	ErrInvalidCombination apperrors.Error = ErrGeneration.New("invalid combination").SetStatusCode(http.StatusBadRequest)

	// ErrDuplicateCombination signals that an equivalent entry (same product,
	// same variants, same normalized values) already exists.
	ErrDuplicateCombination apperrors.Error = ErrGeneration.New("duplicate combination").SetStatusCode(http.StatusBadRequest)

	// ErrNonUniqueValue signals a collision on a characteristic flagged
	// unique across the whole catalog.
	ErrNonUniqueValue apperrors.Error = ErrGeneration.New("value is not unique").SetStatusCode(http.StatusBadRequest)

	// ErrValueTooLong signals a normalized value exceeding the storage limit.
	ErrValueTooLong apperrors.Error = ErrGeneration.New("value too long").SetStatusCode(http.StatusBadRequest)

	// ErrEmptyValue signals a value key explicitly supplied as empty or null.
	ErrEmptyValue apperrors.Error = ErrGeneration.New("empty value").SetStatusCode(http.StatusBadRequest)

	// ErrInvalidValue signals a value that does not match the
	// characteristic's declared type or enum options.
	ErrInvalidValue apperrors.Error = ErrGeneration.New("invalid value").SetStatusCode(http.StatusBadRequest)

	ErrAllocationExhausted apperrors.Error = ErrGeneration.New("unable to allocate a free code").SetStatusCode(http.StatusConflict)
)
