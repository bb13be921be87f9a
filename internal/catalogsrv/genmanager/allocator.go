package genmanager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avast/retry-go/v4"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/dberror"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/catalogsrv/normalize"
	"github.com/articod/articod/internal/common/apperrors"
)

const (
	codeSuffixDigits = 6
	maxAllocAttempts = 10
)

// codePrefix builds the deterministic prefix of a generated code:
// "F" + productType code + product code + variant1 code + variant2 code,
// with "0" standing in for an unselected variant level.
func codePrefix(pt *models.ProductType, product *models.Product, variant1, variant2 *models.Variant) string {
	var b strings.Builder
	b.WriteString("F")
	b.WriteString(normalize.ForStorage(pt.Code))
	b.WriteString(normalize.ForStorage(product.Code))
	if variant1 != nil {
		b.WriteString(normalize.ForStorage(variant1.Code))
	} else {
		b.WriteString("0")
	}
	if variant2 != nil {
		b.WriteString(normalize.ForStorage(variant2.Code))
	} else {
		b.WriteString("0")
	}
	return b.String()
}

// allocateCode finds the lowest unused 6-digit increment under the prefix
// and re-verifies the full code against the store before accepting it. A
// concurrent allocation showing up between the scan and the verification is
// absorbed by marking the code taken and retrying.
func allocateCode(ctx context.Context, prefix string) (string, apperrors.Error) {
	taken, err := takenIncrements(ctx, prefix)
	if err != nil {
		return "", err
	}

	code, retryErr := retry.DoWithData(func() (string, error) {
		candidate := fmt.Sprintf("%s%0*d", prefix, codeSuffixDigits, lowestUnused(taken))
		_, lookupErr := db.DB(ctx).GetGeneratedEntryByCode(ctx, candidate)
		if lookupErr == nil {
			// someone got there first; mark it and pick the next one
			taken[incrementOf(candidate, prefix)] = true
			return "", ErrAllocationExhausted.Msg("code " + candidate + " is already taken")
		}
		if !errors.Is(lookupErr, dberror.ErrNotFound) {
			return "", retry.Unrecoverable(ErrGeneration.Err(lookupErr))
		}
		return candidate, nil
	}, retry.Attempts(maxAllocAttempts), retry.LastErrorOnly(true), retry.Context(ctx))
	if retryErr != nil {
		var appErr apperrors.Error
		if errors.As(retryErr, &appErr) {
			return "", appErr
		}
		return "", ErrAllocationExhausted.Err(retryErr)
	}
	return code, nil
}

// takenIncrements collects the numeric suffixes already used under the
// prefix. Codes whose remainder is not exactly six digits are ignored.
func takenIncrements(ctx context.Context, prefix string) (map[int]bool, apperrors.Error) {
	codes, err := db.DB(ctx).ListGeneratedCodesByPrefix(ctx, prefix)
	if err != nil {
		return nil, ErrGeneration.Err(err)
	}
	taken := make(map[int]bool, len(codes))
	for _, code := range codes {
		if n := incrementOf(code, prefix); n > 0 {
			taken[n] = true
		}
	}
	return taken, nil
}

// incrementOf parses the 6-digit suffix of code under prefix, or 0 when the
// code is malformed.
func incrementOf(code, prefix string) int {
	suffix := strings.TrimPrefix(code, prefix)
	if len(suffix) != codeSuffixDigits {
		return 0
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func lowestUnused(taken map[int]bool) int {
	for n := 1; ; n++ {
		if !taken[n] {
			return n
		}
	}
}
