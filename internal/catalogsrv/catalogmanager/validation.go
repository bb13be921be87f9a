package catalogmanager

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/articod/articod/internal/common/apperrors"
)

var validate = validator.New()

// validateRequest runs struct validation and folds field errors into one
// invalid-request error.
func validateRequest(req any) apperrors.Error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ErrInvalidRequest.Err(err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+" failed "+fe.Tag()+" validation")
	}
	return ErrInvalidRequest.Msg(strings.Join(msgs, "; "))
}
