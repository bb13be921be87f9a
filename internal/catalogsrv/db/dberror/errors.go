package dberror

import (
	"net/http"

	"github.com/articod/articod/internal/common/apperrors"
)

var (
	ErrDatabase           apperrors.Error = apperrors.New("db error").SetStatusCode(http.StatusInternalServerError)
	ErrAlreadyExists      apperrors.Error = ErrDatabase.New("already exists").SetStatusCode(http.StatusConflict)
	ErrNotFound           apperrors.Error = ErrDatabase.New("not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidInput       apperrors.Error = ErrDatabase.New("invalid input").SetStatusCode(http.StatusBadRequest)
	ErrInvalidFamily      apperrors.Error = ErrDatabase.New("invalid family").SetStatusCode(http.StatusBadRequest)
	ErrInvalidProduct     apperrors.Error = ErrDatabase.New("invalid product").SetStatusCode(http.StatusBadRequest)
	ErrInvalidVariant     apperrors.Error = ErrDatabase.New("invalid variant").SetStatusCode(http.StatusBadRequest)
	ErrInvalidReference   apperrors.Error = ErrDatabase.New("invalid reference").SetStatusCode(http.StatusBadRequest)
	ErrCodeAlreadyExists  apperrors.Error = ErrAlreadyExists.New("generated code already exists").SetStatusCode(http.StatusConflict)
	ErrValueAlreadyExists apperrors.Error = ErrAlreadyExists.New("attribute value already exists").SetStatusCode(http.StatusConflict)
)
