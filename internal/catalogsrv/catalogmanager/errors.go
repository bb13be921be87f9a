package catalogmanager

import (
	"net/http"

	"github.com/articod/articod/internal/common/apperrors"
)

var (
	ErrCatalog apperrors.Error = apperrors.New("catalog error").SetStatusCode(http.StatusInternalServerError)

	ErrInvalidRequest apperrors.Error = ErrCatalog.New("invalid request").SetStatusCode(http.StatusBadRequest)
	ErrNotFound       apperrors.Error = ErrCatalog.New("not found").SetStatusCode(http.StatusNotFound)
	ErrAlreadyExists  apperrors.Error = ErrCatalog.New("already exists").SetStatusCode(http.StatusConflict)
	ErrInReference    apperrors.Error = ErrCatalog.New("referenced by other objects").SetStatusCode(http.StatusConflict)
)
