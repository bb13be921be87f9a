// Package catalogmanager implements the management operations around the
// generation engine: families, variants, technical characteristics,
// products and product types, with case- and accent-insensitive uniqueness
// enforced through the normalized shadow columns.
package catalogmanager

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgtype"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/dberror"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/catalogsrv/normalize"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// FamilyRequest carries the mutable fields of a family.
type FamilyRequest struct {
	Name string          `json:"name" validate:"required,max=128"`
	Info json.RawMessage `json:"info,omitempty"`
}

// jsonbFrom wraps a raw JSON payload for a nullable jsonb column.
func jsonbFrom(raw json.RawMessage) pgtype.JSONB {
	if len(raw) == 0 {
		return pgtype.JSONB{Status: pgtype.Null}
	}
	return pgtype.JSONB{Bytes: raw, Status: pgtype.Present}
}

// CreateFamily persists a new family. The name is stored upper-cased with
// its comparison form alongside.
func CreateFamily(ctx context.Context, req *FamilyRequest) (*models.Family, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	family := &models.Family{
		Name:     normalize.ForStorage(req.Name),
		NameNorm: normalize.ForComparison(req.Name),
		Info:     jsonbFrom(req.Info),
	}
	if err := db.DB(ctx).CreateFamily(ctx, family); err != nil {
		return nil, translateDbError(err, "family "+req.Name)
	}
	return family, nil
}

func GetFamily(ctx context.Context, familyID uuid.UUID) (*models.Family, apperrors.Error) {
	family, err := db.DB(ctx).GetFamily(ctx, familyID)
	if err != nil {
		return nil, translateDbError(err, "family "+familyID.String())
	}
	return family, nil
}

func ListFamilies(ctx context.Context) ([]*models.Family, apperrors.Error) {
	families, err := db.DB(ctx).ListFamilies(ctx)
	if err != nil {
		return nil, translateDbError(err, "families")
	}
	return families, nil
}

func UpdateFamily(ctx context.Context, familyID uuid.UUID, req *FamilyRequest) (*models.Family, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	family, err := db.DB(ctx).GetFamily(ctx, familyID)
	if err != nil {
		return nil, translateDbError(err, "family "+familyID.String())
	}
	family.Name = normalize.ForStorage(req.Name)
	family.NameNorm = normalize.ForComparison(req.Name)
	if len(req.Info) > 0 {
		family.Info = jsonbFrom(req.Info)
	}
	if err := db.DB(ctx).UpdateFamily(ctx, family); err != nil {
		return nil, translateDbError(err, "family "+req.Name)
	}
	return family, nil
}

func DeleteFamily(ctx context.Context, familyID uuid.UUID) apperrors.Error {
	if err := db.DB(ctx).DeleteFamily(ctx, familyID); err != nil {
		return translateDbError(err, "family "+familyID.String())
	}
	return nil
}

// translateDbError maps store errors onto the manager's taxonomy, keeping
// the subject in the message.
func translateDbError(err apperrors.Error, subject string) apperrors.Error {
	switch {
	case err.Is(dberror.ErrNotFound):
		return ErrNotFound.Msg(subject + " not found")
	case err.Is(dberror.ErrAlreadyExists):
		return ErrAlreadyExists.Msg(subject + ": " + err.Error())
	case err.Is(dberror.ErrInvalidInput), err.Is(dberror.ErrInvalidFamily),
		err.Is(dberror.ErrInvalidVariant), err.Is(dberror.ErrInvalidReference):
		return ErrInvalidRequest.Msg(subject + ": " + err.Error())
	}
	return ErrCatalog.Err(err)
}
