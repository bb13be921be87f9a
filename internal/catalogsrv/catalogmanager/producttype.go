package catalogmanager

import (
	"context"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/catalogsrv/normalize"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// ProductTypeRequest carries the mutable fields of a product type.
type ProductTypeRequest struct {
	Name string `json:"name" validate:"required,max=128"`
	Code string `json:"code" validate:"required,max=8"`
}

func CreateProductType(ctx context.Context, req *ProductTypeRequest) (*models.ProductType, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	pt := &models.ProductType{
		Name:     req.Name,
		NameNorm: normalize.ForComparison(req.Name),
		Code:     normalize.ForStorage(req.Code),
		CodeNorm: normalize.ForComparison(req.Code),
	}
	if err := db.DB(ctx).CreateProductType(ctx, pt); err != nil {
		return nil, translateDbError(err, "product type "+req.Name)
	}
	return pt, nil
}

func GetProductType(ctx context.Context, productTypeID uuid.UUID) (*models.ProductType, apperrors.Error) {
	pt, err := db.DB(ctx).GetProductType(ctx, productTypeID)
	if err != nil {
		return nil, translateDbError(err, "product type "+productTypeID.String())
	}
	return pt, nil
}

func ListProductTypes(ctx context.Context) ([]*models.ProductType, apperrors.Error) {
	pts, err := db.DB(ctx).ListProductTypes(ctx)
	if err != nil {
		return nil, translateDbError(err, "product types")
	}
	return pts, nil
}

func UpdateProductType(ctx context.Context, productTypeID uuid.UUID, req *ProductTypeRequest) (*models.ProductType, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	pt, err := db.DB(ctx).GetProductType(ctx, productTypeID)
	if err != nil {
		return nil, translateDbError(err, "product type "+productTypeID.String())
	}
	pt.Name = req.Name
	pt.NameNorm = normalize.ForComparison(req.Name)
	pt.Code = normalize.ForStorage(req.Code)
	pt.CodeNorm = normalize.ForComparison(req.Code)
	if err := db.DB(ctx).UpdateProductType(ctx, pt); err != nil {
		return nil, translateDbError(err, "product type "+req.Name)
	}
	return pt, nil
}

func DeleteProductType(ctx context.Context, productTypeID uuid.UUID) apperrors.Error {
	if err := db.DB(ctx).DeleteProductType(ctx, productTypeID); err != nil {
		return translateDbError(err, "product type "+productTypeID.String())
	}
	return nil
}
