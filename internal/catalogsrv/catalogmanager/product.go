package catalogmanager

import (
	"context"
	"encoding/json"

	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/catalogsrv/normalize"
	"github.com/articod/articod/internal/common/apperrors"
	"github.com/articod/articod/internal/common/uuid"
)

// ProductRequest carries the mutable fields of a product.
type ProductRequest struct {
	FamilyID      uuid.UUID       `json:"familyId" validate:"required"`
	ProductTypeID uuid.UUID       `json:"productTypeId" validate:"required"`
	Name          string          `json:"name" validate:"required,max=128"`
	Code          string          `json:"code" validate:"required,max=16"`
	Info          json.RawMessage `json:"info,omitempty"`
}

func CreateProduct(ctx context.Context, req *ProductRequest) (*models.Product, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	product := &models.Product{
		FamilyID:      req.FamilyID,
		ProductTypeID: req.ProductTypeID,
		Name:          req.Name,
		NameNorm:      normalize.ForComparison(req.Name),
		Code:          normalize.ForStorage(req.Code),
		CodeNorm:      normalize.ForComparison(req.Code),
		Info:          jsonbFrom(req.Info),
	}
	if err := db.DB(ctx).CreateProduct(ctx, product); err != nil {
		return nil, translateDbError(err, "product "+req.Name)
	}
	return product, nil
}

func GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, apperrors.Error) {
	product, err := db.DB(ctx).GetProduct(ctx, productID)
	if err != nil {
		return nil, translateDbError(err, "product "+productID.String())
	}
	return product, nil
}

// ListProducts returns all products, or the family's products when familyID
// is not Nil.
func ListProducts(ctx context.Context, familyID uuid.UUID) ([]*models.Product, apperrors.Error) {
	products, err := db.DB(ctx).ListProducts(ctx, familyID)
	if err != nil {
		return nil, translateDbError(err, "products")
	}
	return products, nil
}

// UpdateProduct changes a product's name, code or info. Family and product
// type are fixed at creation; moving a product would orphan its generated
// codes.
func UpdateProduct(ctx context.Context, productID uuid.UUID, req *ProductRequest) (*models.Product, apperrors.Error) {
	if normalize.IsBlank(req.Name) || normalize.IsBlank(req.Code) {
		return nil, ErrInvalidRequest.Msg("name and code are required")
	}
	product, err := db.DB(ctx).GetProduct(ctx, productID)
	if err != nil {
		return nil, translateDbError(err, "product "+productID.String())
	}
	product.Name = req.Name
	product.NameNorm = normalize.ForComparison(req.Name)
	product.Code = normalize.ForStorage(req.Code)
	product.CodeNorm = normalize.ForComparison(req.Code)
	if len(req.Info) > 0 {
		product.Info = jsonbFrom(req.Info)
	}
	if err := db.DB(ctx).UpdateProduct(ctx, product); err != nil {
		return nil, translateDbError(err, "product "+req.Name)
	}
	return product, nil
}

func DeleteProduct(ctx context.Context, productID uuid.UUID) apperrors.Error {
	if err := db.DB(ctx).DeleteProduct(ctx, productID); err != nil {
		return translateDbError(err, "product "+productID.String())
	}
	return nil
}
