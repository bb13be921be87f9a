package apis

import (
	"net/http"
	"time"

	"github.com/articod/articod/internal/catalogsrv/catalogmanager"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/httpx"
	"github.com/articod/articod/internal/common/uuid"
)

type productTypeRsp struct {
	ProductTypeID uuid.UUID `json:"productTypeId"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toProductTypeRsp(pt *models.ProductType) *productTypeRsp {
	return &productTypeRsp{
		ProductTypeID: pt.ProductTypeID,
		Name:          pt.Name,
		Code:          pt.Code,
		CreatedAt:     pt.CreatedAt,
		UpdatedAt:     pt.UpdatedAt,
	}
}

func createProductType(r *http.Request) (*httpx.Response, error) {
	req := &catalogmanager.ProductTypeRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	pt, err := catalogmanager.CreateProductType(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/product-types/" + pt.ProductTypeID.String(),
		Response:   toProductTypeRsp(pt),
	}, nil
}

func getProductType(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	pt, appErr := catalogmanager.GetProductType(r.Context(), id)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toProductTypeRsp(pt)}, nil
}

func listProductTypes(r *http.Request) (*httpx.Response, error) {
	pts, err := catalogmanager.ListProductTypes(r.Context())
	if err != nil {
		return nil, err
	}
	rsp := make([]*productTypeRsp, 0, len(pts))
	for _, pt := range pts {
		rsp = append(rsp, toProductTypeRsp(pt))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func updateProductType(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	req := &catalogmanager.ProductTypeRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	pt, appErr := catalogmanager.UpdateProductType(r.Context(), id, req)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toProductTypeRsp(pt)}, nil
}

func deleteProductType(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	if appErr := catalogmanager.DeleteProductType(r.Context(), id); appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}
