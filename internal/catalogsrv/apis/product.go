package apis

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/articod/articod/internal/catalogsrv/catalogmanager"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/httpx"
	"github.com/articod/articod/internal/common/uuid"
)

type productRsp struct {
	ProductID     uuid.UUID       `json:"productId"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	FamilyID      uuid.UUID       `json:"familyId"`
	ProductTypeID uuid.UUID       `json:"productTypeId"`
	Info          json.RawMessage `json:"info,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toProductRsp(p *models.Product) *productRsp {
	return &productRsp{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Code:          p.Code,
		FamilyID:      p.FamilyID,
		ProductTypeID: p.ProductTypeID,
		Info:          rawJSON(p.Info),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func createProduct(r *http.Request) (*httpx.Response, error) {
	req := &catalogmanager.ProductRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	product, err := catalogmanager.CreateProduct(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/products/" + product.ProductID.String(),
		Response:   toProductRsp(product),
	}, nil
}

func getProduct(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	product, appErr := catalogmanager.GetProduct(r.Context(), id)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toProductRsp(product)}, nil
}

// listProducts accepts an optional familyId query parameter.
func listProducts(r *http.Request) (*httpx.Response, error) {
	familyID := uuid.Nil
	if raw := r.URL.Query().Get("familyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, httpx.ErrInvalidRequest("invalid familyId query parameter")
		}
		familyID = id
	}
	products, appErr := catalogmanager.ListProducts(r.Context(), familyID)
	if appErr != nil {
		return nil, appErr
	}
	rsp := make([]*productRsp, 0, len(products))
	for _, p := range products {
		rsp = append(rsp, toProductRsp(p))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func updateProduct(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	req := &catalogmanager.ProductRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	product, appErr := catalogmanager.UpdateProduct(r.Context(), id, req)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toProductRsp(product)}, nil
}

func deleteProduct(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	if appErr := catalogmanager.DeleteProduct(r.Context(), id); appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}
