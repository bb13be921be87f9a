package apis

import (
	"net/http"
	"time"

	"github.com/articod/articod/internal/catalogsrv/catalogmanager"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/httpx"
	"github.com/articod/articod/internal/common/uuid"
)

type variantRsp struct {
	VariantID uuid.UUID           `json:"variantId"`
	FamilyID  uuid.UUID           `json:"familyId"`
	Name      string              `json:"name"`
	Code      string              `json:"code"`
	Level     models.VariantLevel `json:"level"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func toVariantRsp(v *models.Variant) *variantRsp {
	return &variantRsp{
		VariantID: v.VariantID,
		FamilyID:  v.FamilyID,
		Name:      v.Name,
		Code:      v.Code,
		Level:     v.Level,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func createVariant(r *http.Request) (*httpx.Response, error) {
	req := &catalogmanager.VariantRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	variant, err := catalogmanager.CreateVariant(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/variants/" + variant.VariantID.String(),
		Response:   toVariantRsp(variant),
	}, nil
}

func getVariant(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	variant, appErr := catalogmanager.GetVariant(r.Context(), id)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toVariantRsp(variant)}, nil
}

// listVariants requires a familyId query parameter; variants only make
// sense within their family.
func listVariants(r *http.Request) (*httpx.Response, error) {
	familyID, err := uuid.Parse(r.URL.Query().Get("familyId"))
	if err != nil {
		return nil, httpx.ErrInvalidRequest("familyId query parameter is required")
	}
	variants, appErr := catalogmanager.ListVariantsByFamily(r.Context(), familyID)
	if appErr != nil {
		return nil, appErr
	}
	rsp := make([]*variantRsp, 0, len(variants))
	for _, v := range variants {
		rsp = append(rsp, toVariantRsp(v))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func updateVariant(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	req := struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}{}
	if err := httpx.GetRequestData(r, &req); err != nil {
		return nil, err
	}
	variant, appErr := catalogmanager.UpdateVariant(r.Context(), id, req.Name, req.Code)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toVariantRsp(variant)}, nil
}

func deleteVariant(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	if appErr := catalogmanager.DeleteVariant(r.Context(), id); appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}

func setVariantExclusions(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	req := struct {
		ExcludedVariantIDs []uuid.UUID `json:"excludedVariantIds"`
	}{}
	if err := httpx.GetRequestData(r, &req); err != nil {
		return nil, err
	}
	if appErr := catalogmanager.SetVariantExclusions(r.Context(), id, req.ExcludedVariantIDs); appErr != nil {
		return nil, appErr
	}
	return listVariantExclusions(r)
}

func listVariantExclusions(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	ids, appErr := catalogmanager.ListVariantExclusions(r.Context(), id)
	if appErr != nil {
		return nil, appErr
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string][]uuid.UUID{"excludedVariantIds": ids},
	}, nil
}
