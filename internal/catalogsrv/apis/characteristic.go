package apis

import (
	"net/http"
	"time"

	"github.com/articod/articod/internal/catalogsrv/catalogmanager"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/httpx"
	"github.com/articod/articod/internal/common/uuid"
)

type characteristicRsp struct {
	CharacteristicID uuid.UUID        `json:"characteristicId"`
	Name             string           `json:"name"`
	ValueType        models.ValueType `json:"valueType"`
	EnumOptions      []string         `json:"enumOptions,omitempty"`
	EnumMultiple     bool             `json:"enumMultiple"`
	UniqueInItself   bool             `json:"uniqueInItself"`
	FamilyIDs        []uuid.UUID      `json:"familyIds"`
	VariantIDs       []uuid.UUID      `json:"variantIds"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func toCharacteristicRsp(tc *models.TechnicalCharacteristic) *characteristicRsp {
	rsp := &characteristicRsp{
		CharacteristicID: tc.CharacteristicID,
		Name:             tc.Name,
		ValueType:        tc.ValueType,
		EnumOptions:      tc.EnumOptions,
		EnumMultiple:     tc.EnumMultiple,
		UniqueInItself:   tc.UniqueInItself,
		FamilyIDs:        tc.FamilyIDs,
		VariantIDs:       []uuid.UUID{},
		CreatedAt:        tc.CreatedAt,
		UpdatedAt:        tc.UpdatedAt,
	}
	if rsp.FamilyIDs == nil {
		rsp.FamilyIDs = []uuid.UUID{}
	}
	for _, assoc := range tc.VariantAssociations {
		rsp.VariantIDs = append(rsp.VariantIDs, assoc.VariantID)
	}
	return rsp
}

func createCharacteristic(r *http.Request) (*httpx.Response, error) {
	req := &catalogmanager.CharacteristicRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	tc, err := catalogmanager.CreateCharacteristic(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/characteristics/" + tc.CharacteristicID.String(),
		Response:   toCharacteristicRsp(tc),
	}, nil
}

func getCharacteristic(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	tc, appErr := catalogmanager.GetCharacteristic(r.Context(), id)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toCharacteristicRsp(tc)}, nil
}

func listCharacteristics(r *http.Request) (*httpx.Response, error) {
	tcs, err := catalogmanager.ListCharacteristics(r.Context())
	if err != nil {
		return nil, err
	}
	rsp := make([]*characteristicRsp, 0, len(tcs))
	for _, tc := range tcs {
		rsp = append(rsp, toCharacteristicRsp(tc))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func updateCharacteristic(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	req := &catalogmanager.CharacteristicRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	tc, appErr := catalogmanager.UpdateCharacteristic(r.Context(), id, req)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toCharacteristicRsp(tc)}, nil
}

func deleteCharacteristic(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	if appErr := catalogmanager.DeleteCharacteristic(r.Context(), id); appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}
