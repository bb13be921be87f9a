// Package apis exposes the catalog over HTTP. Handlers decode the request,
// delegate to the managers or the generation engine and shape the JSON
// response; routing tables live in routers.go.
package apis

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgtype"

	"github.com/articod/articod/internal/catalogsrv/catalogmanager"
	"github.com/articod/articod/internal/catalogsrv/db/models"
	"github.com/articod/articod/internal/common/httpx"
	"github.com/articod/articod/internal/common/uuid"
)

type familyRsp struct {
	FamilyID  uuid.UUID       `json:"familyId"`
	Name      string          `json:"name"`
	Info      json.RawMessage `json:"info,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func rawJSON(v pgtype.JSONB) json.RawMessage {
	if v.Status != pgtype.Present {
		return nil
	}
	return v.Bytes
}

func toFamilyRsp(f *models.Family) *familyRsp {
	return &familyRsp{
		FamilyID:  f.FamilyID,
		Name:      f.Name,
		Info:      rawJSON(f.Info),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, httpx.ErrInvalidRequest("invalid id in path")
	}
	return id, nil
}

func createFamily(r *http.Request) (*httpx.Response, error) {
	req := &catalogmanager.FamilyRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	family, err := catalogmanager.CreateFamily(r.Context(), req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/families/" + family.FamilyID.String(),
		Response:   toFamilyRsp(family),
	}, nil
}

func getFamily(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	family, appErr := catalogmanager.GetFamily(r.Context(), id)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toFamilyRsp(family)}, nil
}

func listFamilies(r *http.Request) (*httpx.Response, error) {
	families, err := catalogmanager.ListFamilies(r.Context())
	if err != nil {
		return nil, err
	}
	rsp := make([]*familyRsp, 0, len(families))
	for _, f := range families {
		rsp = append(rsp, toFamilyRsp(f))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func updateFamily(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	req := &catalogmanager.FamilyRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	family, appErr := catalogmanager.UpdateFamily(r.Context(), id, req)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: toFamilyRsp(family)}, nil
}

func deleteFamily(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	if appErr := catalogmanager.DeleteFamily(r.Context(), id); appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}
