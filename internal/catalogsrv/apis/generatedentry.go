package apis

import (
	"encoding/json"
	"net/http"

	"github.com/articod/articod/internal/catalogsrv/genmanager"
	"github.com/articod/articod/internal/common/httpx"
	"github.com/articod/articod/internal/common/uuid"
)

// createEntryReq is the wire shape of a generation request. Values stays
// raw JSON so the engine can type-check each value against its
// characteristic.
type createEntryReq struct {
	ProductID  uuid.UUID       `json:"productId"`
	Variant1ID *uuid.UUID      `json:"variant1Id,omitempty"`
	Variant2ID *uuid.UUID      `json:"variant2Id,omitempty"`
	Values     json.RawMessage `json:"values,omitempty"`
}

type updateEntryReq struct {
	Values json.RawMessage `json:"values,omitempty"`
}

func deref(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

func createGeneratedEntry(r *http.Request) (*httpx.Response, error) {
	req := &createEntryReq{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	if req.ProductID == uuid.Nil {
		return nil, httpx.ErrInvalidRequest("productId is required")
	}
	entry, appErr := genmanager.CreateEntry(r.Context(), &genmanager.CreateEntryRequest{
		ProductID:  req.ProductID,
		Variant1ID: deref(req.Variant1ID),
		Variant2ID: deref(req.Variant2ID),
		Values:     req.Values,
	})
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/generated-entries/" + entry.EntryID.String(),
		Response:   entry,
	}, nil
}

func updateGeneratedEntry(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	req := &updateEntryReq{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	entry, appErr := genmanager.UpdateEntry(r.Context(), id, req.Values)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: entry}, nil
}

func getGeneratedEntry(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	entry, appErr := genmanager.GetEntry(r.Context(), id)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: entry}, nil
}

// listGeneratedEntries accepts an optional productId query parameter.
func listGeneratedEntries(r *http.Request) (*httpx.Response, error) {
	productID := uuid.Nil
	if raw := r.URL.Query().Get("productId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, httpx.ErrInvalidRequest("invalid productId query parameter")
		}
		productID = id
	}
	entries, appErr := genmanager.ListEntries(r.Context(), productID)
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: entries}, nil
}

func deleteGeneratedEntry(r *http.Request) (*httpx.Response, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	if appErr := genmanager.DeleteEntry(r.Context(), id); appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}
