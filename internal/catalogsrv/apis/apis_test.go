package apis

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articod/articod/internal/catalogsrv/catcommon"
	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/db/memstore"
)

// newTestRouter wires the API over a shared in-memory store with a fixed
// editor identity, mirroring what the server middleware does in production.
func newTestRouter() *chi.Mux {
	store := memstore.New()
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := db.WithStore(req.Context(), store)
			ctx = catcommon.SetUserContext(ctx, &catcommon.UserContext{
				Subject: "tester@example.com",
				Role:    catcommon.RoleEditor,
			})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	Router(r)
	return r
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		// list endpoints return arrays; callers decode those themselves
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

func TestGenerationEndToEnd(t *testing.T) {
	router := newTestRouter()

	rec, family := doJSON(t, router, http.MethodPost, "/families", map[string]any{"name": "Vanne"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	familyID := family["familyId"].(string)
	assert.Equal(t, "VANNE", family["name"])
	assert.Equal(t, "/families/"+familyID, rec.Header().Get("Location"))

	rec, v1 := doJSON(t, router, http.MethodPost, "/variants", map[string]any{
		"familyId": familyID, "name": "Motorisée", "code": "M", "level": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec, v2 := doJSON(t, router, http.MethodPost, "/variants", map[string]any{
		"familyId": familyID, "name": "Entre-Bride", "code": "E", "level": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, pt := doJSON(t, router, http.MethodPost, "/product-types", map[string]any{"name": "Contrôle", "code": "C"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, product := doJSON(t, router, http.MethodPost, "/products", map[string]any{
		"familyId":      familyID,
		"productTypeId": pt["productTypeId"],
		"name":          "Vanne à opercule",
		"code":          "VO",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, entry := doJSON(t, router, http.MethodPost, "/generated-entries", map[string]any{
		"productId":  product["productId"],
		"variant1Id": v1["variantId"],
		"variant2Id": v2["variantId"],
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "FCVOME000001", entry["generatedCode"])
	assert.Equal(t, "tester@example.com", entry["createdBy"])

	// identical combination is rejected
	rec, _ = doJSON(t, router, http.MethodPost, "/generated-entries", map[string]any{
		"productId":  product["productId"],
		"variant1Id": v1["variantId"],
		"variant2Id": v2["variantId"],
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// list, get, delete round trip
	req := httptest.NewRequest(http.MethodGet, "/generated-entries?productId="+product["productId"].(string), nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, req)
	require.Equal(t, http.StatusOK, listRec.Code)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)

	entryID := entry["entryId"].(string)
	rec, got := doJSON(t, router, http.MethodGet, "/generated-entries/"+entryID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "FCVOME000001", got["generatedCode"])

	rec, _ = doJSON(t, router, http.MethodDelete, "/generated-entries/"+entryID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/generated-entries/"+entryID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeneratedEntryValuesFlow(t *testing.T) {
	router := newTestRouter()

	_, family := doJSON(t, router, http.MethodPost, "/families", map[string]any{"name": "Vanne"})
	familyID := family["familyId"].(string)
	_, pt := doJSON(t, router, http.MethodPost, "/product-types", map[string]any{"name": "Contrôle", "code": "C"})
	_, product := doJSON(t, router, http.MethodPost, "/products", map[string]any{
		"familyId": familyID, "productTypeId": pt["productTypeId"], "name": "Vanne à opercule", "code": "VO",
	})

	rec, tc := doJSON(t, router, http.MethodPost, "/characteristics", map[string]any{
		"name":      "Couleur",
		"valueType": "string",
		"familyIds": []string{familyID},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tcID := tc["characteristicId"].(string)

	rec, entry := doJSON(t, router, http.MethodPost, "/generated-entries", map[string]any{
		"productId": product["productId"],
		"values":    map[string]any{tcID: "rouge"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	values := entry["values"].([]any)
	require.Len(t, values, 1)
	assert.Equal(t, "ROUGE", values[0].(map[string]any)["value"])

	// update replaces the value set
	entryID := entry["entryId"].(string)
	rec, updated := doJSON(t, router, http.MethodPatch, "/generated-entries/"+entryID, map[string]any{
		"values": map[string]any{tcID: "vert"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	values = updated["values"].([]any)
	require.Len(t, values, 1)
	assert.Equal(t, "VERT", values[0].(map[string]any)["value"])

	// updating into a sibling's value set is a duplicate
	rec, _ = doJSON(t, router, http.MethodPost, "/generated-entries", map[string]any{
		"productId": product["productId"],
		"values":    map[string]any{tcID: "VERT"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestInvalidPathID(t *testing.T) {
	router := newTestRouter()
	rec, _ := doJSON(t, router, http.MethodGet, "/families/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
