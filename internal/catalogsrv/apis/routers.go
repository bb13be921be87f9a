package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/articod/articod/internal/common/httpx"
)

var familyHandlers = []httpx.ResponseHandlerParam{
	{Method: http.MethodPost, Path: "/families", Handler: createFamily},
	{Method: http.MethodGet, Path: "/families", Handler: listFamilies},
	{Method: http.MethodGet, Path: "/families/{id}", Handler: getFamily},
	{Method: http.MethodPut, Path: "/families/{id}", Handler: updateFamily},
	{Method: http.MethodDelete, Path: "/families/{id}", Handler: deleteFamily},
}

var variantHandlers = []httpx.ResponseHandlerParam{
	{Method: http.MethodPost, Path: "/variants", Handler: createVariant},
	{Method: http.MethodGet, Path: "/variants", Handler: listVariants},
	{Method: http.MethodGet, Path: "/variants/{id}", Handler: getVariant},
	{Method: http.MethodPut, Path: "/variants/{id}", Handler: updateVariant},
	{Method: http.MethodDelete, Path: "/variants/{id}", Handler: deleteVariant},
	{Method: http.MethodPut, Path: "/variants/{id}/exclusions", Handler: setVariantExclusions},
	{Method: http.MethodGet, Path: "/variants/{id}/exclusions", Handler: listVariantExclusions},
}

var productTypeHandlers = []httpx.ResponseHandlerParam{
	{Method: http.MethodPost, Path: "/product-types", Handler: createProductType},
	{Method: http.MethodGet, Path: "/product-types", Handler: listProductTypes},
	{Method: http.MethodGet, Path: "/product-types/{id}", Handler: getProductType},
	{Method: http.MethodPut, Path: "/product-types/{id}", Handler: updateProductType},
	{Method: http.MethodDelete, Path: "/product-types/{id}", Handler: deleteProductType},
}

var productHandlers = []httpx.ResponseHandlerParam{
	{Method: http.MethodPost, Path: "/products", Handler: createProduct},
	{Method: http.MethodGet, Path: "/products", Handler: listProducts},
	{Method: http.MethodGet, Path: "/products/{id}", Handler: getProduct},
	{Method: http.MethodPut, Path: "/products/{id}", Handler: updateProduct},
	{Method: http.MethodDelete, Path: "/products/{id}", Handler: deleteProduct},
}

var characteristicHandlers = []httpx.ResponseHandlerParam{
	{Method: http.MethodPost, Path: "/characteristics", Handler: createCharacteristic},
	{Method: http.MethodGet, Path: "/characteristics", Handler: listCharacteristics},
	{Method: http.MethodGet, Path: "/characteristics/{id}", Handler: getCharacteristic},
	{Method: http.MethodPut, Path: "/characteristics/{id}", Handler: updateCharacteristic},
	{Method: http.MethodDelete, Path: "/characteristics/{id}", Handler: deleteCharacteristic},
}

var generatedEntryHandlers = []httpx.ResponseHandlerParam{
	{Method: http.MethodPost, Path: "/generated-entries", Handler: createGeneratedEntry},
	{Method: http.MethodGet, Path: "/generated-entries", Handler: listGeneratedEntries},
	{Method: http.MethodGet, Path: "/generated-entries/{id}", Handler: getGeneratedEntry},
	{Method: http.MethodPatch, Path: "/generated-entries/{id}", Handler: updateGeneratedEntry},
	{Method: http.MethodDelete, Path: "/generated-entries/{id}", Handler: deleteGeneratedEntry},
}

// Router mounts every catalog endpoint on r.
func Router(r chi.Router) {
	for _, handlers := range [][]httpx.ResponseHandlerParam{
		familyHandlers,
		variantHandlers,
		productTypeHandlers,
		productHandlers,
		characteristicHandlers,
		generatedEntryHandlers,
	} {
		for _, h := range handlers {
			r.Method(h.Method, h.Path, httpx.WrapHttpRsp(h.Handler))
		}
	}
}
