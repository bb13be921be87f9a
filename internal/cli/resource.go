package cli

import (
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

// resourceFile is the YAML shape accepted by `create`: a kind naming the
// endpoint and a free-form spec that becomes the request body.
type resourceFile struct {
	Kind string                 `json:"kind"`
	Spec map[string]interface{} `json:"spec"`
}

// kindPaths maps resource kinds to their API collection paths.
var kindPaths = map[string]string{
	"family":         "/families",
	"variant":        "/variants",
	"producttype":    "/product-types",
	"product":        "/products",
	"characteristic": "/characteristics",
	"generatedentry": "/generated-entries",
}

// pathForKind resolves a kind (case-insensitive) to its collection path.
func pathForKind(kind string) (string, error) {
	path, ok := kindPaths[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return "", fmt.Errorf("unknown resource kind %q", kind)
	}
	return path, nil
}

// loadResource reads a YAML resource file and returns its API path and the
// JSON-encoded spec.
func loadResource(filename string) (string, []byte, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return "", nil, err
	}
	var res resourceFile
	if err := yaml.Unmarshal(raw, &res); err != nil {
		return "", nil, fmt.Errorf("unable to parse %s: %w", filename, err)
	}
	path, err := pathForKind(res.Kind)
	if err != nil {
		return "", nil, err
	}
	if res.Spec == nil {
		return "", nil, fmt.Errorf("%s has no spec", filename)
	}
	body, err := yaml.Marshal(res.Spec)
	if err != nil {
		return "", nil, err
	}
	jsonBody, err := yaml.YAMLToJSON(body)
	if err != nil {
		return "", nil, err
	}
	return path, jsonBody, nil
}
