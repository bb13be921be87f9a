package cli

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/json-iterator/go"
)

type client struct {
	base  string
	token string
	http  *http.Client
}

func newClient() *client {
	return &client{
		base:  serverURL,
		token: authToken,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
}

// do sends a JSON request and returns the raw response body. Non-2xx
// responses surface the server's error description.
func (c *client) do(method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	rsp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	payload, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, err
	}
	if rsp.StatusCode >= 300 {
		var errRsp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(payload, &errRsp) == nil && errRsp.Error != "" {
			return nil, fmt.Errorf("%s: %s", rsp.Status, errRsp.Error)
		}
		return nil, fmt.Errorf("%s", rsp.Status)
	}
	return payload, nil
}

// printJSON pretty-prints a JSON payload to stdout.
func printJSON(payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		fmt.Println(string(payload))
		return nil
	}
	pretty, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		fmt.Println(string(payload))
		return nil
	}
	fmt.Println(string(pretty))
	return nil
}
