// Package testutil provides testing utilities for API tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Get performs a GET against the handler and decodes the JSON body into out
// (out may be nil). The response is validated against the OpenAPI spec when
// a validator is given.
func Get(t *testing.T, handler http.Handler, path string, validator *OpenAPIValidator, out any) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := rec.Result()
	if validator != nil {
		validator.ValidateResponse(t, req, resp)
	}

	if out != nil {
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response body: %v", err)
		}
	}
	return resp
}
