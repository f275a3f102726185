// Package test contains helpers for tests.
package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/finsmart/backend/internal/controllers"
	"github.com/finsmart/backend/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TmpFile returns the path to a unique file to be used in tests.
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Request makes an HTTP request against a fully configured router and
// returns the response.
//
// A string body is sent as is, everything else is marshalled to JSON.
func Request(co controllers.Controller, t *testing.T, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var buf *bytes.Buffer

	switch b := body.(type) {
	case nil:
		buf = bytes.NewBuffer(nil)
	case string:
		buf = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled", "%v", err)
		}
		buf = bytes.NewBuffer(data)
	}

	r, err := router.Config()
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", "%v", err)
	}
	router.AttachRoutes(co, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, buf)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// AssertHTTPStatus checks the HTTP status of a response.
func AssertHTTPStatus(t *testing.T, expected int, r *httptest.ResponseRecorder) {
	assert.Equal(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target interface{}) {
	err := json.NewDecoder(bytes.NewReader(r.Body.Bytes())).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}
