package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"taskhive/internal/migrations"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var prepareOnce sync.Once

// PrepareTestDatabase makes sure the schema exists before fixtures
// start inserting rows. Safe to call from every test helper.
func PrepareTestDatabase() {
	prepareOnce.Do(func() {
		if err := migrations.Run(); err != nil {
			panic("failed to migrate test database: " + err.Error())
		}
	})
}

type Response struct {
	Code int
	Body []byte
}

func MakeRequest(
	t *testing.T,
	router *gin.Engine,
	method, url, authToken string,
	body any,
	expectedStatus int,
) *Response {
	t.Helper()

	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		require.NoError(t, err)
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	return &Response{
		Code: w.Code,
		Body: w.Body.Bytes(),
	}
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
) *Response {
	t.Helper()
	return MakeRequest(t, router, http.MethodGet, url, authToken, nil, expectedStatus)
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *Response {
	t.Helper()
	return MakeRequest(t, router, http.MethodPost, url, authToken, body, expectedStatus)
}

func MakePutRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *Response {
	t.Helper()
	return MakeRequest(t, router, http.MethodPut, url, authToken, body, expectedStatus)
}

func MakePatchRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *Response {
	t.Helper()
	return MakeRequest(t, router, http.MethodPatch, url, authToken, body, expectedStatus)
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
) *Response {
	t.Helper()
	return MakeRequest(t, router, http.MethodDelete, url, authToken, nil, expectedStatus)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakeGetRequest(t, router, url, authToken, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakePostRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakePutRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}
