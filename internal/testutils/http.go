package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite drives a bare gin engine that handler tests register routes on
type HTTPTestSuite struct {
	Router *gin.Engine
}

func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body JSON-encoded; a nil body sends no payload at all.
func (h *HTTPTestSuite) MakeRequest(method, url string, body any) *httptest.ResponseRecorder {
	if body == nil {
		return h.serve(method, url, nil)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		panic("testutils: request body is not JSON encodable: " + err.Error())
	}
	return h.serve(method, url, bytes.NewReader(payload))
}

// MakeRawRequest sends body verbatim, for malformed JSON cases
func (h *HTTPTestSuite) MakeRawRequest(method, url, body string) *httptest.ResponseRecorder {
	return h.serve(method, url, bytes.NewBufferString(body))
}

func (h *HTTPTestSuite) serve(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.Router.ServeHTTP(rec, req)
	return rec
}

// AssertJSONResponse checks status and content type, then decodes into target when it is non-nil.
func AssertJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, target any) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	if target != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
	}
}

// AssertErrorResponse checks an {"error": ...} body. An empty message only checks the shape.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	if message != "" {
		assert.Contains(t, body.Error, message)
	}
}

// AssertPDFResponse checks a report download: status, media type, attachment name and PDF magic.
func AssertPDFResponse(t *testing.T, rec *httptest.ResponseRecorder, fileName string) {
	t.Helper()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="`+fileName+`"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")), "body is not a PDF")
}
