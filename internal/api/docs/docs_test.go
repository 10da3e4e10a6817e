package docs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenAPIDocumentsEveryRoute(t *testing.T) {
	doc := string(OpenAPI())

	assert.Contains(t, doc, "openapi: 3.")
	for _, path := range []string{"/users:", "/users/{id}:", "/users/{id}/posts:", "/posts:", "/posts/{id}:"} {
		assert.Contains(t, doc, "\n  "+path, "missing path %s", path)
	}
}

func TestHandler(t *testing.T) {
	w := httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/api/docs/openapi.yaml", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))
	assert.Equal(t, OpenAPI(), w.Body.Bytes())
}
