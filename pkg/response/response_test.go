package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestSuccessWritesEnvelope(t *testing.T) {
	c, w := testContext()
	c.Set("request_id", "req-1")

	Success(c, http.StatusCreated, map[string]any{"id": 7}, "created", map[string]any{"count": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "created", got["message"])
	assert.Equal(t, "req-1", got["request_id"])
	assert.NotNil(t, got["data"])
}

func TestSuccessDefaultsToOK(t *testing.T) {
	c, w := testContext()

	Success[any](c, 0, nil, "ok", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFailWritesErrorEnvelope(t *testing.T) {
	c, w := testContext()

	Fail(c, http.StatusConflict, "email already registered", map[string]string{"email": "taken"})

	assert.Equal(t, http.StatusConflict, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "email already registered", got["message"])
	assert.NotNil(t, got["error"])
	assert.Nil(t, got["data"])
}
