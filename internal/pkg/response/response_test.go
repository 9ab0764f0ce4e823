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

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) { Success(c, http.StatusOK, gin.H{"id": 7}) })

	body := decode(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(7), body["data"].(map[string]any)["id"])
}

func TestErrorEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, http.StatusConflict, "BOOKING_CONFLICT", "room is already booked")
	})

	body := decode(t, w)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, body["success"])

	e := body["error"].(map[string]any)
	assert.Equal(t, "BOOKING_CONFLICT", e["code"])
	assert.Equal(t, "room is already booked", e["message"])
	_, hasDetails := e["details"]
	assert.False(t, hasDetails)
}

func TestErrorWithDetailsEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input",
			map[string]string{"Title": "required"})
	})

	e := decode(t, w)["error"].(map[string]any)
	assert.Equal(t, map[string]any{"Title": "required"}, e["details"])
}
