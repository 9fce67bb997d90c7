package get_services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(nopLogger{})
	w := httptest.NewRecorder()

	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Categories, 3)
	assert.Equal(t, "Car", resp.Categories[0].ID)
	assert.Equal(t, "Boat", resp.Categories[1].ID)
	assert.Equal(t, "Other", resp.Categories[2].ID)

	assert.Equal(t, "Express Wash", resp.Categories[0].Options[0].Name)
	assert.Equal(t, 150.0, resp.Categories[0].Options[0].Price)
	assert.Equal(t, 1500.0, resp.Categories[1].Options[1].Price)
}
