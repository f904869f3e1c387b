package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "experience_level", Message: "must be one of entry, mid, senior, executive"}
	assert.Contains(t, err.Error(), "experience_level")
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestValidationError_WritesMappedStatus(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()

	s.validationError(w, "job", "job query parameter is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "validation error")
	assert.Contains(t, resp["error"], "job query parameter is required")
}
