package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/auth"
)

func TestIssueToken(t *testing.T) {
	manager := auth.NewManager("test-secret")
	h := NewTokenHandler(manager)

	body := []byte(`{"email":"a@x.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.IssueToken(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	claims, err := manager.ValidateJWT(resp["token"])
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestIssueTokenMissingEmail(t *testing.T) {
	h := NewTokenHandler(auth.NewManager("test-secret"))

	req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	h.IssueToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIssueTokenInvalidBody(t *testing.T) {
	h := NewTokenHandler(auth.NewManager("test-secret"))

	req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader([]byte(`{not json`)))
	rec := httptest.NewRecorder()
	h.IssueToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
