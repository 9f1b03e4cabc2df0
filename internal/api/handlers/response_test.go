package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "예약 정보를 찾을 수 없습니다.")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "예약 정보를 찾을 수 없습니다.", body.Error)
}

func TestRespondBadGateway_DefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadGateway(rec, "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), msgBadGateway)
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Date string `json:"date"`
	}

	r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"date":"2026-12-01"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "2026-12-01", v.Date)

	r = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPut, "/", strings.NewReader("{"))
	assert.Error(t, DecodeJSON(r, &v))
}
