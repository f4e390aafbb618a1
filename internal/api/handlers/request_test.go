package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"min=1"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "valid", body: `{"name":"a","count":2}`},
		{name: "malformed", body: `{"name":`, wantErr: ErrInvalidJSON},
		{name: "unknown field", body: `{"name":"a","count":1,"extra":true}`, wantErr: ErrInvalidJSON, wantMsg: "extra"},
		{name: "trailing data", body: `{"name":"a","count":1}{}`, wantErr: ErrInvalidJSON},
		{name: "missing required", body: `{"count":1}`, wantErr: ErrValidation, wantMsg: "name: failed on 'required'"},
		{name: "below min", body: `{"name":"a","count":0}`, wantErr: ErrValidation, wantMsg: "count: failed on 'min=1'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))

			var req sampleRequest
			err := DecodeJSON(r, &req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "a", req.Name)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestQueryBool(t *testing.T) {
	r := httptest.NewRequest("POST", "/?force=true", nil)
	v, err := QueryBool(r, "force")
	require.NoError(t, err)
	assert.True(t, v)

	r = httptest.NewRequest("POST", "/", nil)
	v, err = QueryBool(r, "force")
	require.NoError(t, err)
	assert.False(t, v)

	r = httptest.NewRequest("POST", "/?force=maybe", nil)
	_, err = QueryBool(r, "force")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=5", nil)
	v, err := QueryInt(r, "limit", 20)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	r = httptest.NewRequest("GET", "/", nil)
	v, err = QueryInt(r, "limit", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	r = httptest.NewRequest("GET", "/?limit=ten", nil)
	_, err = QueryInt(r, "limit", 20)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondNotFound(w, "Monastery not found")

	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"Monastery not found"}`, w.Body.String())
}
