package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPromptUnconfigured(t *testing.T) {
	t.Parallel()

	handler := NewPromptHandler(&fakePromptService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/prompt-config", nil)
	rec := httptest.NewRecorder()
	handler.GetPrompt(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PromptConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Prompt)
}

func TestSetThenGetPrompt(t *testing.T) {
	t.Parallel()

	prompts := &fakePromptService{}
	handler := NewPromptHandler(prompts, nil)

	setReq := httptest.NewRequest(http.MethodPost, "/prompt-config",
		strings.NewReader(`{"prompt":"generate a {{type}} item in {{lang}}"}`))
	setRec := httptest.NewRecorder()
	handler.SetPrompt(setRec, setReq)

	require.Equal(t, http.StatusOK, setRec.Code)
	assert.Contains(t, setRec.Body.String(), `"ok":true`)

	getReq := httptest.NewRequest(http.MethodGet, "/prompt-config", nil)
	getRec := httptest.NewRecorder()
	handler.GetPrompt(getRec, getReq)

	require.Equal(t, http.StatusOK, getRec.Code)

	var resp PromptConfigResponse
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &resp))
	assert.Equal(t, "generate a {{type}} item in {{lang}}", resp.Prompt)
}

func TestSetPromptRejectsEmpty(t *testing.T) {
	t.Parallel()

	prompts := &fakePromptService{prompt: "keep me"}
	handler := NewPromptHandler(prompts, nil)

	req := httptest.NewRequest(http.MethodPost, "/prompt-config",
		strings.NewReader(`{"prompt":""}`))
	rec := httptest.NewRecorder()
	handler.SetPrompt(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "keep me", prompts.prompt)
}

func TestSetPromptMalformedBody(t *testing.T) {
	t.Parallel()

	handler := NewPromptHandler(&fakePromptService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/prompt-config", strings.NewReader(`{"prompt"`))
	rec := httptest.NewRecorder()
	handler.SetPrompt(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
