package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/sponsorlink/domain/enhancement"
	"github.com/helixml/sponsorlink/infrastructure/api/ai"
	"github.com/helixml/sponsorlink/infrastructure/api/ai/dto"
	"github.com/helixml/sponsorlink/infrastructure/api/middleware"
)

type stubEnhancer struct {
	calls []string
	text  string
	err   error
}

func (s *stubEnhancer) Enhance(_ context.Context, req enhancement.Request) (string, error) {
	s.calls = append(s.calls, req.Description())
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func post(t *testing.T, enhancer enhancement.Enhancer, body string) *httptest.ResponseRecorder {
	t.Helper()
	routes := ai.NewRouter(enhancer, nil).Routes()

	req := httptest.NewRequest(http.MethodPost, "/enhance-event", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)
	return w
}

func TestEnhanceEvent_Success(t *testing.T) {
	stub := &stubEnhancer{text: "Join us for an electrifying Tech Fest!"}

	w := post(t, stub, `{"description":"Tech fest with coding contests"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp dto.EnhanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Join us for an electrifying Tech Fest!", resp.EnhancedDescription)
	assert.Equal(t, []string{"Tech fest with coding contests"}, stub.calls)
}

func TestEnhanceEvent_MissingDescription(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "empty body", body: ``},
		{name: "whitespace body", body: "  \n"},
		{name: "null", body: `null`},
		{name: "null description", body: `{"description":null}`},
		{name: "extra fields", body: `{"title":"Hackathon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubEnhancer{text: "ok"}

			w := post(t, stub, tt.body)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, []string{""}, stub.calls)
		})
	}
}

func TestEnhanceEvent_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"description":`},
		{name: "not json", body: `description=hello`},
		{name: "non-string description", body: `{"description":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubEnhancer{text: "ok"}

			w := post(t, stub, tt.body)

			require.Equal(t, http.StatusInternalServerError, w.Code)
			var resp middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, strings.HasPrefix(resp.Error, "invalid request body"), resp.Error)
			assert.Empty(t, stub.calls, "enhancer must not be called")
		})
	}
}

func TestEnhanceEvent_BodyTooLarge(t *testing.T) {
	stub := &stubEnhancer{text: "ok"}
	huge := `{"description":"` + strings.Repeat("a", 2<<20) + `"}`

	w := post(t, stub, huge)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid request body: exceeds 1048576 bytes", resp.Error)
	assert.Empty(t, stub.calls, "enhancer must not be called")
}

func TestEnhanceEvent_EnhancerFailure(t *testing.T) {
	stub := &stubEnhancer{err: errors.New("gemini generateContent: upstream returned status 403 Forbidden")}

	w := post(t, stub, `{"description":"Robotics workshop"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "403")
}

func TestEnhanceEvent_MethodNotAllowed(t *testing.T) {
	routes := ai.NewRouter(&stubEnhancer{}, nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/enhance-event", nil)
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
