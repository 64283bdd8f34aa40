package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubProvider_Generate(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq hubRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text":"a concrete plan"}]`))
	}))
	defer srv.Close()

	p := NewHubProvider("tok", "acme/base-model", srv.URL, time.Second)
	text, err := p.Generate(context.Background(), "what should we build")
	require.NoError(t, err)
	assert.Equal(t, "a concrete plan", text)
	assert.Equal(t, "/acme/base-model", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, 200, gotReq.Parameters.MaxLength)
	assert.Equal(t, 0.6, gotReq.Parameters.Temperature)
	assert.True(t, gotReq.Parameters.DoSample)
}

func TestHubProvider_TruncatesLongInput(t *testing.T) {
	var gotReq hubRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`[{"summary_text":"short"}]`))
	}))
	defer srv.Close()

	p := NewHubProvider("tok", "m", srv.URL, time.Second)
	text, err := p.Generate(context.Background(), strings.Repeat("x", 2000))
	require.NoError(t, err)
	assert.Equal(t, "short", text)
	assert.Len(t, gotReq.Inputs, hubMaxInputChars)
}

func TestHubProvider_SummaryTextFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"generated_text":"","summary_text":"condensed"}]`))
	}))
	defer srv.Close()

	p := NewHubProvider("tok", "m", srv.URL, time.Second)
	text, err := p.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "condensed", text)
}

func TestHubProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"model is loading"}`))
	}))
	defer srv.Close()

	p := NewHubProvider("tok", "m", srv.URL, time.Second)
	_, err := p.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestHubProvider_MissingToken(t *testing.T) {
	p := NewHubProvider("", "m", "", time.Second)
	_, err := p.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}
