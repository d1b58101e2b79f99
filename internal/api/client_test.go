package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"success","data":null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	_, err := c.Get(context.Background(), "/garage/", url.Values{"id": {"1"}}, "token-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)

	_, err = c.Get(context.Background(), "/garage/", nil, "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no token must mean no Authorization header")
}

func TestUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"status":"error","data":null,"message":"A booking already exists with these details."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	var calls int
	c.OnError = func() { calls++ }

	_, err := c.Post(context.Background(), "/subscriber/booking/", map[string]int{"businessid": 1}, "tok")
	require.Error(t, err)

	ue, ok := err.(*UpstreamError)
	require.True(t, ok, "expected *UpstreamError, got %T", err)
	assert.Equal(t, http.StatusConflict, ue.StatusCode)
	assert.Equal(t, "A booking already exists with these details.", ue.Message)
	assert.Equal(t, 1, calls, "error hook fires once per failed call")
}

func TestDecodeData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"id":7,"name":"Highway Motors"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	env, err := c.Get(context.Background(), "/garage/", nil, "")
	require.NoError(t, err)

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, env.DecodeData(&out))
	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "Highway Motors", out.Name)

	// null data decodes to the zero value without error
	null := Envelope{Data: []byte("null")}
	var skipped struct{ ID int }
	require.NoError(t, null.DecodeData(&skipped))
	assert.Zero(t, skipped.ID)
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"status":"success","data":null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	_, err := c.Post(context.Background(), "/listgarage/", map[string]string{"location": "Pune"}, "")
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
}
