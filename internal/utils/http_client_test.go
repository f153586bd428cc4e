package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:5005", 3*time.Second)
	require.NotNil(t, client)
	require.NotNil(t, client.Client)

	assert.Equal(t, "http://localhost:5005", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_SendsDefaultHeaders(t *testing.T) {
	var gotAgent, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/ping")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, ClientUserAgent, gotAgent)
	assert.Equal(t, "application/json", gotAccept)
}
