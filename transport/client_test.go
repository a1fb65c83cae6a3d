package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		address string
		version string
		token   string
		wantErr string
	}{
		{
			name:    "valid config",
			address: "https://crm.example.com",
			version: "1",
			token:   "secret",
		},
		{
			name:    "missing address",
			version: "1",
			token:   "secret",
			wantErr: "server address is required",
		},
		{
			name:    "missing token",
			address: "https://crm.example.com",
			version: "1",
			wantErr: "access token is required",
		},
		{
			name:    "missing version",
			address: "https://crm.example.com",
			token:   "secret",
			wantErr: "api version is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.address, tt.version, tt.token, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.address, client.baseURL)
			assert.Equal(t, 3, client.httpClient.RetryMax)
			assert.Equal(t, 10*time.Second, client.httpClient.HTTPClient.Timeout)
		})
	}
}

func TestSendBuildsAuthenticatedURL(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "3", "secret", zerolog.Nop())
	require.NoError(t, err)

	params := url.Values{}
	params.Set("take", "20")

	resp, err := client.Get(context.Background(), "/contacts.json", params)
	require.NoError(t, err)
	assert.True(t, resp.OK())

	assert.Equal(t, "/api/v3/contacts.json", gotPath)
	assert.Equal(t, "20", gotQuery.Get("take"))
	assert.Equal(t, "secret", gotQuery.Get("accessToken"))
	assert.Equal(t, "application/json", gotContentType)
}

func TestSendTokenInjectionIsAuthoritative(t *testing.T) {
	var gotToken []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query()["accessToken"]
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "1", "real-token", zerolog.Nop())
	require.NoError(t, err)

	params := url.Values{}
	params.Set("accessToken", "spoofed")

	_, err = client.Get(context.Background(), "/contacts.json", params)
	require.NoError(t, err)

	assert.Equal(t, []string{"real-token"}, gotToken)
}

func TestSendDoesNotRetryErrorStatuses(t *testing.T) {
	var hits int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "1", "secret", zerolog.Nop())
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/contacts.json", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.False(t, resp.OK())
	assert.Equal(t, 1, hits)
}

func TestSendTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient(server.URL, "1", "secret", zerolog.Nop(), WithRetryMax(0))
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/contacts.json", nil)
	assert.Nil(t, resp)
	require.Error(t, err)

	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.MethodGet, terr.Method)
	assert.Equal(t, "/contacts.json", terr.Endpoint)
}

func TestSendBody(t *testing.T) {
	var gotMethod string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "1", "secret", zerolog.Nop())
	require.NoError(t, err)

	payload := []byte(`{"firstname":"John"}`)
	_, err = client.Post(context.Background(), "/contacts.json", nil, payload)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, payload, gotBody)
}

func TestSimulate(t *testing.T) {
	var gotMethod string
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "1", "secret", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Simulate(context.Background(), "/contacts/42.json", "put", nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "PUT", gotQuery.Get("_method"))
	assert.Equal(t, "secret", gotQuery.Get("accessToken"))
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("https://crm.example.com", "1", "secret", zerolog.Nop(), WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.HTTPClient.Timeout)
	})

	t.Run("with retry max", func(t *testing.T) {
		client, err := NewClient("https://crm.example.com", "1", "secret", zerolog.Nop(), WithRetryMax(1))
		require.NoError(t, err)
		assert.Equal(t, 1, client.httpClient.RetryMax)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{}
		client, err := NewClient("https://crm.example.com", "1", "secret", zerolog.Nop(), WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Same(t, custom, client.httpClient.HTTPClient)
	})
}
