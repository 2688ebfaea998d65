package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormSender_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/finalize", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))

		body, _ := io.ReadAll(r.Body)
		values, err := url.ParseQuery(string(body))
		require.NoError(t, err)
		assert.Equal(t, "nonce-abc123", values.Get("nonce"))
		assert.Equal(t, "walletpay", values.Get("provider"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	}))
	defer server.Close()

	sender := NewFormSender(server.URL+"/", server.Client())

	form := url.Values{}
	form.Set("nonce", "nonce-abc123")
	form.Set("provider", "walletpay")

	response, err := sender.Post(context.Background(), "/checkout/finalize",
		map[string]string{"X-Requested-With": "XMLHttpRequest"}, form)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, response.StatusCode)
	assert.Equal(t, "created", string(response.Body))
}

func TestFormSender_PostConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	sender := NewFormSender(server.URL, nil)

	response, err := sender.Post(context.Background(), "/checkout/finalize", nil, url.Values{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "checkout request failed")
	assert.Nil(t, response)
}
