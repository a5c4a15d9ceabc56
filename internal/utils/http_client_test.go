package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient(30 * time.Second)

	require.NotNil(t, client.Client)
	assert.Equal(t, 30*time.Second, client.GetClient().Timeout)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
	assert.Equal(t, userAgent, client.Header.Get("User-Agent"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(0)
	client2 := NewHTTPClient(0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_FollowsExecRedirect(t *testing.T) {
	// /exec отвечает 302 на страницу с результатом, как это делает Apps Script
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/exec":
			http.Redirect(w, r, "/echo", http.StatusFound)
		case "/echo":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true}`))
		}
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(time.Second).R().Post(srv.URL + "/exec")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"success":true}`, resp.String())
}

func TestHTTPClient_StopsLongRedirectChains(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.Path+"x", http.StatusFound)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(time.Second).R().Get(srv.URL + "/loop")

	assert.Error(t, err)
}
