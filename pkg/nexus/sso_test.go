package nexus

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonxm/gonxm/internal/common/uuid"
)

var upgrader = websocket.Upgrader{}

// newSSOServer runs an in-process stand-in for the signaling service: it
// reads one handshake frame and replies with apiKey.
func newSSOServer(t *testing.T, apiKey string) (wsURL string, frames <-chan ssoRequest) {
	t.Helper()
	ch := make(chan ssoRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var req ssoRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		ch <- req

		conn.WriteMessage(websocket.TextMessage, []byte(apiKey))
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http"), ch
}

func TestSSOLogin(t *testing.T) {
	wsURL, frames := newSSOServer(t, "delivered-api-key")

	var browsed string
	c, err := SSOLogin("my-app", "my-token",
		WithSSOEndpoint(wsURL),
		WithBrowserOpener(func(u string) error {
			browsed = u
			return nil
		}),
	)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "delivered-api-key", c.apiKey)

	frame := <-frames
	assert.Equal(t, "my-token", frame.Token)

	// A fresh random v4 id was generated and shared with the browser.
	id, err := uuid.Parse(frame.ID)
	require.NoError(t, err)
	assert.True(t, uuid.IsV4(id))

	u, err := url.Parse(browsed)
	require.NoError(t, err)
	assert.Equal(t, "www.nexusmods.com", u.Host)
	assert.Equal(t, "/sso", u.Path)
	assert.Equal(t, frame.ID, u.Query().Get("id"))
	assert.Equal(t, "my-app", u.Query().Get("application"))
}

func TestSSOLoginResumesID(t *testing.T) {
	wsURL, frames := newSSOServer(t, "key")

	_, err := SSOLogin("my-app", "my-token",
		WithSSOEndpoint(wsURL),
		WithSSOID("previously-registered"),
		WithBrowserOpener(func(string) error { return nil }),
	)
	require.NoError(t, err)

	frame := <-frames
	assert.Equal(t, "previously-registered", frame.ID)
}

func TestSSOLoginClientOptions(t *testing.T) {
	wsURL, _ := newSSOServer(t, "delivered-api-key")

	var apiKeyHeader string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeyHeader = r.Header.Get("apikey")
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(apiSrv.Close)

	c, err := SSOLogin("my-app", "my-token",
		WithSSOEndpoint(wsURL),
		WithBrowserOpener(func(string) error { return nil }),
		WithClientOptions(WithBaseURL(apiSrv.URL)),
	)
	require.NoError(t, err)

	_, err = c.ValidateUser()
	require.NoError(t, err)
	assert.Equal(t, "delivered-api-key", apiKeyHeader)
}

func TestSSOLoginDialFailure(t *testing.T) {
	_, err := SSOLogin("my-app", "my-token",
		WithSSOEndpoint("ws://127.0.0.1:1"),
		WithBrowserOpener(func(string) error { return nil }),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandshakeFailed)
}

func TestSSOLoginBrowserFailure(t *testing.T) {
	wsURL, _ := newSSOServer(t, "key")

	_, err := SSOLogin("my-app", "my-token",
		WithSSOEndpoint(wsURL),
		WithBrowserOpener(func(string) error {
			return assert.AnError
		}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandshakeFailed)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSSOLoginSocketClosedBeforeKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		// Accept the handshake frame, then hang up without delivering a key.
		var req ssoRequest
		conn.ReadJSON(&req)
		conn.Close()
	}))
	t.Cleanup(srv.Close)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	_, err := SSOLogin("my-app", "my-token",
		WithSSOEndpoint(wsURL),
		WithBrowserOpener(func(string) error { return nil }),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandshakeFailed)
}
