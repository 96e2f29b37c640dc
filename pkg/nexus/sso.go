package nexus

import (
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/gonxm/gonxm/internal/common/browser"
	"github.com/gonxm/gonxm/internal/common/uuid"
)

// SSOEndpoint is the signaling socket used for browser-based login.
const SSOEndpoint = "wss://sso.nexusmods.com"

// ssoConfirmURL is the confirmation page opened in the user's browser,
// parameterized by handshake id and application slug.
const ssoConfirmURL = "https://www.nexusmods.com/sso?id=%s&application=%s"

// ssoRequest is the single frame sent over the signaling socket.
type ssoRequest struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

type ssoConfig struct {
	id          string
	endpoint    string
	openBrowser func(url string) error
	clientOpts  []Option
}

// SSOOption configures an SSO handshake.
type SSOOption func(*ssoConfig)

// WithSSOID resumes a handshake id registered during a previous
// connection. When unset, a fresh random (v4) id is generated.
func WithSSOID(id string) SSOOption {
	return func(c *ssoConfig) {
		c.id = id
	}
}

// WithSSOEndpoint overrides the signaling endpoint. Intended for tests.
func WithSSOEndpoint(u string) SSOOption {
	return func(c *ssoConfig) {
		c.endpoint = u
	}
}

// WithBrowserOpener substitutes the launcher used to open the confirmation
// page. Intended for tests.
func WithBrowserOpener(open func(url string) error) SSOOption {
	return func(c *ssoConfig) {
		c.openBrowser = open
	}
}

// WithClientOptions passes Client construction options through to the
// Client built from the received key.
func WithClientOptions(opts ...Option) SSOOption {
	return func(c *ssoConfig) {
		c.clientOpts = opts
	}
}

// SSOLogin obtains an API key through the single sign-on handshake and
// returns a Client built from it. The caller never sees the key: it is
// delivered over the signaling socket after the user approves the
// connection in their browser.
//
// The call blocks until the key arrives or the socket closes. No timeout
// is enforced here since the handshake waits on a human; callers needing
// a deadline should wrap this call. No retry is attempted.
func SSOLogin(appSlug, ssoToken string, opts ...SSOOption) (*Client, error) {
	cfg := ssoConfig{
		endpoint:    SSOEndpoint,
		openBrowser: browser.Open,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}

	conn, _, err := websocket.DefaultDialer.Dial(cfg.endpoint, nil)
	if err != nil {
		return nil, ErrHandshakeFailed.MsgErr("could not connect to the sso service", err)
	}
	defer conn.Close()

	frame, err := json.Marshal(ssoRequest{ID: cfg.id, Token: ssoToken})
	if err != nil {
		return nil, ErrHandshakeFailed.MsgErr("could not encode the handshake frame", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return nil, ErrHandshakeFailed.MsgErr("could not send the handshake frame", err)
	}

	log.Debug().
		Str("id", cfg.id).
		Str("application", appSlug).
		Msg("sso handshake registered")

	confirm := fmt.Sprintf(ssoConfirmURL, url.QueryEscape(cfg.id), url.QueryEscape(appSlug))
	if err := cfg.openBrowser(confirm); err != nil {
		return nil, ErrHandshakeFailed.MsgErr("could not open the browser", err)
	}

	// The service replies with exactly one frame: the API key itself,
	// not JSON-wrapped.
	_, payload, err := conn.ReadMessage()
	if err != nil {
		return nil, ErrHandshakeFailed.MsgErr("connection closed before a key was delivered", err)
	}

	return New(string(payload), cfg.clientOpts...), nil
}
