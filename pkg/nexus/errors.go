package nexus

import (
	"net/http"

	"github.com/gonxm/gonxm/internal/common/apperrors"
)

var (
	// ErrNexus is the root of every error returned by this library.
	ErrNexus apperrors.Error = apperrors.New("nexus error")

	// ErrLimitReached reports HTTP 429: the hourly or daily request quota
	// is exhausted. Recoverable by waiting; the library never retries.
	ErrLimitReached apperrors.Error = ErrNexus.New(
		"You have reached your request limit. Please wait one hour before trying again.").
		SetStatusCode(http.StatusTooManyRequests)

	// ErrRequestFailed reports any other non-2xx response.
	ErrRequestFailed apperrors.Error = ErrNexus.New("request failed")

	// ErrMalformedErrorBody reports a non-2xx response whose body carries
	// neither a "message" nor an "error" field. Matches ErrRequestFailed
	// under errors.Is.
	ErrMalformedErrorBody apperrors.Error = ErrRequestFailed.New("could not parse error body")

	// ErrInvalidArgument reports a local precondition failure. The request
	// never reaches the network.
	ErrInvalidArgument apperrors.Error = ErrNexus.New("invalid argument").
		SetStatusCode(http.StatusBadRequest)

	// ErrHandshakeFailed reports a failed SSO handshake: the signaling
	// socket could not be reached, the browser could not be opened, or the
	// connection closed before a key was delivered.
	ErrHandshakeFailed apperrors.Error = ErrNexus.New("sso handshake failed")
)
