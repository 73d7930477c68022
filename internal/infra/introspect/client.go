package introspect

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	httpclient "github.com/astro-web3/ledger-authz/pkg/http"
)

// Response is the introspection endpoint's answer. Active is a pointer so a
// payload that omits the flag (or carries something that is not a boolean)
// is distinguishable from an explicit false.
type Response struct {
	Active   *bool  `json:"active"`
	Username string `json:"Username"`
}

// Introspector verifies a bearer token against a remote endpoint.
type Introspector interface {
	Introspect(ctx context.Context, token string) (*Response, error)
}

type client struct {
	endpoint     string
	clientID     string
	clientSecret string
	timeout      time.Duration
}

func NewClient(endpoint, clientID, clientSecret string, timeout time.Duration) Introspector {
	endpoint = strings.TrimSuffix(endpoint, "/")
	return &client{
		endpoint:     endpoint,
		clientID:     clientID,
		clientSecret: clientSecret,
		timeout:      timeout,
	}
}

// Introspect posts the token as an url-encoded form with basic client
// authentication. The call is bounded by the configured timeout and is
// abandoned when ctx is cancelled; it is never retried.
func (c *client) Introspect(ctx context.Context, token string) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	form := url.Values{}
	form.Set("token", token)
	form.Set("client_id", c.clientID)

	var result Response
	resp, err := httpclient.PostForm(
		ctx,
		c.endpoint,
		form,
		c.clientID,
		c.clientSecret,
		&result,
	)
	if err != nil {
		return nil, fmt.Errorf("introspection request failed: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf(
			"introspection failed with status %d: %s",
			resp.StatusCode(),
			string(resp.Body()),
		)
	}

	return &result, nil
}
