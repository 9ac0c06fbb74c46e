package bluesky

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bluesky-social/indigo/api/atproto"
	"github.com/bluesky-social/indigo/api/bsky"
	"github.com/bluesky-social/indigo/xrpc"
	"github.com/labstack/gommon/log"
)

const DefaultPDSHost = "https://bsky.social"

type Credentials struct {
	Identifier string
	Password   string
}

type Client struct {
	xrpc *xrpc.Client
}

func ClientFromCredentials(ctx context.Context, host string, creds *Credentials) (*Client, error) {
	auth, err := atproto.ServerCreateSession(ctx, &xrpc.Client{Host: host}, &atproto.ServerCreateSession_Input{
		Identifier: creds.Identifier,
		Password:   creds.Password,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	xrpcClient := &xrpc.Client{
		Host: host,
		Auth: &xrpc.AuthInfo{
			AccessJwt:  auth.AccessJwt,
			RefreshJwt: auth.RefreshJwt,
			Handle:     auth.Handle,
			Did:        auth.Did,
		},
		Client: http.DefaultClient,
	}

	return &Client{xrpc: xrpcClient}, nil
}

// Handle returns the handle the session was created for.
func (c *Client) Handle() string {
	return c.xrpc.Auth.Handle
}

// Timeline returns up to limit entries from the authenticated user's home
// timeline, newest first.
func (c *Client) Timeline(ctx context.Context, limit int64) (*bsky.FeedGetTimeline_Output, error) {
	resp, err := bsky.FeedGetTimeline(ctx, c.xrpc, "", "", limit)
	if err != nil {
		// Display the entire http response error so we can see what went wrong
		log.Errorf("failed to get timeline: %s", err)
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	return resp, nil
}
