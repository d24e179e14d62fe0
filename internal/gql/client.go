// Package gql provides a GraphQL client for the agenda items API.
// It implements a deep module interface - simple methods hiding complex GraphQL queries.
package gql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/h0rv/agendactl/internal/auth"
	"github.com/h0rv/agendactl/internal/config"
	"github.com/machinebox/graphql"
	"github.com/rs/zerolog/log"
)

// Client is a GraphQL API client for agenda items, categories and sections.
// It provides high-level methods for querying and mutating agenda data.
type Client struct {
	gql   *graphql.Client
	token string
}

// New creates a client for the configured endpoint.
// It obtains an authentication token using the auth package; a missing token
// is tolerated (some deployments and the demo backend need none) and logged.
func New(cfg config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	token, err := auth.GetToken(cfg.TokenCommand)
	if err != nil {
		if !errors.Is(err, auth.ErrNoToken) {
			return nil, fmt.Errorf("failed to obtain API token: %w", err)
		}
		log.Warn().Err(err).Msg("continuing without an API token")
	}

	return NewWithToken(cfg.Endpoint, token, cfg.Timeout()), nil
}

// NewWithToken creates a client with an explicit token (empty for none).
func NewWithToken(endpoint, token string, timeout time.Duration) *Client {
	httpClient := &http.Client{Timeout: timeout}
	client := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	client.Log = func(s string) { log.Trace().Msg(s) }

	return &Client{
		gql:   client,
		token: token,
	}
}

// makeRequest executes a GraphQL request with authentication and a request id.
// Each request is logged with its operation name and duration.
func (c *Client) makeRequest(ctx context.Context, op string, req *graphql.Request, resp interface{}) error {
	requestID := uuid.NewString()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	err := c.gql.Run(ctx, req, resp)

	logger := log.With().
		Str("op", op).
		Str("request_id", requestID).
		Dur("took", time.Since(start)).
		Logger()
	if err != nil {
		logger.Error().Err(err).Msg("graphql request failed")
		return err
	}
	logger.Debug().Msg("graphql request")
	return nil
}
