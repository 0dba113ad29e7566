// Package lineapi is a minimal client for the messaging platform insight endpoints.
package lineapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/and161185/line-insight/internal/errs"
)

//go:generate mockgen -destination=mocks/mock_lineapi.go -package=mocks github.com/and161185/line-insight/internal/lineapi InsightAPI

// Insight readiness values.
const (
	StatusReady        = "ready"
	StatusUnready      = "unready"
	StatusOutOfService = "out_of_service"
)

// InsightAPI is the subset of the messaging API used by the collector.
type InsightAPI interface {
	GetNumberOfMessageDeliveries(ctx context.Context, date string) (*MessageDeliveries, error)
	GetNumberOfFollowers(ctx context.Context, date string) (*Followers, error)
	GetFriendDemographics(ctx context.Context) (*Demographics, error)
}

// MessageDeliveries is the number of messages sent on a given date.
// Nil counters were absent from the response.
type MessageDeliveries struct {
	Status          string `json:"status"`
	Broadcast       *int64 `json:"broadcast,omitempty"`
	Targeting       *int64 `json:"targeting,omitempty"`
	AutoResponse    *int64 `json:"autoResponse,omitempty"`
	WelcomeResponse *int64 `json:"welcomeResponse,omitempty"`
	Chat            *int64 `json:"chat,omitempty"`
	APIBroadcast    *int64 `json:"apiBroadcast,omitempty"`
	APIPush         *int64 `json:"apiPush,omitempty"`
	APIMulticast    *int64 `json:"apiMulticast,omitempty"`
	APINarrowcast   *int64 `json:"apiNarrowcast,omitempty"`
	APIReply        *int64 `json:"apiReply,omitempty"`
}

// Followers is the follower statistics for a given date.
type Followers struct {
	Status          string `json:"status"`
	Followers       *int64 `json:"followers,omitempty"`
	TargetedReaches *int64 `json:"targetedReaches,omitempty"`
	Blocks          *int64 `json:"blocks,omitempty"`
}

// Demographics is the friend demographic breakdown. Percentages are 0..100.
type Demographics struct {
	Available           bool                     `json:"available"`
	Genders             []GenderTile             `json:"genders,omitempty"`
	Ages                []AgeTile                `json:"ages,omitempty"`
	Areas               []AreaTile               `json:"areas,omitempty"`
	AppTypes            []AppTypeTile            `json:"appTypes,omitempty"`
	SubscriptionPeriods []SubscriptionPeriodTile `json:"subscriptionPeriods,omitempty"`
}

type GenderTile struct {
	Gender     string  `json:"gender"`
	Percentage float64 `json:"percentage"`
}

type AgeTile struct {
	Age        string  `json:"age"`
	Percentage float64 `json:"percentage"`
}

type AreaTile struct {
	Area       string  `json:"area"`
	Percentage float64 `json:"percentage"`
}

type AppTypeTile struct {
	AppType    string  `json:"appType"`
	Percentage float64 `json:"percentage"`
}

type SubscriptionPeriodTile struct {
	SubscriptionPeriod string  `json:"subscriptionPeriod"`
	Percentage         float64 `json:"percentage"`
}

// Client calls the insight endpoints on behalf of one bot.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

var _ InsightAPI = (*Client)(nil)

// NewClient returns a client scoped to the given channel access token.
func NewClient(hc *http.Client, baseURL, token string) (*Client, error) {
	if token == "" {
		return nil, errs.ErrMissingCredential
	}
	return &Client{httpClient: hc, baseURL: baseURL, token: token}, nil
}

func (c *Client) GetNumberOfMessageDeliveries(ctx context.Context, date string) (*MessageDeliveries, error) {
	var out MessageDeliveries
	q := url.Values{"date": {date}}
	if err := c.get(ctx, "/v2/bot/insight/message/delivery", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetNumberOfFollowers(ctx context.Context, date string) (*Followers, error) {
	var out Followers
	q := url.Values{"date": {date}}
	if err := c.get(ctx, "/v2/bot/insight/followers", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetFriendDemographics(ctx context.Context) (*Demographics, error) {
	var out Demographics
	if err := c.get(ctx, "/v2/bot/insight/demographic", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s: %w: %d", path, errs.ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
