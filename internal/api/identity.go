package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"ticticpou-ranking/internal/config"
)

var ErrIdentityNotFound = errors.New("identity not found")

// IdentityClient resolves display identity (name, avatar) for player ids
// issued by the external identity provider.
type IdentityClient struct {
	baseURL string
	apiKey  string
	client  *fasthttp.Client
}

func NewIdentityClient(cfg *config.Config) *IdentityClient {
	return newIdentityClient(cfg.IdentityAPIURL, cfg.IdentityAPIKey, &fasthttp.Client{
		MaxConnsPerHost:     32,
		ReadTimeout:         5 * time.Second,
		WriteTimeout:        5 * time.Second,
		MaxIdleConnDuration: 1 * time.Minute,
	})
}

func newIdentityClient(baseURL, apiKey string, client *fasthttp.Client) *IdentityClient {
	return &IdentityClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// Enabled is false when no API key is configured; callers then fall back
// to the player id as display name.
func (c *IdentityClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

type IdentityUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url"`
}

func (u *IdentityUser) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	return u.ID
}

func (c *IdentityClient) GetUser(ctx context.Context, id string) (*IdentityUser, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s", c.baseURL, url.PathEscape(id))
	return doRequest[IdentityUser](ctx, c, endpoint)
}

func doRequest[T any](ctx context.Context, client *IdentityClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "Bearer "+client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusNotFound:
		return nil, ErrIdentityNotFound
	default:
		return nil, fmt.Errorf("identity API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
