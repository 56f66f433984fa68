package kaonavi

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"MemberDirectory_UnityProject/internal/models"
)

const defaultBaseURL = "https://api.kaonavi.jp/api/v2.0"

// ClientConfig carries the upstream credentials and transport knobs.
// Timeout is the hard deadline of a single round trip; there are no
// retries, a failed call surfaces immediately.
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// Client talks to the kaonavi public API. Every endpoint except the
// token grant wants the access token in the Kaonavi-Token header.
type Client struct {
	http      *resty.Client
	apiKey    string
	apiSecret string
	logger    *zap.Logger
}

func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:      httpClient,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		logger:    logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Token exchanges the configured credentials for an access token via
// the client-credentials grant. Tokens are not cached; each pipeline
// run requests a fresh one.
func (c *Client) Token() (string, error) {
	var body tokenResponse
	resp, err := c.http.R().
		SetBasicAuth(c.apiKey, c.apiSecret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8").
		SetBody("grant_type=client_credentials").
		SetResult(&body).
		Post("/token")
	if err != nil {
		return "", &AuthError{Cause: err}
	}
	if resp.IsError() {
		c.logger.Error("token grant rejected", zap.Int("status", resp.StatusCode()))
		return "", &AuthError{Status: resp.StatusCode()}
	}
	if body.AccessToken == "" {
		return "", &AuthError{Status: resp.StatusCode(), Cause: errors.New("access_token missing from token response")}
	}
	return body.AccessToken, nil
}

// Members fetches every member record registered upstream.
func (c *Client) Members(token string) ([]models.Member, error) {
	var body models.MemberList
	resp, err := c.http.R().
		SetHeader("Kaonavi-Token", token).
		SetResult(&body).
		Get("/members")
	if err != nil {
		return nil, &UpstreamError{Op: "members", Cause: err}
	}
	if resp.IsError() {
		return nil, c.upstreamError("members", resp)
	}
	if body.MemberData == nil {
		return nil, &UpstreamError{Op: "members", Status: resp.StatusCode(), Cause: errors.New("member_data missing from response")}
	}
	return body.MemberData, nil
}

// Sheets fetches the given sheet for all members that have one.
func (c *Client) Sheets(token string, sheetID int) ([]models.SheetMember, error) {
	var body models.SheetCollection
	resp, err := c.http.R().
		SetHeader("Kaonavi-Token", token).
		SetResult(&body).
		Get(fmt.Sprintf("/sheets/%d", sheetID))
	if err != nil {
		return nil, &UpstreamError{Op: "sheets", Cause: err}
	}
	if resp.IsError() {
		return nil, c.upstreamError("sheets", resp)
	}
	if body.MemberData == nil {
		return nil, &UpstreamError{Op: "sheets", Status: resp.StatusCode(), Cause: errors.New("member_data missing from response")}
	}
	return body.MemberData, nil
}

// AddSheet creates sheet entries for members that have none yet.
func (c *Client) AddSheet(token string, sheetID int, payload models.SheetCollection) error {
	resp, err := c.http.R().
		SetHeader("Kaonavi-Token", token).
		SetBody(payload).
		Post(fmt.Sprintf("/sheets/%d/add", sheetID))
	if err != nil {
		return &UpstreamError{Op: "sheet add", Cause: err}
	}
	if resp.IsError() {
		return c.upstreamError("sheet add", resp)
	}
	return nil
}

// UpdateSheet overwrites existing sheet entries.
func (c *Client) UpdateSheet(token string, sheetID int, payload models.SheetCollection) error {
	resp, err := c.http.R().
		SetHeader("Kaonavi-Token", token).
		SetBody(payload).
		Patch(fmt.Sprintf("/sheets/%d", sheetID))
	if err != nil {
		return &UpstreamError{Op: "sheet update", Cause: err}
	}
	if resp.IsError() {
		return c.upstreamError("sheet update", resp)
	}
	return nil
}

type upstreamErrorBody struct {
	Errors []string `json:"errors"`
}

// upstreamError turns a non-2xx response into an UpstreamError,
// keeping the upstream error payload when the body carries one.
func (c *Client) upstreamError(op string, resp *resty.Response) error {
	var body upstreamErrorBody
	_ = json.Unmarshal(resp.Body(), &body)
	c.logger.Error("kaonavi request failed",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode()),
		zap.Strings("upstream_errors", body.Errors),
	)
	return &UpstreamError{Op: op, Status: resp.StatusCode(), Errors: body.Errors}
}
