package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkozlov/newsbrief/internal/model"
)

// Client talks to the LinkedIn v2 API (userinfo + UGC Posts).
// Posting is NOT idempotent: calling Post twice produces two posts.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a client from configuration.
func NewClient(cfg model.LinkedInConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.linkedin.com/v2"
	}

	return &Client{
		accessToken: cfg.AccessToken,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Profile is the authenticated member's userinfo record.
type Profile struct {
	Sub   string `json:"sub"` // Member ID; the post author URN is derived from it
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenStatus is the result of validating the access token.
type TokenStatus struct {
	Valid     bool   `json:"valid"`
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	Error     string `json:"error,omitempty"`
}

// PostResult is the structured outcome of one publish attempt. Publish
// failures surface here rather than as errors; the caller decides whether
// they are fatal to the run.
type PostResult struct {
	Success bool   `json:"success"`
	PostID  string `json:"post_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// FetchProfile retrieves the authenticated member's profile.
func (c *Client) FetchProfile(ctx context.Context) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch profile: status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &profile, nil
}

// ValidateToken checks the access token by fetching the member profile.
// A false result must block any live publish attempt.
func (c *Client) ValidateToken(ctx context.Context) TokenStatus {
	if c.accessToken == "" {
		return TokenStatus{Valid: false, Error: "no access token provided"}
	}

	profile, err := c.FetchProfile(ctx)
	if err != nil {
		return TokenStatus{Valid: false, Error: "token is invalid or expired"}
	}

	return TokenStatus{
		Valid:     true,
		UserName:  profile.Name,
		UserEmail: profile.Email,
	}
}

// ugcPost is the UGC Posts API share payload.
type ugcPost struct {
	Author          string         `json:"author"`
	LifecycleState  string         `json:"lifecycleState"`
	SpecificContent map[string]any `json:"specificContent"`
	Visibility      map[string]any `json:"visibility"`
}

// Post publishes text as a public share on the member's profile.
func (c *Client) Post(ctx context.Context, content string) PostResult {
	if c.accessToken == "" {
		return PostResult{Success: false, Error: "no access token provided"}
	}

	profile, err := c.FetchProfile(ctx)
	if err != nil {
		return PostResult{Success: false, Error: fmt.Sprintf("failed to fetch user profile: %v", err)}
	}
	if profile.Sub == "" {
		return PostResult{Success: false, Error: "could not get user ID from profile"}
	}

	payload := ugcPost{
		Author:         "urn:li:person:" + profile.Sub,
		LifecycleState: "PUBLISHED",
		SpecificContent: map[string]any{
			"com.linkedin.ugc.ShareContent": map[string]any{
				"shareCommentary":    map[string]any{"text": content},
				"shareMediaCategory": "NONE",
			},
		},
		Visibility: map[string]any{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return PostResult{Success: false, Error: fmt.Sprintf("marshal payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ugcPosts", bytes.NewReader(body))
	if err != nil {
		return PostResult{Success: false, Error: fmt.Sprintf("create request: %v", err)}
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return PostResult{Success: false, Error: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return PostResult{
			Success: false,
			Error:   fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(raw)),
		}
	}

	postID := resp.Header.Get("X-RestLi-Id")
	if postID == "" {
		postID = "unknown"
	}

	return PostResult{Success: true, PostID: postID}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
}
