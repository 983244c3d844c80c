package hubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client is a cookie-aware SDK for the hub API. The session cookie issued at
// login is held in the client's cookie jar, so one Client corresponds to one
// browser-like session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client with its own cookie jar.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do performs a JSON request and decodes the response into target (which may
// be nil for responses whose body the caller ignores). Non-2xx responses come
// back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er ErrorResponse
		if json.Unmarshal(raw, &er) == nil && er.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Code: er.Error, Description: er.ErrorDescription}
		}
		return &APIError{StatusCode: resp.StatusCode, Code: ErrorCodeServerError, Description: string(raw)}
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ============================================================================
// Auth
// ============================================================================

func (c *Client) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/logout", nil, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/forgot-password", ForgotPasswordRequest{Email: email}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/reset-password/"+token, ResetPasswordRequest{Password: password}, nil)
}

func (c *Client) Me(ctx context.Context) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodGet, "/v1/me", nil, &out)
	return out, err
}

func (c *Client) UpdateName(ctx context.Context, name string) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPatch, "/v1/me", UpdateNameRequest{Name: name}, &out)
	return out, err
}

// ============================================================================
// Clients
// ============================================================================

func (c *Client) ListClients(ctx context.Context) ([]ClientResponse, error) {
	var out []ClientResponse
	err := c.do(ctx, http.MethodGet, "/v1/clients", nil, &out)
	return out, err
}

func (c *Client) CreateClient(ctx context.Context, req ClientRequest) (ClientResponse, error) {
	var out ClientResponse
	err := c.do(ctx, http.MethodPost, "/v1/clients", req, &out)
	return out, err
}

func (c *Client) GetClient(ctx context.Context, id string) (ClientResponse, error) {
	var out ClientResponse
	err := c.do(ctx, http.MethodGet, "/v1/clients/"+id, nil, &out)
	return out, err
}

func (c *Client) UpdateClient(ctx context.Context, id string, req ClientRequest) (ClientResponse, error) {
	var out ClientResponse
	err := c.do(ctx, http.MethodPut, "/v1/clients/"+id, req, &out)
	return out, err
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/clients/"+id, nil, nil)
}

// ============================================================================
// Projects
// ============================================================================

func (c *Client) ListProjects(ctx context.Context) ([]ProjectResponse, error) {
	var out []ProjectResponse
	err := c.do(ctx, http.MethodGet, "/v1/projects", nil, &out)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (ProjectResponse, error) {
	var out ProjectResponse
	err := c.do(ctx, http.MethodPost, "/v1/projects", req, &out)
	return out, err
}

func (c *Client) GetProject(ctx context.Context, id string) (ProjectResponse, error) {
	var out ProjectResponse
	err := c.do(ctx, http.MethodGet, "/v1/projects/"+id, nil, &out)
	return out, err
}

func (c *Client) UpdateProject(ctx context.Context, id string, req ProjectRequest) (ProjectResponse, error) {
	var out ProjectResponse
	err := c.do(ctx, http.MethodPut, "/v1/projects/"+id, req, &out)
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/projects/"+id, nil, nil)
}

// ============================================================================
// Songs and versions
// ============================================================================

func (c *Client) ListSongs(ctx context.Context, projectID string) ([]SongResponse, error) {
	var out []SongResponse
	err := c.do(ctx, http.MethodGet, "/v1/projects/"+projectID+"/songs", nil, &out)
	return out, err
}

func (c *Client) CreateSong(ctx context.Context, projectID string, req SongRequest) (SongResponse, error) {
	var out SongResponse
	err := c.do(ctx, http.MethodPost, "/v1/projects/"+projectID+"/songs", req, &out)
	return out, err
}

func (c *Client) RenameSong(ctx context.Context, songID, name string) (SongResponse, error) {
	var out SongResponse
	err := c.do(ctx, http.MethodPatch, "/v1/songs/"+songID, RenameSongRequest{Name: name}, &out)
	return out, err
}

func (c *Client) DeleteSong(ctx context.Context, songID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/songs/"+songID, nil, nil)
}

func (c *Client) AddVersion(ctx context.Context, songID string, req VersionRequest) (VersionResponse, error) {
	var out VersionResponse
	err := c.do(ctx, http.MethodPost, "/v1/songs/"+songID+"/versions", req, &out)
	return out, err
}

func (c *Client) DeleteVersion(ctx context.Context, versionID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/versions/"+versionID, nil, nil)
}

// ============================================================================
// Share links and comments
// ============================================================================

func (c *Client) CreateShareLink(ctx context.Context, projectID string) (ShareLinkResponse, error) {
	var out ShareLinkResponse
	err := c.do(ctx, http.MethodPost, "/v1/projects/"+projectID+"/shares", nil, &out)
	return out, err
}

func (c *Client) RevokeShareLink(ctx context.Context, linkID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/shares/"+linkID, nil, nil)
}

// GetSharedProject fetches the public read-only view behind a share link.
// No session is needed; the token authorizes.
func (c *Client) GetSharedProject(ctx context.Context, projectID, token string) (SharedProjectResponse, error) {
	var out SharedProjectResponse
	err := c.do(ctx, http.MethodGet, "/v1/share/"+projectID+"/"+token, nil, &out)
	return out, err
}

// PostComment leaves feedback through a share link.
func (c *Client) PostComment(ctx context.Context, projectID, token string, req CommentRequest) (CommentResponse, error) {
	var out CommentResponse
	err := c.do(ctx, http.MethodPost, "/v1/share/"+projectID+"/"+token+"/comments", req, &out)
	return out, err
}

func (c *Client) ListComments(ctx context.Context, projectID string) ([]CommentResponse, error) {
	var out []CommentResponse
	err := c.do(ctx, http.MethodGet, "/v1/projects/"+projectID+"/comments", nil, &out)
	return out, err
}

// ============================================================================
// Usage
// ============================================================================

func (c *Client) Usage(ctx context.Context) (UsageResponse, error) {
	var out UsageResponse
	err := c.do(ctx, http.MethodGet, "/v1/usage", nil, &out)
	return out, err
}

// ============================================================================
// Health
// ============================================================================

// GetLiveness checks whether the process is up.
func (c *Client) GetLiveness(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}

// GetReadiness checks whether the service can reach its dependencies.
func (c *Client) GetReadiness(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}
