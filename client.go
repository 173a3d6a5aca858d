package geminiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com"
	defaultAPIVersion = "v1beta"
	defaultTimeout    = 120 * time.Second
)

// Client talks to the generative language REST API.
//
// The zero value is not usable; construct with NewClient. Clients are safe
// for concurrent use: all state is set at construction time.
type Client struct {
	apiKey     string
	baseURL    string
	apiVersion string
	httpClient *http.Client
}

// ClientOption customizes a Client at construction time.
type ClientOption func(*Client)

// WithBaseURL overrides the service base URL. Useful for proxies and tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithAPIVersion overrides the API version path segment (default "v1beta").
func WithAPIVersion(version string) ClientOption {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithHTTPClient overrides the underlying HTTP client. Useful for custom
// timeouts, instrumentation, or plugging in a fake transport.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client with the given API key.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		apiVersion: defaultAPIVersion,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GenerateContent sends a generation request and returns the typed result.
//
// An application-level failure delivered in the response body (the
// ErrorResponse variant) is returned as an *APIError; errors.Is can match it
// against the sentinel taxonomy. A body in an unrecognized shape returns a
// *MalformedResponseError.
func (c *Client) GenerateContent(ctx context.Context, model string, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	if model == "" {
		return nil, &ValidationError{
			Field:  "model",
			Value:  model,
			Reason: "model is required",
			Err:    ErrInvalidModel,
		}
	}
	if req == nil || len(req.Contents) == 0 {
		return nil, &ValidationError{
			Field:  "contents",
			Value:  nil,
			Reason: "at least one content turn is required",
			Err:    ErrInvalidRequest,
		}
	}
	if err := ValidateGenerationConfig(req.GenerationConfig); err != nil {
		return nil, err
	}
	if err := ValidateSafetySettings(req.SafetySettings); err != nil {
		return nil, err
	}

	decoded, err := c.post(ctx, model, "generateContent", req)
	if err != nil {
		return nil, err
	}

	switch resp := decoded.(type) {
	case *GenerateContentResponse:
		return resp, nil
	case *ErrorResponse:
		return nil, resp.Error
	default:
		return nil, newMalformedError(fmt.Sprintf("generateContent returned unexpected variant %T", decoded))
	}
}

// CountTokens counts the tokens the model would see for the given contents.
func (c *Client) CountTokens(ctx context.Context, model string, req *CountTokensRequest) (*CountTokensResponse, error) {
	if model == "" {
		return nil, &ValidationError{
			Field:  "model",
			Value:  model,
			Reason: "model is required",
			Err:    ErrInvalidModel,
		}
	}
	if req == nil || len(req.Contents) == 0 {
		return nil, &ValidationError{
			Field:  "contents",
			Value:  nil,
			Reason: "at least one content turn is required",
			Err:    ErrInvalidRequest,
		}
	}

	decoded, err := c.post(ctx, model, "countTokens", req)
	if err != nil {
		return nil, err
	}

	switch resp := decoded.(type) {
	case *CountTokensResponse:
		return resp, nil
	case *ErrorResponse:
		return nil, resp.Error
	default:
		return nil, newMalformedError(fmt.Sprintf("countTokens returned unexpected variant %T", decoded))
	}
}

// post sends a JSON request to models/{model}:{method} and decodes the reply
// into one of the closed Response variants.
func (c *Client) post(ctx context.Context, model, method string, payload any) (Response, error) {
	httpReq, err := c.buildHTTPRequest(ctx, model, method, payload)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini HTTP request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	decoded, decodeErr := DecodeResponse(body)
	if decodeErr != nil {
		// The body told us nothing; fall back to the HTTP status.
		if httpResp.StatusCode != http.StatusOK {
			return nil, c.statusError(httpResp.StatusCode, body)
		}
		return nil, decodeErr
	}
	return decoded, nil
}

// buildHTTPRequest creates an HTTP request for the generative language API.
func (c *Client) buildHTTPRequest(ctx context.Context, model, method string, payload any) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/models/%s:%s", c.baseURL, c.apiVersion, url.PathEscape(model), method)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}

// statusError maps a non-200 status with an undecodable body onto the error
// taxonomy.
func (c *Client) statusError(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidAPIKey
	case http.StatusNotFound:
		return ErrInvalidModel
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w (HTTP %d)", ErrRateLimited, statusCode)
	default:
		if statusCode >= 500 {
			return fmt.Errorf("%w (HTTP %d)", ErrServiceUnavailable, statusCode)
		}
		return fmt.Errorf("gemini error (HTTP %d): %s", statusCode, string(body))
	}
}
