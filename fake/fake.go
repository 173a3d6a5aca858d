// Package fake provides an offline stand-in for the generative language API.
// It fabricates valid wire payloads with lorem ipsum content, so examples and
// tests can exercise the full client path without an API key.
package fake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	loremgen "github.com/bozaro/golorem"

	geminiclient "github.com/haowjy/meridian-gemini-go"
)

// Transport is an http.RoundTripper that mimics the generative language API.
// Plug it into a real Client via WithHTTPClient to develop offline.
//
// Behavior is driven by the model name:
//   - contains "blocked": no candidates, prompt feedback with a SAFETY block
//   - contains "error":   an error envelope (HTTP 400, INVALID_ARGUMENT)
//   - anything else:      lorem ipsum text candidates
type Transport struct {
	generator *loremgen.Lorem
}

// NewTransport creates a fake API transport.
func NewTransport() *Transport {
	return &Transport{
		generator: loremgen.New(),
	}
}

// NewClient creates a geminiclient.Client wired to a fake transport.
// The API key is accepted but never checked.
func NewClient(opts ...geminiclient.ClientOption) (*geminiclient.Client, error) {
	opts = append([]geminiclient.ClientOption{
		geminiclient.WithHTTPClient(&http.Client{Transport: NewTransport()}),
	}, opts...)
	return geminiclient.NewClient("fake-api-key", opts...)
}

// RoundTrip serves a fabricated response for the requested operation.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	model, method, ok := parseModelMethod(req.URL.Path)
	if !ok {
		return errorResponse(http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("unknown path: %s", req.URL.Path))
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}

	switch method {
	case "generateContent":
		return t.serveGenerateContent(model, body)
	case "countTokens":
		return t.serveCountTokens(body)
	default:
		return errorResponse(http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("unknown method: %s", method))
	}
}

// serveGenerateContent fabricates a generation reply for the given model.
func (t *Transport) serveGenerateContent(model string, body []byte) (*http.Response, error) {
	if strings.Contains(model, "error") {
		return errorResponse(http.StatusBadRequest, "INVALID_ARGUMENT",
			"request rejected by fake service (model name contains 'error')")
	}

	var req geminiclient.GenerateContentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return errorResponse(http.StatusBadRequest, "INVALID_ARGUMENT",
			fmt.Sprintf("request body does not parse: %v", err))
	}

	promptTokens := countWords(req.Contents)

	if strings.Contains(model, "blocked") {
		resp := &geminiclient.GenerateContentResponse{
			PromptFeedback: &geminiclient.PromptFeedback{
				BlockReason: geminiclient.BlockReasonSafety,
				SafetyRatings: []*geminiclient.SafetyRating{
					{
						Category:    geminiclient.HarmCategoryDangerousContent,
						Probability: geminiclient.HarmProbabilityHigh,
						Blocked:     true,
					},
				},
			},
			ModelVersion: model,
		}
		return jsonResponse(http.StatusOK, resp)
	}

	candidateCount := req.GenerationConfig.GetCandidateCount(1)
	candidates := make([]*geminiclient.Candidate, 0, candidateCount)
	outputTokens := 0
	for i := 0; i < candidateCount; i++ {
		text := t.generator.Paragraph(2, 4)
		outputTokens += len(strings.Fields(text))
		candidates = append(candidates, &geminiclient.Candidate{
			Content: &geminiclient.Content{
				Role:  geminiclient.RoleModel,
				Parts: []*geminiclient.Part{{Text: text}},
			},
			FinishReason: geminiclient.FinishReasonStop,
			Index:        i,
		})
	}

	resp := &geminiclient.GenerateContentResponse{
		Candidates: candidates,
		UsageMetadata: &geminiclient.UsageMetadata{
			PromptTokenCount:     promptTokens,
			CandidatesTokenCount: outputTokens,
			TotalTokenCount:      promptTokens + outputTokens,
		},
		ModelVersion: model,
	}
	return jsonResponse(http.StatusOK, resp)
}

// serveCountTokens fabricates a token count from the request word count.
func (t *Transport) serveCountTokens(body []byte) (*http.Response, error) {
	var req geminiclient.CountTokensRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return errorResponse(http.StatusBadRequest, "INVALID_ARGUMENT",
			fmt.Sprintf("request body does not parse: %v", err))
	}

	resp := &geminiclient.CountTokensResponse{
		TotalTokens: countWords(req.Contents),
	}
	return jsonResponse(http.StatusOK, resp)
}

// parseModelMethod extracts the model and method from a path like
// "/v1beta/models/gemini-2.5-flash:generateContent".
func parseModelMethod(path string) (model, method string, ok bool) {
	idx := strings.LastIndex(path, "/models/")
	if idx < 0 {
		return "", "", false
	}
	segment := path[idx+len("/models/"):]
	model, method, found := strings.Cut(segment, ":")
	if !found || model == "" || method == "" {
		return "", "", false
	}
	return model, method, true
}

// countWords estimates tokens as the word count of all text parts.
func countWords(contents []*geminiclient.Content) int {
	total := 0
	for _, content := range contents {
		if content == nil {
			continue
		}
		for _, part := range content.Parts {
			if part != nil {
				total += len(strings.Fields(part.Text))
			}
		}
	}
	return total
}

// jsonResponse wraps a payload in an *http.Response.
func jsonResponse(status int, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(body)),
	}, nil
}

// errorResponse wraps an error envelope in an *http.Response.
func errorResponse(status int, statusName, message string) (*http.Response, error) {
	return jsonResponse(status, &geminiclient.ErrorResponse{
		Error: &geminiclient.APIError{
			Code:    status,
			Message: message,
			Status:  statusName,
		},
	})
}
