package geminiclient

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Response is the closed set of replies the generative language endpoint can
// return. Exactly one concrete variant exists per decoded payload:
//
//   - *GenerateContentResponse: successful generation result
//   - *CountTokensResponse: result of a token-counting call
//   - *ErrorResponse: transported successfully, but the request failed
//
// Callers are expected to handle all three variants exhaustively; a type
// switch with a default branch returning an error is the intended pattern.
type Response interface {
	responseVariant()
}

// GenerateContentResponse is the successful result of a generation call.
type GenerateContentResponse struct {
	// Candidates is the ordered list of generated output options.
	// Nil/empty means the service returned no usable output (e.g., the
	// prompt was fully filtered - check PromptFeedback).
	Candidates []*Candidate `json:"candidates,omitempty"`

	// PromptFeedback contains moderation feedback about the input prompt
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`

	// UsageMetadata contains token accounting for this call
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`

	// ModelVersion is the exact model version that served the request
	ModelVersion string `json:"modelVersion,omitempty"`
}

// Text concatenates the text parts of the first candidate.
// Returns an empty string if there are no candidates.
func (r *GenerateContentResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0].Text()
}

// Blocked returns true if the prompt was blocked and no candidates were produced
func (r *GenerateContentResponse) Blocked() bool {
	return len(r.Candidates) == 0 && r.PromptFeedback.Blocked()
}

// CountTokensResponse is the result of a token-counting call.
type CountTokensResponse struct {
	// TotalTokens is the number of tokens the model would see for the
	// given request. Always non-negative.
	TotalTokens int `json:"totalTokens"`
}

// ErrorResponse is an application-level failure delivered in the response
// body. The transport succeeded; the request did not. This is a normal
// variant the caller branches on, not a decoder fault.
type ErrorResponse struct {
	// Error is the structured error record from the service
	Error *APIError `json:"error"`
}

func (*GenerateContentResponse) responseVariant() {}
func (*CountTokensResponse) responseVariant()     {}
func (*ErrorResponse) responseVariant()           {}

// Fields that commit a payload to the generation-reply shape.
var generationFields = []string{"candidates", "promptFeedback", "usageMetadata", "modelVersion"}

// DecodeResponse classifies a raw response body into exactly one Response
// variant. Classification is structural, by field presence, in a fixed
// priority order:
//
//  1. "error" present       -> *ErrorResponse
//  2. "totalTokens" present -> *CountTokensResponse
//  3. any generation field  -> *GenerateContentResponse
//
// The ordering matters: a payload carrying both an error envelope and
// candidate-like fields classifies as an error. A payload matching none of
// the three shapes (including an empty object) fails with a
// *MalformedResponseError wrapping ErrMalformedResponse.
//
// Decoding is a pure function of its input: no state, no side effects, safe
// to call concurrently, and the same payload always yields a structurally
// equal result.
func DecodeResponse(raw []byte) (Response, error) {
	if !gjson.ValidBytes(raw) {
		return nil, newMalformedError("response body is not valid JSON")
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, newMalformedError(fmt.Sprintf("response body is %s, expected a JSON object", root.Type))
	}

	if errField := root.Get("error"); errField.Exists() {
		return decodeErrorResponse(raw, errField)
	}

	if tokField := root.Get("totalTokens"); tokField.Exists() {
		return decodeCountTokensResponse(raw, tokField)
	}

	for _, field := range generationFields {
		if root.Get(field).Exists() {
			return decodeGenerateContentResponse(raw)
		}
	}

	return nil, newMalformedError("response body matches no recognized shape")
}

// decodeErrorResponse unmarshals a payload already classified as an error.
func decodeErrorResponse(raw []byte, errField gjson.Result) (*ErrorResponse, error) {
	if !errField.IsObject() {
		return nil, newMalformedError(fmt.Sprintf("error field is %s, expected a JSON object", errField.Type))
	}

	var resp ErrorResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, newMalformedError(fmt.Sprintf("error response does not unmarshal: %v", err))
	}
	if resp.Error == nil {
		return nil, newMalformedError("error response has no error record")
	}
	return &resp, nil
}

// decodeCountTokensResponse unmarshals a payload already classified as a
// token count. The field must be a non-negative integer.
func decodeCountTokensResponse(raw []byte, tokField gjson.Result) (*CountTokensResponse, error) {
	if tokField.Type != gjson.Number {
		return nil, newMalformedError(fmt.Sprintf("totalTokens is %s, expected a number", tokField.Type))
	}
	if tokField.Num != float64(int64(tokField.Num)) {
		return nil, newMalformedError(fmt.Sprintf("totalTokens %v is not an integer", tokField.Num))
	}
	if tokField.Int() < 0 {
		return nil, newMalformedError(fmt.Sprintf("totalTokens %d is negative", tokField.Int()))
	}

	var resp CountTokensResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, newMalformedError(fmt.Sprintf("token count response does not unmarshal: %v", err))
	}
	return &resp, nil
}

// decodeGenerateContentResponse unmarshals a payload already classified as a
// generation reply. Zero candidates is a valid result, distinct from absent.
func decodeGenerateContentResponse(raw []byte) (*GenerateContentResponse, error) {
	var resp GenerateContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, newMalformedError(fmt.Sprintf("generation response does not unmarshal: %v", err))
	}
	return &resp, nil
}
