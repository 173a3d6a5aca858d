package geminiclient

import "encoding/json"

// Role constants for Content records
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// FinishReason indicates why a candidate stopped generating.
// Using a typed constant prevents typos and provides compile-time safety.
type FinishReason string

// Known finish reasons
const (
	FinishReasonUnspecified FinishReason = "FINISH_REASON_UNSPECIFIED"
	FinishReasonStop        FinishReason = "STOP"
	FinishReasonMaxTokens   FinishReason = "MAX_TOKENS"
	FinishReasonSafety      FinishReason = "SAFETY"
	FinishReasonRecitation  FinishReason = "RECITATION"
	FinishReasonOther       FinishReason = "OTHER"
)

// String returns the string representation of the finish reason
func (r FinishReason) String() string {
	return string(r)
}

// BlockReason indicates why a prompt was blocked before generation.
type BlockReason string

// Known block reasons
const (
	BlockReasonUnspecified BlockReason = "BLOCK_REASON_UNSPECIFIED"
	BlockReasonSafety      BlockReason = "SAFETY"
	BlockReasonOther       BlockReason = "OTHER"
)

// HarmCategory identifies a moderation category for safety ratings and settings.
type HarmCategory string

// Known harm categories
const (
	HarmCategoryHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// HarmProbability grades how likely content falls into a harm category.
type HarmProbability string

// Known harm probability levels
const (
	HarmProbabilityNegligible HarmProbability = "NEGLIGIBLE"
	HarmProbabilityLow        HarmProbability = "LOW"
	HarmProbabilityMedium     HarmProbability = "MEDIUM"
	HarmProbabilityHigh       HarmProbability = "HIGH"
)

// Content is a single turn in the conversation: a role plus ordered parts.
type Content struct {
	// Role is either "user" or "model"
	Role string `json:"role,omitempty"`

	// Parts is the ordered list of content parts for this turn
	Parts []*Part `json:"parts"`
}

// Part is one piece of multimodal content within a Content record.
// Exactly one of the value fields is set per part.
type Part struct {
	// Text contains plain text content
	Text string `json:"text,omitempty"`

	// InlineData contains base64-encoded media (images, audio)
	InlineData *Blob `json:"inlineData,omitempty"`

	// FunctionCall is a tool invocation requested by the model
	FunctionCall *FunctionCall `json:"functionCall,omitempty"`

	// FunctionResponse is the client-supplied result of a tool invocation
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

// Blob holds inline media data.
type Blob struct {
	// MIMEType is the IANA media type (e.g., "image/png")
	MIMEType string `json:"mimeType"`

	// Data is the base64-encoded payload
	Data string `json:"data"`
}

// FunctionCall is a tool invocation emitted by the model.
type FunctionCall struct {
	// Name is the declared function name
	Name string `json:"name"`

	// Args contains the model-provided arguments as raw JSON
	Args json.RawMessage `json:"args,omitempty"`
}

// FunctionResponse carries a tool result back to the model.
type FunctionResponse struct {
	// Name is the declared function name
	Name string `json:"name"`

	// Response contains the tool output as raw JSON
	Response json.RawMessage `json:"response,omitempty"`
}

// Candidate is one generated output option.
type Candidate struct {
	// Content is the generated content for this candidate
	Content *Content `json:"content,omitempty"`

	// FinishReason indicates why generation stopped (e.g., "STOP", "MAX_TOKENS")
	FinishReason FinishReason `json:"finishReason,omitempty"`

	// Index is the candidate's position in the response (0-indexed)
	Index int `json:"index,omitempty"`

	// SafetyRatings contains per-category moderation ratings for this candidate
	SafetyRatings []*SafetyRating `json:"safetyRatings,omitempty"`

	// CitationMetadata lists sources the candidate content was derived from
	CitationMetadata *CitationMetadata `json:"citationMetadata,omitempty"`
}

// Text concatenates the text parts of the candidate's content.
// Returns an empty string if the candidate has no content or no text parts.
func (c *Candidate) Text() string {
	if c.Content == nil {
		return ""
	}
	var out string
	for _, part := range c.Content.Parts {
		if part != nil {
			out += part.Text
		}
	}
	return out
}

// FunctionCalls returns all function call parts in the candidate's content.
func (c *Candidate) FunctionCalls() []*FunctionCall {
	if c.Content == nil {
		return nil
	}
	var calls []*FunctionCall
	for _, part := range c.Content.Parts {
		if part != nil && part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}
	return calls
}

// Stopped returns true if the candidate finished naturally (not truncated or filtered)
func (c *Candidate) Stopped() bool {
	return c.FinishReason == FinishReasonStop
}

// Truncated returns true if generation was cut off by the output token limit
func (c *Candidate) Truncated() bool {
	return c.FinishReason == FinishReasonMaxTokens
}

// SafetyRating is a per-category moderation verdict.
type SafetyRating struct {
	// Category is the harm category being rated
	Category HarmCategory `json:"category"`

	// Probability grades how likely the content falls into the category
	Probability HarmProbability `json:"probability"`

	// Blocked is true if this rating caused the content to be withheld
	Blocked bool `json:"blocked,omitempty"`
}

// PromptFeedback describes moderation feedback about the input prompt.
// Present when the prompt itself (not the output) tripped a filter.
type PromptFeedback struct {
	// BlockReason is set when the prompt was blocked outright
	BlockReason BlockReason `json:"blockReason,omitempty"`

	// SafetyRatings contains per-category ratings for the prompt
	SafetyRatings []*SafetyRating `json:"safetyRatings,omitempty"`
}

// Blocked returns true if the prompt was blocked before any generation
func (f *PromptFeedback) Blocked() bool {
	return f != nil && f.BlockReason != "" && f.BlockReason != BlockReasonUnspecified
}

// CitationMetadata lists sources cited by generated content.
type CitationMetadata struct {
	CitationSources []*CitationSource `json:"citationSources,omitempty"`
}

// CitationSource is a single cited span.
type CitationSource struct {
	// StartIndex is the character position where the cited span starts (optional)
	StartIndex *int `json:"startIndex,omitempty"`

	// EndIndex is the character position where the cited span ends (optional)
	EndIndex *int `json:"endIndex,omitempty"`

	// URI is the cited resource location
	URI string `json:"uri,omitempty"`

	// License is the license of the cited source, if known
	License string `json:"license,omitempty"`
}

// UsageMetadata contains token accounting for a generation call.
type UsageMetadata struct {
	// PromptTokenCount is the number of tokens in the input
	PromptTokenCount int `json:"promptTokenCount,omitempty"`

	// CandidatesTokenCount is the number of tokens across all candidates
	CandidatesTokenCount int `json:"candidatesTokenCount,omitempty"`

	// TotalTokenCount is the sum of prompt and candidate tokens
	TotalTokenCount int `json:"totalTokenCount,omitempty"`
}
