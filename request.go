package geminiclient

// GenerateContentRequest contains the parameters for a generation call.
type GenerateContentRequest struct {
	// Contents is the conversation history, oldest turn first.
	// Each Content has a Role (user/model) and Parts.
	Contents []*Content `json:"contents"`

	// SystemInstruction is an optional system prompt applied to the whole request
	SystemInstruction *Content `json:"systemInstruction,omitempty"`

	// GenerationConfig contains sampling parameters (temperature, topP, etc.)
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`

	// SafetySettings adjusts per-category moderation thresholds
	SafetySettings []*SafetySetting `json:"safetySettings,omitempty"`

	// Tools declares functions the model may call
	Tools []*Tool `json:"tools,omitempty"`
}

// CountTokensRequest contains the parameters for a token-counting call.
// Token counting takes the same contents a generation call would.
type CountTokensRequest struct {
	Contents []*Content `json:"contents"`
}

// SafetySetting overrides the blocking threshold for one harm category.
type SafetySetting struct {
	// Category is the harm category to adjust
	Category HarmCategory `json:"category"`

	// Threshold is the blocking threshold
	// Values: "BLOCK_NONE", "BLOCK_ONLY_HIGH", "BLOCK_MEDIUM_AND_ABOVE", "BLOCK_LOW_AND_ABOVE"
	Threshold string `json:"threshold"`
}

// Safety threshold constants
const (
	ThresholdBlockNone           = "BLOCK_NONE"
	ThresholdBlockOnlyHigh       = "BLOCK_ONLY_HIGH"
	ThresholdBlockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"
	ThresholdBlockLowAndAbove    = "BLOCK_LOW_AND_ABOVE"
)

// Tool groups function declarations the model may invoke.
type Tool struct {
	FunctionDeclarations []*FunctionDeclaration `json:"functionDeclarations,omitempty"`
}

// FunctionDeclaration describes one callable function.
type FunctionDeclaration struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Parameters is a JSON schema describing the function arguments
	Parameters map[string]any `json:"parameters,omitempty"`
}

// NewTextPart creates a text part.
func NewTextPart(text string) *Part {
	return &Part{Text: text}
}

// NewUserContent creates a user turn from one or more parts.
func NewUserContent(parts ...*Part) *Content {
	return &Content{Role: RoleUser, Parts: parts}
}

// NewModelContent creates a model turn from one or more parts.
func NewModelContent(parts ...*Part) *Content {
	return &Content{Role: RoleModel, Parts: parts}
}

// NewUserText is shorthand for a single-part user text turn.
func NewUserText(text string) *Content {
	return NewUserContent(NewTextPart(text))
}
