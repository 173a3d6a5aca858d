package geminiclient

// GenerationConfig contains sampling parameters for a generation call.
// All fields are optional pointers to distinguish "not set" from "set to zero value".
type GenerationConfig struct {
	// Temperature controls randomness (0.0-2.0)
	// 0.0 = deterministic, higher = more random
	Temperature *float64 `json:"temperature,omitempty"`

	// TopP (nucleus sampling) - cumulative probability cutoff (0.0-1.0)
	TopP *float64 `json:"topP,omitempty"`

	// TopK limits sampling to the top K tokens
	TopK *int `json:"topK,omitempty"`

	// CandidateCount is the number of candidates to generate (>= 1)
	CandidateCount *int `json:"candidateCount,omitempty"`

	// MaxOutputTokens caps the number of tokens to generate
	MaxOutputTokens *int `json:"maxOutputTokens,omitempty"`

	// StopSequences - generation stops if any of these are generated
	StopSequences []string `json:"stopSequences,omitempty"`

	// ResponseMIMEType requests a specific output format
	// Values: "text/plain" (default), "application/json"
	ResponseMIMEType *string `json:"responseMimeType,omitempty"`
}

// ValidateGenerationConfig validates sampling parameters before a request is sent.
func ValidateGenerationConfig(cfg *GenerationConfig) error {
	if cfg == nil {
		return nil // nil config is valid
	}

	if cfg.Temperature != nil {
		if *cfg.Temperature < 0.0 || *cfg.Temperature > 2.0 {
			return &ValidationError{
				Field:  "temperature",
				Value:  *cfg.Temperature,
				Reason: "must be between 0.0 and 2.0",
				Err:    ErrInvalidRequest,
			}
		}
	}

	if cfg.TopP != nil {
		if *cfg.TopP < 0.0 || *cfg.TopP > 1.0 {
			return &ValidationError{
				Field:  "topP",
				Value:  *cfg.TopP,
				Reason: "must be between 0.0 and 1.0",
				Err:    ErrInvalidRequest,
			}
		}
	}

	if cfg.TopK != nil {
		if *cfg.TopK < 1 {
			return &ValidationError{
				Field:  "topK",
				Value:  *cfg.TopK,
				Reason: "must be positive",
				Err:    ErrInvalidRequest,
			}
		}
	}

	if cfg.CandidateCount != nil {
		if *cfg.CandidateCount < 1 {
			return &ValidationError{
				Field:  "candidateCount",
				Value:  *cfg.CandidateCount,
				Reason: "must be at least 1",
				Err:    ErrInvalidRequest,
			}
		}
	}

	if cfg.MaxOutputTokens != nil {
		if *cfg.MaxOutputTokens < 1 {
			return &ValidationError{
				Field:  "maxOutputTokens",
				Value:  *cfg.MaxOutputTokens,
				Reason: "must be positive",
				Err:    ErrInvalidRequest,
			}
		}
	}

	if cfg.ResponseMIMEType != nil {
		switch *cfg.ResponseMIMEType {
		case "text/plain", "application/json":
		default:
			return &ValidationError{
				Field:  "responseMimeType",
				Value:  *cfg.ResponseMIMEType,
				Reason: "must be 'text/plain' or 'application/json'",
				Err:    ErrInvalidRequest,
			}
		}
	}

	return nil
}

// ValidateSafetySettings validates safety threshold overrides.
func ValidateSafetySettings(settings []*SafetySetting) error {
	validThresholds := map[string]bool{
		ThresholdBlockNone:           true,
		ThresholdBlockOnlyHigh:       true,
		ThresholdBlockMediumAndAbove: true,
		ThresholdBlockLowAndAbove:    true,
	}

	for _, setting := range settings {
		if setting == nil {
			continue
		}
		if setting.Category == "" {
			return &ValidationError{
				Field:  "safetySettings.category",
				Value:  setting.Category,
				Reason: "category is required",
				Err:    ErrInvalidRequest,
			}
		}
		if !validThresholds[setting.Threshold] {
			return &ValidationError{
				Field:  "safetySettings.threshold",
				Value:  setting.Threshold,
				Reason: "unknown threshold",
				Err:    ErrInvalidRequest,
			}
		}
	}

	return nil
}

// GetMaxOutputTokens returns maxOutputTokens with default fallback
func (cfg *GenerationConfig) GetMaxOutputTokens(defaultValue int) int {
	if cfg != nil && cfg.MaxOutputTokens != nil {
		return *cfg.MaxOutputTokens
	}
	return defaultValue
}

// GetTemperature returns temperature with default fallback
func (cfg *GenerationConfig) GetTemperature(defaultValue float64) float64 {
	if cfg != nil && cfg.Temperature != nil {
		return *cfg.Temperature
	}
	return defaultValue
}

// GetCandidateCount returns candidateCount with default fallback
func (cfg *GenerationConfig) GetCandidateCount(defaultValue int) int {
	if cfg != nil && cfg.CandidateCount != nil {
		return *cfg.CandidateCount
	}
	return defaultValue
}
