package geminiclient

import (
	"errors"
	"testing"
)

func TestValidateGenerationConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *GenerationConfig
		wantErr bool
	}{
		{"nil config", nil, false},
		{"empty config", &GenerationConfig{}, false},
		{"valid temperature", &GenerationConfig{Temperature: float64Ptr(0.7)}, false},
		{"temperature too high", &GenerationConfig{Temperature: float64Ptr(2.1)}, true},
		{"temperature negative", &GenerationConfig{Temperature: float64Ptr(-0.1)}, true},
		{"valid topP", &GenerationConfig{TopP: float64Ptr(0.95)}, false},
		{"topP too high", &GenerationConfig{TopP: float64Ptr(1.5)}, true},
		{"valid topK", &GenerationConfig{TopK: intPtr(40)}, false},
		{"topK zero", &GenerationConfig{TopK: intPtr(0)}, true},
		{"valid candidate count", &GenerationConfig{CandidateCount: intPtr(2)}, false},
		{"candidate count zero", &GenerationConfig{CandidateCount: intPtr(0)}, true},
		{"valid max output tokens", &GenerationConfig{MaxOutputTokens: intPtr(1024)}, false},
		{"max output tokens zero", &GenerationConfig{MaxOutputTokens: intPtr(0)}, true},
		{"valid mime type", &GenerationConfig{ResponseMIMEType: stringPtr("application/json")}, false},
		{"unknown mime type", &GenerationConfig{ResponseMIMEType: stringPtr("text/html")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGenerationConfig(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateGenerationConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("expected errors.Is(err, ErrInvalidRequest), got %v", err)
			}
		})
	}
}

func TestValidateSafetySettings(t *testing.T) {
	tests := []struct {
		name     string
		settings []*SafetySetting
		wantErr  bool
	}{
		{"nil settings", nil, false},
		{
			"valid setting",
			[]*SafetySetting{{Category: HarmCategoryHarassment, Threshold: ThresholdBlockOnlyHigh}},
			false,
		},
		{
			"missing category",
			[]*SafetySetting{{Threshold: ThresholdBlockNone}},
			true,
		},
		{
			"unknown threshold",
			[]*SafetySetting{{Category: HarmCategoryHateSpeech, Threshold: "BLOCK_EVERYTHING"}},
			true,
		},
		{
			"nil entries skipped",
			[]*SafetySetting{nil, {Category: HarmCategoryDangerousContent, Threshold: ThresholdBlockNone}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSafetySettings(tt.settings)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSafetySettings() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerationConfig_Getters(t *testing.T) {
	var nilCfg *GenerationConfig
	if got := nilCfg.GetMaxOutputTokens(4096); got != 4096 {
		t.Errorf("GetMaxOutputTokens on nil = %d, want 4096", got)
	}
	if got := nilCfg.GetTemperature(1.0); got != 1.0 {
		t.Errorf("GetTemperature on nil = %f, want 1.0", got)
	}
	if got := nilCfg.GetCandidateCount(1); got != 1 {
		t.Errorf("GetCandidateCount on nil = %d, want 1", got)
	}

	cfg := &GenerationConfig{
		MaxOutputTokens: intPtr(256),
		Temperature:     float64Ptr(0.2),
		CandidateCount:  intPtr(3),
	}
	if got := cfg.GetMaxOutputTokens(4096); got != 256 {
		t.Errorf("GetMaxOutputTokens = %d, want 256", got)
	}
	if got := cfg.GetTemperature(1.0); got != 0.2 {
		t.Errorf("GetTemperature = %f, want 0.2", got)
	}
	if got := cfg.GetCandidateCount(1); got != 3 {
		t.Errorf("GetCandidateCount = %d, want 3", got)
	}
}
