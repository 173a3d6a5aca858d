package geminiclient

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/models/gemini.yaml
var geminiCatalogYAML []byte

// Catalog Philosophy:
//
// This package provides MODEL METADATA for UX, pricing calculations, and informational purposes.
// It does NOT enforce validation - the service API is the source of truth.
//
// Use cases:
//  - Display model limits/features in UI
//  - Calculate pricing estimates
//  - Provide warnings (not errors)
//
// Catalog data may be outdated as new models/features are released.
// Library users can override the embedded catalog by:
//  1. Calling LoadCatalogFromFile() with custom YAML
//  2. Calling RegisterModel() programmatically
//
// The library trusts the service API to validate requests.

// ModelCatalog represents the full model catalog configuration
type ModelCatalog struct {
	Version     string               `yaml:"version"`      // Semantic version (e.g., "1.0.0")
	LastUpdated string               `yaml:"last_updated"` // ISO 8601 date (e.g., "2025-01-15")
	Models      map[string]ModelInfo `yaml:"models"`
}

// ModelInfo represents the capabilities of a specific model
type ModelInfo struct {
	ContextWindow   int           `yaml:"context_window"`
	MaxOutputTokens int           `yaml:"max_output_tokens"`
	Features        ModelFeatures `yaml:"features"`
	Pricing         PricingInfo   `yaml:"pricing"`
}

// ModelFeatures indicates which features a model supports
type ModelFeatures struct {
	Vision     bool `yaml:"vision"`
	Tools      bool `yaml:"tools"`
	JSONOutput bool `yaml:"json_output"`
}

// PricingInfo contains model pricing information
type PricingInfo struct {
	InputPer1M  float64 `yaml:"input_per_1m"`
	OutputPer1M float64 `yaml:"output_per_1m"`
}

// CatalogRegistry manages the model catalog
type CatalogRegistry struct {
	catalog ModelCatalog
	mu      sync.RWMutex
}

var (
	globalCatalog     *CatalogRegistry
	globalCatalogOnce sync.Once
)

// GetCatalogRegistry returns the global catalog registry (singleton)
func GetCatalogRegistry() *CatalogRegistry {
	globalCatalogOnce.Do(func() {
		globalCatalog = &CatalogRegistry{
			catalog: ModelCatalog{Models: make(map[string]ModelInfo)},
		}
		// Load embedded catalog
		if err := globalCatalog.loadEmbeddedCatalog(); err != nil {
			// Log error but don't panic - lookups will just miss
			fmt.Printf("Warning: failed to load embedded model catalog: %v\n", err)
		}
	})
	return globalCatalog
}

// loadEmbeddedCatalog loads the embedded YAML catalog
func (r *CatalogRegistry) loadEmbeddedCatalog() error {
	var catalog ModelCatalog
	if err := yaml.Unmarshal(geminiCatalogYAML, &catalog); err != nil {
		return fmt.Errorf("failed to unmarshal model catalog: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog = catalog

	return nil
}

// GetModelInfo returns catalog metadata for a specific model
func (r *CatalogRegistry) GetModelInfo(model string) (*ModelInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.catalog.Models[model]
	if !ok {
		return nil, fmt.Errorf("model %s not found in catalog", model)
	}
	return &info, nil
}

// SupportsModel checks if a model is present in the catalog
func (r *CatalogRegistry) SupportsModel(model string) bool {
	_, err := r.GetModelInfo(model)
	return err == nil
}

// SupportsTools checks if a model supports function calling
func (r *CatalogRegistry) SupportsTools(model string) bool {
	info, err := r.GetModelInfo(model)
	if err != nil {
		return false
	}
	return info.Features.Tools
}

// SupportsVision checks if a model accepts image input
func (r *CatalogRegistry) SupportsVision(model string) bool {
	info, err := r.GetModelInfo(model)
	if err != nil {
		return false
	}
	return info.Features.Vision
}

// EstimateCost estimates the cost in USD for the given token counts.
// Returns an error if the model is not in the catalog.
func (r *CatalogRegistry) EstimateCost(model string, inputTokens, outputTokens int) (float64, error) {
	info, err := r.GetModelInfo(model)
	if err != nil {
		return 0, err
	}
	cost := float64(inputTokens)/1e6*info.Pricing.InputPer1M +
		float64(outputTokens)/1e6*info.Pricing.OutputPer1M
	return cost, nil
}

// LoadCatalogFromFile loads a model catalog from a YAML file.
// This allows library users to override the embedded catalog with custom data.
// The file format should match the embedded YAML structure.
func (r *CatalogRegistry) LoadCatalogFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog ModelCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog = catalog

	return nil
}

// RegisterModel programmatically adds or replaces one catalog entry.
// This allows library users to define models in code rather than YAML.
func (r *CatalogRegistry) RegisterModel(model string, info ModelInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.catalog.Models == nil {
		r.catalog.Models = make(map[string]ModelInfo)
	}
	r.catalog.Models[model] = info
}

// LoadCatalogFromFile is a convenience function that calls the global registry's LoadCatalogFromFile.
func LoadCatalogFromFile(path string) error {
	return GetCatalogRegistry().LoadCatalogFromFile(path)
}

// RegisterModel is a convenience function that calls the global registry's RegisterModel.
func RegisterModel(model string, info ModelInfo) {
	GetCatalogRegistry().RegisterModel(model, info)
}
