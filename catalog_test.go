package geminiclient

import (
	"math"
	"testing"
)

func TestCatalogRegistry_EmbeddedModels(t *testing.T) {
	registry := GetCatalogRegistry()

	if !registry.SupportsModel("gemini-2.5-flash") {
		t.Error("expected gemini-2.5-flash in the embedded catalog")
	}
	if registry.SupportsModel("gpt-4") {
		t.Error("did not expect gpt-4 in the catalog")
	}

	info, err := registry.GetModelInfo("gemini-2.5-pro")
	if err != nil {
		t.Fatalf("GetModelInfo: %v", err)
	}
	if info.ContextWindow != 1048576 {
		t.Errorf("ContextWindow = %d, want 1048576", info.ContextWindow)
	}
	if !info.Features.Tools || !info.Features.Vision {
		t.Errorf("Features = %+v, want tools and vision", info.Features)
	}
}

func TestCatalogRegistry_GetModelInfo_Unknown(t *testing.T) {
	registry := GetCatalogRegistry()

	if _, err := registry.GetModelInfo("no-such-model"); err == nil {
		t.Error("expected error for unknown model")
	}
	if registry.SupportsTools("no-such-model") {
		t.Error("SupportsTools should be false for unknown models")
	}
	if registry.SupportsVision("no-such-model") {
		t.Error("SupportsVision should be false for unknown models")
	}
}

func TestCatalogRegistry_RegisterModel(t *testing.T) {
	registry := GetCatalogRegistry()

	registry.RegisterModel("gemini-custom-test", ModelInfo{
		ContextWindow:   32768,
		MaxOutputTokens: 2048,
		Features:        ModelFeatures{Tools: true},
		Pricing:         PricingInfo{InputPer1M: 1.0, OutputPer1M: 2.0},
	})

	if !registry.SupportsModel("gemini-custom-test") {
		t.Fatal("expected registered model to resolve")
	}
	if !registry.SupportsTools("gemini-custom-test") {
		t.Error("expected registered model to support tools")
	}

	// Re-registering replaces the entry
	registry.RegisterModel("gemini-custom-test", ModelInfo{ContextWindow: 1})
	info, err := registry.GetModelInfo("gemini-custom-test")
	if err != nil {
		t.Fatalf("GetModelInfo: %v", err)
	}
	if info.ContextWindow != 1 {
		t.Errorf("ContextWindow = %d, want 1 after re-register", info.ContextWindow)
	}
}

func TestCatalogRegistry_EstimateCost(t *testing.T) {
	registry := GetCatalogRegistry()

	registry.RegisterModel("gemini-cost-test", ModelInfo{
		Pricing: PricingInfo{InputPer1M: 1.25, OutputPer1M: 10.0},
	})

	cost, err := registry.EstimateCost("gemini-cost-test", 1_000_000, 100_000)
	if err != nil {
		t.Fatalf("EstimateCost: %v", err)
	}
	if want := 1.25 + 1.0; math.Abs(cost-want) > 1e-9 {
		t.Errorf("cost = %f, want %f", cost, want)
	}

	if _, err := registry.EstimateCost("no-such-model", 1, 1); err == nil {
		t.Error("expected error for unknown model")
	}
}
