package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dayooguns/tompri/pkg/engine"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".tompri.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_MissingDefaultFile(t *testing.T) {
	// t.Chdir requires Go 1.24; replicate it for older toolchains.
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weights != engine.DefaultWeights() {
		t.Errorf("weights = %+v, want defaults", cfg.Weights)
	}
	if cfg.Output.Format != "terminal" {
		t.Errorf("format = %q, want terminal", cfg.Output.Format)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Serve.Addr)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("explicitly named missing file should be an error")
	}
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `
version: "1"
weights:
  business_impact: 40
  feasibility: 30
  political: 20
  foundation: 10
tiers:
  priority1: 4.5
  priority2: 3.5
  priority3: 2.5
output:
  format: json
  verbose: true
serve:
  addr: ":9090"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weights.BusinessImpact != 40 || cfg.Weights.Foundation != 10 {
		t.Errorf("weights = %+v", cfg.Weights)
	}
	th := cfg.Tiers.Thresholds()
	if th.Priority1 != 4.5 || th.Priority2 != 3.5 || th.Priority3 != 2.5 {
		t.Errorf("thresholds = %+v", th)
	}
	if cfg.Output.Format != "json" || !cfg.Output.Verbose {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Serve.Addr)
	}
}

func TestLoadConfig_PartialFileGetsDefaults(t *testing.T) {
	path := writeConfig(t, `
version: "1"
output:
  format: markdown
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weights != engine.DefaultWeights() {
		t.Errorf("weights = %+v, want defaults", cfg.Weights)
	}
	if cfg.Tiers.Priority1 != engine.DefaultPriority1Threshold {
		t.Errorf("priority1 = %v", cfg.Tiers.Priority1)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("format = %q", cfg.Output.Format)
	}
}

func TestLoadConfig_InvalidWeights(t *testing.T) {
	path := writeConfig(t, `
weights:
  business_impact: 50
  feasibility: 30
  political: 20
  foundation: 20
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("weights summing to 120 should be rejected")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "weights: [not, a, map]")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed yaml should be an error")
	}
}
