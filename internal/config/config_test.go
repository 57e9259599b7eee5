package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GO_ENV", "LOG_LEVEL", "LOCATIONS_FILE", "INCIDENT_COUNT", "RANDOM_SEED",
		"INSIGHT_TIMEOUT", "AWS_ACCESS_KEY", "AWS_SECRET_KEY", "AWS_REGION", "BEDROCK_MODEL_ID",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || !cfg.IsDevelopment() || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.IncidentCount != 50 || cfg.RandomSeed != 0 || cfg.InsightTimeout != 30*time.Second {
		t.Fatalf("unexpected generation defaults: %+v", cfg)
	}
	if cfg.Bedrock.Region != "us-east-1" || cfg.Bedrock.ModelID != "meta.llama3-70b-instruct-v1:0" {
		t.Fatalf("unexpected bedrock defaults: %+v", cfg.Bedrock)
	}
	if cfg.Bedrock.AccessKey != "" || cfg.Bedrock.SecretKey != "" {
		t.Fatalf("credentials should default to empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GO_ENV", "production")
	t.Setenv("INCIDENT_COUNT", "120")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("INSIGHT_TIMEOUT", "5s")
	t.Setenv("AWS_ACCESS_KEY", "AKIAEXAMPLE")
	t.Setenv("AWS_SECRET_KEY", "secret")
	t.Setenv("AWS_REGION", "ap-south-1")

	cfg := Load()
	if cfg.Port != "9090" || cfg.IsDevelopment() {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
	if cfg.IncidentCount != 120 || cfg.RandomSeed != 42 || cfg.InsightTimeout != 5*time.Second {
		t.Fatalf("unexpected generation config: %+v", cfg)
	}
	if cfg.Bedrock.AccessKey != "AKIAEXAMPLE" || cfg.Bedrock.SecretKey != "secret" || cfg.Bedrock.Region != "ap-south-1" {
		t.Fatalf("unexpected bedrock config: %+v", cfg.Bedrock)
	}
}

func TestLoadMalformedNumbersFallBack(t *testing.T) {
	t.Setenv("INCIDENT_COUNT", "many")
	t.Setenv("RANDOM_SEED", "-3")
	t.Setenv("INSIGHT_TIMEOUT", "soon")

	cfg := Load()
	if cfg.IncidentCount != 50 || cfg.RandomSeed != 0 || cfg.InsightTimeout != 30*time.Second {
		t.Fatalf("malformed values should fall back to defaults: %+v", cfg)
	}
}
