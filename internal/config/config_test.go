package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "Defaults with gemini key",
			env:  map[string]string{"GEMINI_API_KEY": "test-key"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.ServerPort != "8080" {
					t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
				}
				if cfg.LLMProvider != ProviderGemini {
					t.Errorf("LLMProvider = %q, want gemini", cfg.LLMProvider)
				}
				if cfg.GeneratorModelName != "gemini-2.5-flash" {
					t.Errorf("GeneratorModelName = %q, want gemini-2.5-flash", cfg.GeneratorModelName)
				}
				if cfg.Logging.Level != "info" {
					t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
				}
			},
		},
		{
			name:    "Gemini provider without key",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name: "Ollama provider needs no key",
			env:  map[string]string{"LLM_PROVIDER": "ollama"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.GeneratorModelName != "gemma3:latest" {
					t.Errorf("GeneratorModelName = %q, want gemma3:latest", cfg.GeneratorModelName)
				}
			},
		},
		{
			name: "Explicit model overrides default",
			env: map[string]string{
				"GEMINI_API_KEY":       "test-key",
				"GENERATOR_MODEL_NAME": "gemini-2.5-pro",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.GeneratorModelName != "gemini-2.5-pro" {
					t.Errorf("GeneratorModelName = %q, want gemini-2.5-pro", cfg.GeneratorModelName)
				}
			},
		},
		{
			name:    "Unsupported provider",
			env:     map[string]string{"LLM_PROVIDER": "bedrock"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			t.Chdir(t.TempDir()) // keep any local .env out of the test
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
