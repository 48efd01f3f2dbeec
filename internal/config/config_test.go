package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.MigrationsPath != "file://migrations" {
		t.Errorf("MigrationsPath = %s", cfg.MigrationsPath)
	}
	if cfg.MaxResults != 5 {
		t.Errorf("MaxResults = %d, want 5", cfg.MaxResults)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %s, want 9999", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
}
