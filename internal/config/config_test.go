package config

import "testing"

func TestLoadDebugDefaults(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		debugVar  string
		wantDebug bool
	}{
		{name: "dev defaults on", env: "dev", wantDebug: true},
		{name: "test defaults on", env: "test", wantDebug: true},
		{name: "prod defaults off", env: "prod", wantDebug: false},
		{name: "prod explicit on", env: "prod", debugVar: "true", wantDebug: true},
		{name: "dev explicit off", env: "dev", debugVar: "false", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.env)
			t.Setenv("DEBUG", tt.debugVar)

			cfg := Load()
			if cfg.Debug != tt.wantDebug {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tt.wantDebug)
			}
		})
	}
}

func TestLoadTablePrefix(t *testing.T) {
	tests := []struct {
		env        string
		override   string
		wantPrefix string
	}{
		{env: "prod", wantPrefix: "prod_"},
		{env: "test", wantPrefix: "test_"},
		{env: "dev", wantPrefix: "dev_"},
		{env: "prod", override: "custom_", wantPrefix: "custom_"},
	}

	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.override, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.env)
			t.Setenv("TABLE_PREFIX", tt.override)

			cfg := Load()
			if cfg.TablePrefix != tt.wantPrefix {
				t.Errorf("TablePrefix = %q, want %q", cfg.TablePrefix, tt.wantPrefix)
			}
		})
	}
}
