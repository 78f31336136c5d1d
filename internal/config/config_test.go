package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Dir != "" {
		t.Errorf("expected empty output dir, got %s", cfg.Output.Dir)
	}
	if cfg.Output.Suffix != "_extracted" {
		t.Errorf("expected suffix '_extracted', got %s", cfg.Output.Suffix)
	}
	if cfg.Output.ShadersOnly {
		t.Error("expected shaders_only to be false by default")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestOutputDir(t *testing.T) {
	tests := []struct {
		name  string
		dir   string
		input string
		want  string
	}{
		{"stem and suffix", "", "demos/intro.apx", "intro_extracted"},
		{"no extension", "", "project", "project_extracted"},
		{"double extension", "", "a/b.final.apx", "b.final_extracted"},
		{"explicit dir", "out", "demos/intro.apx", "out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Output.Dir = tt.dir
			if got := cfg.OutputDir(tt.input); got != tt.want {
				t.Errorf("OutputDir(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "apxtool.yaml")

	yamlContent := `
output:
  dir: "extracted"
  suffix: "_dump"
  shaders_only: true

logging:
  level: "debug"
  log_file: "apxtool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Dir != "extracted" {
		t.Errorf("expected dir 'extracted', got %s", cfg.Output.Dir)
	}
	if cfg.Output.Suffix != "_dump" {
		t.Errorf("expected suffix '_dump', got %s", cfg.Output.Suffix)
	}
	if !cfg.Output.ShadersOnly {
		t.Error("expected shaders_only to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "apxtool.log" {
		t.Errorf("expected log file 'apxtool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "apxtool.yaml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: error\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "error" {
		t.Errorf("expected log level 'error', got %s", cfg.Logging.Level)
	}
	if cfg.Output.Suffix != "_extracted" {
		t.Errorf("expected default suffix to survive, got %s", cfg.Output.Suffix)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
output:
  shaders_only: not a bool
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/apxtool.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honored on linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got, want := ConfigDir(), filepath.Join(xdg, "apxtool"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestFindConfigFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honored on linux")
	}
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	xdg := filepath.Join(tmpDir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	userConfig := filepath.Join(xdg, "apxtool", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(userConfig), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(userConfig, []byte("output:\n  suffix: _u\n"), 0644); err != nil {
		t.Fatalf("failed to create user config: %v", err)
	}
	if path := findConfigFile(); path != userConfig {
		t.Errorf("findConfigFile() = %q, want %q", path, userConfig)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "apxtool.yaml"), []byte("output:\n  suffix: _x\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "apxtool.yaml" {
		t.Errorf("findConfigFile() = %q, want local apxtool.yaml first", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "output flag",
			setup: func() { *flagOutput = "custom_out" },
			verify: func(cfg *Config) {
				if cfg.Output.Dir != "custom_out" {
					t.Errorf("expected output dir custom_out, got %s", cfg.Output.Dir)
				}
			},
			teardown: func() { *flagOutput = "" },
		},
		{
			name:  "shaders-only flag",
			setup: func() { *flagShadersOnly = true },
			verify: func(cfg *Config) {
				if !cfg.Output.ShadersOnly {
					t.Error("expected shaders_only with -shaders-only flag")
				}
			},
			teardown: func() { *flagShadersOnly = false },
		},
		{
			name:  "log-file flag",
			setup: func() { *flagLogFile = "run.log" },
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "run.log" {
					t.Errorf("expected log file run.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "apxtool.yaml")

	yamlContent := `
output:
  dir: "from_file"
  suffix: "_file"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagOutput = "from_flag"
	defer func() {
		*flagConfig = ""
		*flagOutput = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Dir != "from_flag" {
		t.Errorf("expected dir from flag, got %s", cfg.Output.Dir)
	}
	if cfg.Output.Suffix != "_file" {
		t.Errorf("expected suffix from file, got %s", cfg.Output.Suffix)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "apxtool.yaml")

	cfg := Default()
	cfg.Output.ShadersOnly = true
	cfg.Logging.Level = "debug"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", loaded, cfg)
	}
}
