package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// APIKeyEnvVar is the environment variable consulted for the Gemini API key.
const APIKeyEnvVar = "GEMINI_API_KEY"

// DefaultTailoringModel is the model used for resume tailoring when none is configured.
const DefaultTailoringModel = "gemini-1.5-pro"

// DefaultExtractionModel is the model used for company/position extraction.
const DefaultExtractionModel = "gemini-1.5-flash"

// Config represents the application configuration.
type Config struct {
	GeminiAPIKey string        `json:"gemini_api_key"`
	Models       ModelsConfig  `json:"models,omitempty"`
	Defaults     DefaultConfig `json:"defaults"`
}

// ModelsConfig holds model selection for tailoring and extraction.
type ModelsConfig struct {
	Tailoring  string   `json:"tailoring,omitempty"`
	Extraction string   `json:"extraction,omitempty"`
	Fallbacks  []string `json:"fallbacks,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir    string `json:"output_dir"`
	TemplatePath string `json:"template_path"`
	Compiler     string `json:"compiler"`
}

// GetTailoringModel returns the tailoring model or default if not specified.
func (c *Config) GetTailoringModel() (model string) {
	if c.Models.Tailoring != "" {
		model = c.Models.Tailoring
		return model
	}
	model = DefaultTailoringModel
	return model
}

// GetExtractionModel returns the extraction model or default if not specified.
func (c *Config) GetExtractionModel() (model string) {
	if c.Models.Extraction != "" {
		model = c.Models.Extraction
		return model
	}
	model = DefaultExtractionModel
	return model
}

// GetCompiler returns the LaTeX compiler executable or default if not specified.
func (c *Config) GetCompiler() (compiler string) {
	if c.Defaults.Compiler != "" {
		compiler = c.Defaults.Compiler
		return compiler
	}
	compiler = "pdflatex"
	return compiler
}

// Load reads configuration from file with environment variable overrides.
// A missing config file is not an error: the tool runs fine on flags and
// environment alone, so absence yields a zero config with env applied.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".resume-tailor", "config.json")
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
			cfg.applyEnv()
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Parse JSON
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	cfg.applyEnv()

	return cfg, err
}

// applyEnv overrides config values from the environment.
func (c *Config) applyEnv() {
	if apiKey := os.Getenv(APIKeyEnvVar); apiKey != "" {
		c.GeminiAPIKey = apiKey
	}
}

// PromptFunc asks the user for a value interactively.
type PromptFunc func(field string) (value string, err error)

// ResolveAPIKey resolves the Gemini API key in priority order: explicit flag,
// environment variable, config file, interactive prompt. A prompted value is
// persisted into the process environment so later lookups in the same run
// find it without re-prompting.
func (c *Config) ResolveAPIKey(flagValue string, prompt PromptFunc) (key string, err error) {
	if flagValue != "" {
		key = flagValue
		return key, err
	}

	if envKey := os.Getenv(APIKeyEnvVar); envKey != "" {
		key = envKey
		return key, err
	}

	if c.GeminiAPIKey != "" {
		key = c.GeminiAPIKey
		return key, err
	}

	if prompt == nil {
		err = errors.Errorf("no Gemini API key found (set %s or gemini_api_key in config)", APIKeyEnvVar)
		return key, err
	}

	key, err = prompt("Gemini API key")
	if err != nil {
		err = errors.Wrap(err, "failed to read API key")
		return key, err
	}

	if key == "" {
		err = errors.Errorf("no Gemini API key provided (set %s or gemini_api_key in config)", APIKeyEnvVar)
		return key, err
	}

	err = os.Setenv(APIKeyEnvVar, key)
	if err != nil {
		err = errors.Wrap(err, "failed to persist API key to environment")
		return key, err
	}

	return key, err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		path = filepath.Join(homeDir, ".resume-tailor", "config.json")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		GeminiAPIKey: "",
		Models: ModelsConfig{
			Tailoring:  DefaultTailoringModel,
			Extraction: DefaultExtractionModel,
		},
		Defaults: DefaultConfig{
			OutputDir:    ".",
			TemplatePath: filepath.Join(homeDir, ".resume-tailor", "resume-template.tex"),
			Compiler:     "pdflatex",
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
