package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/SibelSenturk950/CancerAI-API/predict"
)

// Config is the full process configuration. Defaults are overridden by
// an optional YAML file (CONFIG_FILE), then by environment variables.
type Config struct {
	Port              string
	ModelDir          string
	SurvivalModel     string
	DrugResponseModel string
	AdvisoryRules     string
	LogLevel          string
	Risk              predict.RiskBands
	Response          predict.ResponseBands
}

// fileConfig mirrors Config for the YAML overlay.
type fileConfig struct {
	Port              string `yaml:"port"`
	ModelDir          string `yaml:"model_dir"`
	SurvivalModel     string `yaml:"survival_model"`
	DrugResponseModel string `yaml:"drug_response_model"`
	AdvisoryRules     string `yaml:"advisory_rules"`
	LogLevel          string `yaml:"log_level"`
	Risk              struct {
		LowMax    *float64 `yaml:"low_max"`
		MediumMax *float64 `yaml:"medium_max"`
	} `yaml:"risk"`
	Response struct {
		CompleteMin *float64 `yaml:"complete_min"`
		PartialMin  *float64 `yaml:"partial_min"`
	} `yaml:"response"`
}

func defaults() *Config {
	return &Config{
		Port:              "8080",
		ModelDir:          "models",
		SurvivalModel:     "survival_model.gob",
		DrugResponseModel: "drug_response_model.gob",
		LogLevel:          "INFO",
		Risk:              predict.DefaultRiskBands(),
		Response:          predict.DefaultResponseBands(),
	}
}

// Load builds the configuration from defaults, the optional YAML file
// named by CONFIG_FILE, and environment variables, in that precedence.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Risk.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Response.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.ModelDir != "" {
		c.ModelDir = fc.ModelDir
	}
	if fc.SurvivalModel != "" {
		c.SurvivalModel = fc.SurvivalModel
	}
	if fc.DrugResponseModel != "" {
		c.DrugResponseModel = fc.DrugResponseModel
	}
	if fc.AdvisoryRules != "" {
		c.AdvisoryRules = fc.AdvisoryRules
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.Risk.LowMax != nil {
		c.Risk.LowMax = *fc.Risk.LowMax
	}
	if fc.Risk.MediumMax != nil {
		c.Risk.MediumMax = *fc.Risk.MediumMax
	}
	if fc.Response.CompleteMin != nil {
		c.Response.CompleteMin = *fc.Response.CompleteMin
	}
	if fc.Response.PartialMin != nil {
		c.Response.PartialMin = *fc.Response.PartialMin
	}

	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("MODEL_DIR"); v != "" {
		c.ModelDir = v
	}
	if v := os.Getenv("SURVIVAL_MODEL"); v != "" {
		c.SurvivalModel = v
	}
	if v := os.Getenv("DRUG_RESPONSE_MODEL"); v != "" {
		c.DrugResponseModel = v
	}
	if v := os.Getenv("ADVISORY_RULES"); v != "" {
		c.AdvisoryRules = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// modelPath resolves a model file name against ModelDir; absolute paths
// are used as-is.
func (c *Config) modelPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.ModelDir, name)
}

// SurvivalModelPath is the resolved path of the survival model file.
func (c *Config) SurvivalModelPath() string { return c.modelPath(c.SurvivalModel) }

// DrugResponseModelPath is the resolved path of the drug-response model file.
func (c *Config) DrugResponseModelPath() string { return c.modelPath(c.DrugResponseModel) }
