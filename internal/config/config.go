package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Classify ClassifyConfig `yaml:"classify"`
	Alert    AlertConfig    `yaml:"alert"`
}

// ServerConfig holds HTTP server configuration for the local/container API
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, with container detection
func (c ServerConfig) GetHost() string {
	// On ECS/Lambda containers, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	// Allow override via environment
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// StorageConfig holds the DynamoDB feedback table configuration
type StorageConfig struct {
	TableName  string `yaml:"table_name"`
	AWSRegion  string `yaml:"aws_region"`
	AWSProfile string `yaml:"aws_profile"` // Empty string uses default credential chain (IAM role on Lambda/ECS)
}

// GetAWSProfile returns the AWS profile, with environment variable override
func (c StorageConfig) GetAWSProfile() string {
	if envProfile := os.Getenv("AWS_PROFILE_OVERRIDE"); envProfile != "" {
		if envProfile == "none" || envProfile == "iam" {
			return "" // Use default credential chain (IAM role)
		}
		return envProfile
	}
	// On ECS/Lambda, don't use a profile - use IAM role
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return ""
	}
	return c.AWSProfile
}

// ClassifyConfig holds Amazon Comprehend settings
type ClassifyConfig struct {
	LanguageCode string `yaml:"language_code"`
}

// AlertConfig holds the SNS negative-feedback alert settings
type AlertConfig struct {
	TopicARN string `yaml:"topic_arn"`
	Enabled  bool   `yaml:"enabled"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Storage.TableName == "" {
		cfg.Storage.TableName = "CustomerFeedbackAnalysis"
	}
	if cfg.Storage.AWSRegion == "" {
		cfg.Storage.AWSRegion = "eu-central-1"
	}
	if cfg.Classify.LanguageCode == "" {
		cfg.Classify.LanguageCode = "en"
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars on Lambda/ECS.
// A missing config file is not an error: Lambda deployments configure
// everything through the environment.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = &Config{}
		applyDefaults(cfg)
	}

	// Override with environment variables if present
	if table := os.Getenv("FEEDBACK_TABLE"); table != "" {
		cfg.Storage.TableName = table
	}
	if table := os.Getenv("DDB_TABLE"); table != "" {
		// Legacy name used by earlier deployments
		cfg.Storage.TableName = table
	}
	if region := os.Getenv("AWS_REGION"); region != "" {
		cfg.Storage.AWSRegion = region
	}
	if lang := os.Getenv("COMPREHEND_LANGUAGE"); lang != "" {
		cfg.Classify.LanguageCode = lang
	}
	if arn := os.Getenv("SNS_TOPIC_ARN"); arn != "" {
		cfg.Alert.TopicARN = arn
		cfg.Alert.Enabled = true
	}

	return cfg, nil
}
