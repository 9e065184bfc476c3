package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36"

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Mongo struct {
		URI        string `yaml:"uri"`
		Database   string `yaml:"database"`
		Collection string `yaml:"collection"`
	} `yaml:"mongo"`

	Groq struct {
		APIKey       string `yaml:"apiKey"`
		BaseURL      string `yaml:"baseURL"`
		Model        string `yaml:"model"`
		MaxTextChars int    `yaml:"maxTextChars"`
	} `yaml:"groq"`

	Browser struct {
		SettleDelaySeconds int    `yaml:"settleDelaySeconds"`
		UserAgent          string `yaml:"userAgent"`
		ExecPath           string `yaml:"execPath"`
	} `yaml:"browser"`

	Storage struct {
		Enabled    bool   `yaml:"enabled"`
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"storage"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

// Load reads the yaml config file and applies env overrides for credentials.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "EthicalFashionDB"
	}
	if c.Mongo.Collection == "" {
		c.Mongo.Collection = "EthicalAnalysis"
	}
	if c.Browser.SettleDelaySeconds == 0 {
		c.Browser.SettleDelaySeconds = 5
	}
	if c.Browser.UserAgent == "" {
		c.Browser.UserAgent = defaultUserAgent
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
}

// Credentials stay out of the yaml file; env wins when set.
func (c *Config) applyEnv() {
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		c.Groq.APIKey = v
	}
}

// SettleDelay returns the browser settle delay as time.Duration
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Browser.SettleDelaySeconds) * time.Second
}

func (c *Config) validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required (or set MONGO_URI)")
	}
	if c.Groq.APIKey == "" {
		return fmt.Errorf("groq.apiKey is required (or set GROQ_API_KEY)")
	}
	return nil
}
