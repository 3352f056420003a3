package config

import "fmt"

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Provider    ProviderConfig    `yaml:"provider"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Pagination  PaginationConfig  `yaml:"pagination"`
	Store       StoreConfig       `yaml:"store"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type PathsConfig struct {
	Records string `yaml:"records"`
	Decks   string `yaml:"decks"`
}

type ProviderConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type GeminiConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

type PaginationConfig struct {
	MaxWords     int    `yaml:"max_words"`
	MaxChars     int    `yaml:"max_chars"`
	EmptySection string `yaml:"empty_section"` // "placeholder" or "skip"
}

type StoreConfig struct {
	TTLHours             int  `yaml:"ttl_hours"`
	SweepIntervalMinutes int  `yaml:"sweep_interval_minutes"`
	WatchRecords         bool `yaml:"watch_records"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Paths.Records == "" {
		return fmt.Errorf("paths.records is required")
	}
	if c.Paths.Decks == "" {
		return fmt.Errorf("paths.decks is required")
	}
	if c.Pagination.EmptySection != "" &&
		c.Pagination.EmptySection != "placeholder" && c.Pagination.EmptySection != "skip" {
		return fmt.Errorf("pagination.empty_section must be \"placeholder\" or \"skip\"")
	}

	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "https://www.youtube.com"
	}
	if c.Provider.TimeoutSeconds == 0 {
		c.Provider.TimeoutSeconds = 30
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxTokens == 0 {
		c.Gemini.MaxTokens = 2000
	}
	if c.Pagination.MaxWords == 0 {
		c.Pagination.MaxWords = 100
	}
	if c.Pagination.MaxChars == 0 {
		c.Pagination.MaxChars = 528
	}
	if c.Pagination.EmptySection == "" {
		c.Pagination.EmptySection = "placeholder"
	}
	if c.Store.TTLHours == 0 {
		c.Store.TTLHours = 24
	}
	if c.Store.SweepIntervalMinutes == 0 {
		c.Store.SweepIntervalMinutes = 30
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
