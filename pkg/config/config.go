package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	defaultSrvPort          = "8080"
	defaultRateLimit        = 100
	defaultConcurrencyLimit = 10
	defaultCacheSize        = 10000
	defaultReloadInterval   = 24
	defaultTokenMaxTime     = 24
	defaultLogLevel         = "info"
)

type Config struct {
	DictFile         string `yaml:"dictionary_file"`
	DSN              string `yaml:"pg_dsn"`
	SrvPort          string `yaml:"srv_port"`
	RateLimit        int    `yaml:"rate_limit"`
	ConcurrencyLimit int    `yaml:"concurrency_limit"`
	CacheSize        int    `yaml:"cache_size"`
	ReloadInterval   int    `yaml:"reload_interval"`
	TokenMaxTime     int    `yaml:"token_max_time"`
	JWTSecret        string `yaml:"jwt_secret"`
	LogLevel         string `yaml:"log_level"`
	AdminLogin       string `yaml:"admin_login"`
	AdminPassword    string `yaml:"admin_password"`
}

func Load(path string) (*Config, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	err = yaml.Unmarshal(yamlFile, c)
	if err != nil {
		return nil, err
	}

	c.setDefaults()

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) setDefaults() {
	if c.SrvPort == "" {
		c.SrvPort = defaultSrvPort
	}
	if c.RateLimit == 0 {
		c.RateLimit = defaultRateLimit
	}
	if c.ConcurrencyLimit == 0 {
		c.ConcurrencyLimit = defaultConcurrencyLimit
	}
	if c.CacheSize == 0 {
		c.CacheSize = defaultCacheSize
	}
	if c.ReloadInterval == 0 {
		c.ReloadInterval = defaultReloadInterval
	}
	if c.TokenMaxTime == 0 {
		c.TokenMaxTime = defaultTokenMaxTime
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

func (c *Config) Validate() error {
	switch {
	case c.RateLimit < 0:
		return errors.New("rate_limit must not be negative")
	case c.ConcurrencyLimit < 0:
		return errors.New("concurrency_limit must not be negative")
	case c.CacheSize < 0:
		return errors.New("cache_size must not be negative")
	case c.ReloadInterval < 0:
		return errors.New("reload_interval must not be negative")
	case c.TokenMaxTime < 0:
		return errors.New("token_max_time must not be negative")
	case c.AdminLogin != "" && c.AdminPassword == "":
		return errors.New("admin_password is required with admin_login")
	}
	return nil
}
