package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration is read from environment variables (a .env file is loaded by
// main through godotenv). Every key has a local-friendly default.
type Configuration struct {
	Server      ServerConfig      `mapstructure:"server"`
	AWS         AWSConfig         `mapstructure:"aws"`
	Tables      TablesConfig      `mapstructure:"tables"`
	Lookup      LookupConfig      `mapstructure:"lookup"`
	Eligibility EligibilityConfig `mapstructure:"eligibility"`
	Session     SessionConfig     `mapstructure:"session"`
	Logging     LoggingConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
}

type TablesConfig struct {
	Sessions      string `mapstructure:"sessions"`
	Customers     string `mapstructure:"customers"`
	Subscriptions string `mapstructure:"subscriptions"`
}

type LookupConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type EligibilityConfig struct {
	OriginPostalCode     string  `mapstructure:"origin_postal_code"`
	CourierMaxDistanceKm float64 `mapstructure:"courier_max_distance_km"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Env var names are the upper-cased keys with dots replaced by underscores,
// e.g. lookup.base_url -> LOOKUP_BASE_URL.
var defaults = map[string]any{
	"server.port":                         8080,
	"aws.region":                          "us-east-1",
	"aws.access_key_id":                   "local",
	"aws.secret_access_key":               "local",
	"aws.dynamodb_endpoint":               "",
	"tables.sessions":                     "checkout_sessions",
	"tables.customers":                    "customers",
	"tables.subscriptions":                "subscriptions",
	"lookup.base_url":                     "http://localhost:8081",
	"lookup.timeout":                      "5s",
	"lookup.cache_ttl":                    "10m",
	"eligibility.origin_postal_code":      "72762",
	"eligibility.courier_max_distance_km": 50.0,
	"session.ttl":                         "24h",
	"log.level":                           "info",
}

// Load builds the configuration from the process environment.
func Load() (*Configuration, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetDefaultConfig returns the defaults without reading the environment.
func GetDefaultConfig() *Configuration {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	var cfg Configuration
	_ = v.Unmarshal(&cfg)
	return &cfg
}
