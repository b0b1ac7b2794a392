package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig   `yaml:"logging"`
	ServerPort  string          `yaml:"server_port"`
	MongoURI    string          `yaml:"mongo_uri"`
	MongoDBName string          `yaml:"mongo_db_name"`
	RedisAddr   string          `yaml:"redis_addr"`
	RedisDB     int             `yaml:"redis_db"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Catalog     CatalogConfig   `yaml:"catalog"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// RateLimitConfig bounds unauthenticated submissions per client key.
// Zero or negative RequestsPerWindow disables the limiter.
type RateLimitConfig struct {
	RequestsPerWindow int `yaml:"requests_per_window"`
	WindowSeconds     int `yaml:"window_seconds"`
}

// CatalogConfig tunes listing behavior.
//
// MaxScanDocs caps how many documents a single-field query may materialize
// before the store returns an error instead of truncating. The query layer
// filters on at most one field and pages in memory, so this is the hard
// ceiling on working-set size per request.
type CatalogConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
	MaxScanDocs     int `yaml:"max_scan_docs"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	}

	applyEnvOverrides(&c)
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyEnvOverrides(c *AppConfig) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		c.ServerPort = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.MongoURI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.MongoDBName = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func applyDefaults(c *AppConfig) {
	if c.ServerPort == "" {
		c.ServerPort = "8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Catalog.DefaultPageSize <= 0 {
		c.Catalog.DefaultPageSize = 12
	}
	if c.Catalog.MaxPageSize <= 0 {
		c.Catalog.MaxPageSize = 100
	}
	if c.Catalog.MaxScanDocs <= 0 {
		c.Catalog.MaxScanDocs = 5000
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = 60
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
