// Package config resolves dashboard settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cbp-tools/bpviz/results"
)

const (
	DefaultDataPath   = "sample_data/results.json"
	DefaultConfigPath = "sample_data/predictor.yml"
	DefaultPort       = ":8050"
	DefaultCacheSize  = 256
	DefaultLogLevel   = "info"
)

// Config holds the environment-level settings. CLI flags set explicitly take
// precedence over these values.
type Config struct {
	DataPath   string
	ConfigPath string
	Port       string
	CacheSize  int
	LogLevel   string
	S3         results.BucketConfig
}

// Load reads .env from the working directory when present, then the process
// environment. A missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataPath:   firstNonEmpty(env("BPVIZ_DATA"), DefaultDataPath),
		ConfigPath: firstNonEmpty(env("BPVIZ_CONFIG"), DefaultConfigPath),
		Port:       NormalizePort(firstNonEmpty(env("BPVIZ_PORT"), env("PORT"), DefaultPort)),
		CacheSize:  envInt("BPVIZ_CACHE_SIZE", DefaultCacheSize),
		LogLevel:   firstNonEmpty(env("BPVIZ_LOG_LEVEL"), DefaultLogLevel),
		S3:         loadBucketConfig(),
	}
}

// Bucket returns the object-store settings for an s3:// data path.
// ok is false when path is not an object-store location.
func (c *Config) Bucket(path string) (results.BucketConfig, bool) {
	bucket, prefix, ok := results.ParseBucketURL(path)
	if !ok {
		return results.BucketConfig{}, false
	}
	cfg := c.S3
	cfg.Bucket = bucket
	cfg.Prefix = prefix
	return cfg, true
}

// NormalizePort accepts "8050" or ":8050" and returns the listen address form.
func NormalizePort(port string) string {
	port = strings.TrimSpace(port)
	if port == "" || strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func loadBucketConfig() results.BucketConfig {
	return results.BucketConfig{
		Endpoint:  env("BPVIZ_S3_ENDPOINT"),
		Region:    firstNonEmpty(env("BPVIZ_S3_REGION"), "us-east-1"),
		AccessKey: env("BPVIZ_S3_ACCESS_KEY"),
		SecretKey: env("BPVIZ_S3_SECRET_KEY"),
		UseSSL:    envBool("BPVIZ_S3_USE_SSL", true),
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string, fallback int) int {
	raw := env(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	raw := env(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
