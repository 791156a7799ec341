package server

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the TOML-configurable surface of the HTTP service.
//
//	addr          = ":8080"
//	sheet_path    = ""            # empty = built-in dashboard sheet
//	cache_backend = "file"        # file | redis | mongo | none
//	cache_dir     = ""            # file backend, empty = XDG cache dir
//	cache_ttl     = "24h"
//	redis_addr    = "localhost:6379"
//	mongo_uri     = "mongodb://localhost:27017"
//	mongo_db      = "proxdash"
type Config struct {
	Addr         string   `toml:"addr"`
	SheetPath    string   `toml:"sheet_path"`
	CacheBackend string   `toml:"cache_backend"`
	CacheDir     string   `toml:"cache_dir"`
	CacheTTL     duration `toml:"cache_ttl"`
	RedisAddr    string   `toml:"redis_addr"`
	MongoURI     string   `toml:"mongo_uri"`
	MongoDB      string   `toml:"mongo_db"`
}

// duration lets TTLs be written as "24h" in the TOML document.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		CacheBackend: "file",
		CacheTTL:     duration(24 * time.Hour),
		RedisAddr:    "localhost:6379",
		MongoURI:     "mongodb://localhost:27017",
		MongoDB:      "proxdash",
	}
}

// LoadConfig reads a TOML config file, filling unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.CacheBackend {
	case "file", "redis", "mongo", "none":
		return nil
	default:
		return fmt.Errorf("invalid cache_backend: %q (must be one of: file, redis, mongo, none)", c.CacheBackend)
	}
}

// TTL returns the configured cache TTL.
func (c Config) TTL() time.Duration {
	return time.Duration(c.CacheTTL)
}
