package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names accepted by the backend config key.
const (
	BackendDiskv  = "diskv"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Backends lists every supported backend.
func Backends() []string {
	return []string{BackendDiskv, BackendRedis, BackendSQLite, BackendMemory}
}

// Config is the resolved studyhub configuration.
type Config struct {
	Backend string       `mapstructure:"backend"`
	Path    string       `mapstructure:"path"`
	Redis   RedisConfig  `mapstructure:"redis"`
	SQLite  SQLiteConfig `mapstructure:"sqlite"`
	Watch   WatchConfig  `mapstructure:"watch"`
	Log     LogConfig    `mapstructure:"log"`
	Serve   ServeConfig  `mapstructure:"serve"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type WatchConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Dedupe   bool          `mapstructure:"dedupe"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// BasePath is the directory the diskv backend writes below.
func (c *Config) BasePath() string {
	return c.Path
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("path", "~/.studyhub")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "")
	v.SetDefault("sqlite.path", "")
	v.SetDefault("watch.interval", "60s")
	v.SetDefault("watch.dedupe", false)
	v.SetDefault("log.level", "")
	v.SetDefault("log.path", "")
	v.SetDefault("serve.addr", "127.0.0.1:8080")
}

// LoadConfig reads .studyhub.yaml from $STUDYHUB_CONFIG_PATH, the working
// directory or $HOME, then applies STUDYHUB_* environment overrides. A
// non-empty file is read instead of searching.
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("STUDYHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".studyhub") // .yaml is implicit
		if override := os.Getenv("STUDYHUB_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = BackendDiskv
	}
	if !validBackend(c.Backend) {
		return fmt.Errorf("store: unknown backend %q (want one of %s)", c.Backend, strings.Join(Backends(), ", "))
	}

	path, err := homedir.Expand(c.Path)
	if err != nil {
		return fmt.Errorf("store: expand path: %w", err)
	}
	c.Path = path

	if c.SQLite.Path == "" {
		c.SQLite.Path = filepath.Join(c.Path, "studyhub.db")
	} else if c.SQLite.Path, err = homedir.Expand(c.SQLite.Path); err != nil {
		return fmt.Errorf("store: expand sqlite path: %w", err)
	}

	if c.Log.Path != "" {
		if c.Log.Path, err = homedir.Expand(c.Log.Path); err != nil {
			return fmt.Errorf("store: expand log path: %w", err)
		}
	}

	if c.Watch.Interval <= 0 {
		c.Watch.Interval = time.Minute
	}
	return nil
}

func validBackend(name string) bool {
	for _, b := range Backends() {
		if b == name {
			return true
		}
	}
	return false
}

// OpenPersistence connects the backend cfg selects.
func OpenPersistence(cfg *Config) (Persistence, error) {
	switch cfg.Backend {
	case BackendDiskv, "":
		return NewDiskv(cfg.Path), nil
	case BackendRedis:
		return NewRedis(RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		}), nil
	case BackendSQLite:
		return NewSQLite(cfg.SQLite.Path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}
