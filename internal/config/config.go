// Package config loads the site configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	DriverSupabase = "supabase"
	DriverMinio    = "minio"
	DriverS3       = "s3"
)

var (
	// ErrMissingStorageConfig is returned when the storage endpoint or key is not set
	ErrMissingStorageConfig = errors.New("missing storage configuration")
	// ErrInvalidDriver is returned for an unknown storage driver
	ErrInvalidDriver = errors.New("invalid storage driver")
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Site    SiteConfig    `mapstructure:"site"`
}

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ViewsDir is the directory holding layouts, pages and partials.
	ViewsDir string `mapstructure:"views_dir" default:"views"`
	// StaticDir is served under /static.
	StaticDir string `mapstructure:"static_dir" default:"static"`
	// SessionTTL is how long an idle visitor gallery is kept in memory.
	SessionTTL time.Duration `mapstructure:"session_ttl" default:"30m"`
	// MaxSessions caps the galleries held in memory; the least recently used is dropped first.
	MaxSessions int `mapstructure:"max_sessions" default:"10000"`
}

// StorageConfig holds configuration for the object storage provider.
type StorageConfig struct {
	// Driver selects the provider backend (supabase, minio, s3).
	Driver string `mapstructure:"driver" default:"supabase"`
	// URL is the service endpoint.
	URL string `mapstructure:"url" default:""`
	// Key is the public API key (supabase, required) or access key id (minio, s3, optional).
	Key string `mapstructure:"key" default:""`
	// Secret is the secret access key for minio and s3. Empty means anonymous access.
	Secret string `mapstructure:"secret" default:""`
	// Region is used by the s3 driver.
	Region string `mapstructure:"region" default:"us-east-1"`
	// Bucket holds the teaser media.
	Bucket string `mapstructure:"bucket" default:"teaser"`
	// Folder is the optional prefix listed inside the bucket.
	Folder string `mapstructure:"folder" default:""`
	// TimeoutSeconds bounds a single list request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// LogConfig holds configuration for the logger.
type LogConfig struct {
	// Level is the minimum level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is json or console.
	Format string `mapstructure:"format" default:"json"`
}

// SiteConfig holds page-level settings.
type SiteConfig struct {
	// HeroVideo is the object in the teaser bucket used as the hero background.
	HeroVideo string `mapstructure:"hero_video" default:"teaser-video.mp4"`
	// LocalVideo is served from the static directory when HeroVideo is empty.
	LocalVideo string `mapstructure:"local_video" default:""`
	// YouTubeID is the embedded fallback video.
	YouTubeID string `mapstructure:"youtube_id" default:"r3id79qqaro"`
	// ContactEmail is shown in the contact section.
	ContactEmail string `mapstructure:"contact_email" default:"vaporisrecords@gmail.com"`
}

// envAliases accepts the Supabase variable names used by the static front-end deployment.
var envAliases = map[string][]string{
	"storage.url": {"STORAGE_URL", "SUPABASE_URL", "VITE_SUPABASE_URL"},
	"storage.key": {"STORAGE_KEY", "SUPABASE_ANON_KEY", "VITE_SUPABASE_ANON_KEY"},
}

// LoadConfig loads configuration from environment variables and a .env file in path.
// It does not validate; call Validate before using the storage settings.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Load(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. STORAGE_URL -> storage.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the values required before any page can be rendered.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Storage.URL) == "" {
		missing = append(missing, "STORAGE_URL")
	}
	// minio and s3 may read a public bucket anonymously
	if c.Storage.Driver == DriverSupabase && strings.TrimSpace(c.Storage.Key) == "" {
		missing = append(missing, "STORAGE_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingStorageConfig, strings.Join(missing, ", "))
	}

	switch c.Storage.Driver {
	case DriverSupabase, DriverMinio, DriverS3:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDriver, c.Storage.Driver)
	}

	return nil
}

// bindValues walks the struct and registers every mapstructure key with its default,
// so AutomaticEnv can resolve nested keys during Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
