package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config holds every connection parameter the backend needs. All values are
// resolved once at startup through Resolve; nothing else reads the environment.
type Config struct {
	MongoURI            string
	PostgresURI         string
	RedisURI            string
	Port                string
	Namespace           string // document-store namespace all user data lives under
	AllowedOrigins      []string
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	Environment         string
}

// ConfigurationError reports a missing or incomplete backend configuration.
// Fatal to persistence, so the server refuses to start.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "incomplete configuration: missing " + strings.Join(e.Missing, ", ")
}

// Source yields configuration values by key. An empty string means the source
// has no opinion and the next source in the chain is consulted.
type Source interface {
	Lookup(key string) string
	Name() string
}

// EnvSource reads from the process environment.
type EnvSource struct{}

func (EnvSource) Lookup(key string) string { return os.Getenv(key) }
func (EnvSource) Name() string             { return "env" }

// FileSource reads from a host-injected JSON object of string values.
type FileSource struct {
	values map[string]string
	path   string
}

// NewFileSource loads the JSON config file at path.
func NewFileSource(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &FileSource{values: values, path: path}, nil
}

func (s *FileSource) Lookup(key string) string { return s.values[key] }
func (s *FileSource) Name() string             { return "file:" + s.path }

// StaticSource serves fixed values; used for built-in defaults and in tests.
type StaticSource struct {
	Values map[string]string
	Label  string
}

func (s StaticSource) Lookup(key string) string { return s.Values[key] }
func (s StaticSource) Name() string             { return s.Label }

// Defaults is the lowest-priority source in the standard chain.
func Defaults() StaticSource {
	return StaticSource{
		Label: "defaults",
		Values: map[string]string{
			"MONGODB_URI":   "mongodb://localhost:27017/wonderland",
			"POSTGRES_URI":  "postgres://localhost:5432/wonderland?sslmode=disable",
			"REDIS_URI":     "redis://localhost:6379/0",
			"PORT":          "8080",
			"APP_NAMESPACE": "wonderland",
			"ENV":           "development",
		},
	}
}

// Resolve builds a Config from the given sources, highest priority first.
// Each key takes the first non-empty value found in the chain.
func Resolve(sources ...Source) *Config {
	lookup := func(key string) string {
		for _, s := range sources {
			if v := s.Lookup(key); v != "" {
				return v
			}
		}
		return ""
	}

	return &Config{
		MongoURI:            lookup("MONGODB_URI"),
		PostgresURI:         lookup("POSTGRES_URI"),
		RedisURI:            lookup("REDIS_URI"),
		Port:                lookup("PORT"),
		Namespace:           lookup("APP_NAMESPACE"),
		AllowedOrigins:      resolveOrigins(lookup),
		CloudinaryName:      lookup("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    lookup("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: lookup("CLOUDINARY_API_SECRET"),
		Environment:         strings.ToLower(strings.TrimSpace(lookup("ENV"))),
	}
}

// Load resolves configuration from the standard chain: a host-injected JSON
// file named by CONFIG_FILE (preferred when present), then the environment,
// then built-in defaults.
func Load() *Config {
	sources := []Source{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fs, err := NewFileSource(path)
		if err == nil {
			sources = append(sources, fs)
		}
	}
	sources = append(sources, EnvSource{}, Defaults())
	return Resolve(sources...)
}

// Validate checks the minimum subset required for persistence to work.
func (c *Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if c.Namespace == "" {
		missing = append(missing, "APP_NAMESPACE")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasCloudinary reports whether the optional media-mirror credentials are set.
func (c *Config) HasCloudinary() bool {
	return c.CloudinaryName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func resolveOrigins(lookup func(string) string) []string {
	origins := parseOrigins(lookup("ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		if u := strings.TrimSpace(lookup("FRONTEND_URL")); u != "" {
			origins = append(origins, u)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
